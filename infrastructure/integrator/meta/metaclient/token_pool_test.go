package metaclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenPool(t *testing.T) {
	t.Run("Sem tokens configurados - erro", func(t *testing.T) {
		_, err := NewTokenPool(nil, time.Minute)

		assert.Error(t, err)
	})

	t.Run("Cooldown inválido assume o padrão", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1"}, 0)

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, pool.cooldown)
	})
}

func TestTokenPoolRotation(t *testing.T) {
	t.Run("Token corrente permanece até atingir o limite", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1", "t2"}, time.Minute)
		require.NoError(t, err)

		first, err := pool.Current()
		require.NoError(t, err)
		second, err := pool.Current()
		require.NoError(t, err)

		assert.Equal(t, "t1", first)
		assert.Equal(t, "t1", second)
	})

	t.Run("Token em cooldown é pulado na rotação", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1", "t2", "t3"}, time.Minute)
		require.NoError(t, err)

		pool.MarkRateLimited("t1")

		token, err := pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "t2", token)

		pool.MarkRateLimited("t2")

		token, err = pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "t3", token)
	})

	t.Run("Todos em cooldown - erro", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1", "t2"}, time.Minute)
		require.NoError(t, err)

		pool.MarkRateLimited("t1")
		pool.MarkRateLimited("t2")

		_, err = pool.Current()

		assert.ErrorIs(t, err, ErrAllTokensCoolingDown)
	})

	t.Run("Token volta ao pool depois do cooldown", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1"}, 10*time.Millisecond)
		require.NoError(t, err)

		pool.MarkRateLimited("t1")

		_, err = pool.Current()
		assert.ErrorIs(t, err, ErrAllTokensCoolingDown)

		time.Sleep(20 * time.Millisecond)

		token, err := pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "t1", token)
	})

	t.Run("Token desconhecido não altera o pool", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"t1"}, time.Minute)
		require.NoError(t, err)

		pool.MarkRateLimited("desconhecido")

		token, err := pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "t1", token)
	})
}

func TestTokenPoolSize(t *testing.T) {
	pool, err := NewTokenPool([]string{"t1", "t2", "t3"}, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 3, pool.Size())
}
