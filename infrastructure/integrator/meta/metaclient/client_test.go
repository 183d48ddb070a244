package metaclient

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateLimitBody = `{"error":{"message":"(#17) User request limit reached","type":"OAuthException","code":17,"fbtrace_id":"AbCdEf"}}`

func metaResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandleResponseRateLimit(t *testing.T) {
	t.Run("Resposta de limite resfria o token da chamada e sinaliza retry", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"token-a", "token-b"}, time.Minute)
		require.NoError(t, err)

		client := &MetaClient{Tokens: pool}

		_, err = client.HandleResponse(metaResponse(http.StatusBadRequest, rateLimitBody), "token-a")
		assert.ErrorIs(t, err, errRetryWithRotatedToken)

		current, err := pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "token-b", current)
	})

	t.Run("Limite atrasado de um token já rotacionado não resfria o token saudável", func(t *testing.T) {
		// Com workers concorrentes, a resposta de limite do worker B pode
		// chegar depois que o worker A já rotacionou o pool. O cooldown deve
		// cair sobre o token que fez a chamada, não sobre o corrente.
		pool, err := NewTokenPool([]string{"token-a", "token-b"}, time.Minute)
		require.NoError(t, err)

		client := &MetaClient{Tokens: pool}

		_, err = client.HandleResponse(metaResponse(http.StatusBadRequest, rateLimitBody), "token-a")
		assert.ErrorIs(t, err, errRetryWithRotatedToken)

		// Segunda resposta de limite da mesma chamada antiga, ainda com token-a
		_, err = client.HandleResponse(metaResponse(http.StatusBadRequest, rateLimitBody), "token-a")
		assert.ErrorIs(t, err, errRetryWithRotatedToken)

		current, err := pool.Current()
		require.NoError(t, err)
		assert.Equal(t, "token-b", current)
	})

	t.Run("Sem token disponível retorna ErrAllTokensCoolingDown", func(t *testing.T) {
		pool, err := NewTokenPool([]string{"token-unico"}, time.Minute)
		require.NoError(t, err)

		client := &MetaClient{Tokens: pool}

		_, err = client.HandleResponse(metaResponse(http.StatusBadRequest, rateLimitBody), "token-unico")
		assert.ErrorIs(t, err, ErrAllTokensCoolingDown)
	})
}

func TestHandleResponseTokenExpired(t *testing.T) {
	expiredBody := `{"error":{"message":"Error validating access token: Session has expired","type":"OAuthException","code":190,"fbtrace_id":"AbCdEf"}}`

	pool, err := NewTokenPool([]string{"token-a"}, time.Minute)
	require.NoError(t, err)

	client := &MetaClient{Tokens: pool}

	_, err = client.HandleResponse(metaResponse(http.StatusBadRequest, expiredBody), "token-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token da Meta expirado")

	// Token expirado não entra em cooldown, segue como corrente
	current, err := pool.Current()
	require.NoError(t, err)
	assert.Equal(t, "token-a", current)
}

func TestHandleResponseOK(t *testing.T) {
	pool, err := NewTokenPool([]string{"token-a"}, time.Minute)
	require.NoError(t, err)

	client := &MetaClient{Tokens: pool}

	body, err := client.HandleResponse(metaResponse(http.StatusOK, `{"data":[]}`), "token-a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}
