package metaclient

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrAllTokensCoolingDown indica que todos os tokens do pool estão em
// cooldown por limite de requisições
var ErrAllTokensCoolingDown = errors.New("todos os tokens da Meta estão em cooldown por limite de requisições")

// TokenPool gerencia o conjunto de tokens de longa duração da API do Meta.
// As requisições usam sempre o token corrente; ao receber erro de limite de
// requisições o token entra em cooldown e o pool rotaciona para o próximo
// disponível, distribuindo a carga entre os tokens configurados.
type TokenPool struct {
	mu            sync.Mutex
	tokens        []string
	current       int
	cooldownUntil []time.Time
	cooldown      time.Duration
}

// NewTokenPool cria o pool a partir dos tokens configurados
func NewTokenPool(tokens []string, cooldown time.Duration) (*TokenPool, error) {
	if len(tokens) == 0 {
		return nil, errors.New("nenhum token de acesso da Meta configurado")
	}

	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}

	return &TokenPool{
		tokens:        tokens,
		cooldownUntil: make([]time.Time, len(tokens)),
		cooldown:      cooldown,
	}, nil
}

// Current retorna o token corrente, avançando sobre tokens em cooldown.
// Retorna ErrAllTokensCoolingDown quando nenhum token está disponível.
func (p *TokenPool) Current() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for i := 0; i < len(p.tokens); i++ {
		idx := (p.current + i) % len(p.tokens)
		if now.After(p.cooldownUntil[idx]) {
			p.current = idx
			return p.tokens[idx], nil
		}
	}

	return "", ErrAllTokensCoolingDown
}

// MarkRateLimited coloca o token em cooldown e rotaciona para o próximo
func (p *TokenPool) MarkRateLimited(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for idx, t := range p.tokens {
		if t != token {
			continue
		}

		p.cooldownUntil[idx] = time.Now().Add(p.cooldown)
		p.current = (idx + 1) % len(p.tokens)

		logrus.WithFields(logrus.Fields{
			"token_index":    idx,
			"cooldown_until": p.cooldownUntil[idx].Format(time.RFC3339),
		}).Warn("Token da Meta atingiu o limite de requisições, rotacionando para o próximo")

		return
	}
}

// Size retorna a quantidade de tokens configurados
func (p *TokenPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tokens)
}
