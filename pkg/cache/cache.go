// Package cache implementa um cache em memória com TTL fixo e relógio
// injetável, usado para respostas de consulta que podem ficar levemente
// defasadas (metadados de conta, moeda).
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache é um cache chave-valor com expiração por entrada.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New cria um cache com o TTL informado.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewWithClock cria um cache com relógio injetável, para testes
// determinísticos de expiração.
func NewWithClock(ttl time.Duration, now func() time.Time) *TTLCache {
	c := New(ttl)
	c.now = now
	return c
}

// Get devolve o valor e um booleano indicando se a entrada existe e ainda
// não expirou. Entradas expiradas são removidas na leitura.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set grava o valor com expiração a partir de agora.
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear descarta todas as entradas.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
