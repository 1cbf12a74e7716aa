package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("ausente")
	assert.False(t, ok)

	c.Set("moeda", "BRL")

	value, ok := c.Get("moeda")
	assert.True(t, ok)
	assert.Equal(t, "BRL", value)
}

func TestTTLCache_Expiry(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(10*time.Minute, func() time.Time { return now })

	c.Set("moeda", "BRL")

	// Dentro do TTL a entrada continua viva.
	now = now.Add(9 * time.Minute)
	_, ok := c.Get("moeda")
	assert.True(t, ok)

	// Depois do TTL a leitura remove a entrada.
	now = now.Add(2 * time.Minute)
	_, ok = c.Get("moeda")
	assert.False(t, ok)

	// Regravar depois da expiração renova o prazo.
	c.Set("moeda", "USD")
	value, ok := c.Get("moeda")
	assert.True(t, ok)
	assert.Equal(t, "USD", value)
}

func TestTTLCache_Clear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
