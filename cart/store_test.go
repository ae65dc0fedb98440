package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreReturnsSameManagerPerSession(t *testing.T) {
	s := NewStore()
	a := s.Get("session-a")
	assert.Same(t, a, s.Get("session-a"))
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	s.Get("session-a").AddItem(product("netflix", 4.80))

	assert.Equal(t, 1, s.Get("session-a").ItemCount())
	assert.Zero(t, s.Get("session-b").ItemCount())
}
