package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorage_SetGet(t *testing.T) {
	s := NewMemoryStorage[string, int]()

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 3)

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Count())
}

func TestMemoryStorage_Delete(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.Equal(t, 0, s.Count())
}

func TestMemoryStorage_GetAllValues(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	values := s.GetAllValues()
	assert.ElementsMatch(t, []int{1, 2}, values)
}

func TestMemoryStorage_ForEach(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	seen := 0
	s.ForEach(func(key string, value int) bool {
		seen++
		return true
	})
	assert.Equal(t, 3, seen)

	// Early stop
	seen = 0
	s.ForEach(func(key string, value int) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestMemoryStorage_Clear(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.GetAllValues())
}
