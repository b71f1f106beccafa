package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdMap(t *testing.T) {
	t.Run("NewOrdMap is empty", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		require.Equal(t, 0, m.Len())
		require.Empty(t, m.Keys())
	})

	t.Run("Set and Get", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		m.Set("one", 1)
		m.Set("two", 2)

		v, ok := m.Get("one")
		require.True(t, ok)
		require.Equal(t, 1, v)

		v, ok = m.Get("two")
		require.True(t, ok)
		require.Equal(t, 2, v)

		_, ok = m.Get("three")
		require.False(t, ok)
	})

	t.Run("Keys preserve insertion order", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		m.Set("c", 3)
		m.Set("a", 1)
		m.Set("b", 2)

		require.Equal(t, []string{"c", "a", "b"}, m.Keys())
	})

	t.Run("overwrite keeps original position", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)

		require.Equal(t, []string{"a", "b"}, m.Keys())
		require.Equal(t, 2, m.Len())

		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 10, v)
	})

	t.Run("Range visits pairs in order", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)
		m.Set("z", 3)

		var seen []string
		err := m.Range(func(key string, value int) error {
			seen = append(seen, key)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y", "z"}, seen)
	})

	t.Run("Range stops on error", func(t *testing.T) {
		m := NewOrdMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)

		boom := errors.New("boom")
		var seen []string
		err := m.Range(func(key string, value int) error {
			seen = append(seen, key)
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, []string{"x"}, seen)
	})
}
