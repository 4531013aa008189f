package cows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_List(t *testing.T) {
	names := Embedded().List()

	assert.Contains(t, names, "default")
	assert.Contains(t, names, "tux")
	assert.IsNonDecreasing(t, names)
	for _, name := range names {
		assert.NotContains(t, name, Extension)
	}
}

func TestEmbedded_Lookup(t *testing.T) {
	data, ok := Embedded().Lookup("default")
	require.True(t, ok)
	assert.Contains(t, string(data), "$eyes")

	_, ok = Embedded().Lookup("yak")
	assert.False(t, ok)
}

func TestMapStore_IsImmutable(t *testing.T) {
	src := map[string][]byte{"a": []byte("one")}
	s := NewMapStore(src)
	src["a"][0] = 'X'

	data, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "one", string(data))

	data[0] = 'Y'
	again, _ := s.Lookup("a")
	assert.Equal(t, "one", string(again))

	names := s.List()
	names[0] = "changed"
	assert.Equal(t, []string{"a"}, s.List())
}

func TestDirStore(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, first, "yak.cow", "first yak")
	writeFile(t, second, "yak.cow", "second yak")
	writeFile(t, second, "emu.cow", "emu")
	writeFile(t, second, "notes.txt", "ignored")

	s := NewDirStore("", first, second)

	t.Run("first directory wins", func(t *testing.T) {
		data, ok := s.Lookup("yak")
		require.True(t, ok)
		assert.Equal(t, "first yak", string(data))
	})

	t.Run("falls through to later directories", func(t *testing.T) {
		data, ok := s.Lookup("emu")
		require.True(t, ok)
		assert.Equal(t, "emu", string(data))
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := s.Lookup("gnu")
		assert.False(t, ok)
	})

	t.Run("rejects path-like names", func(t *testing.T) {
		_, ok := s.Lookup(filepath.Join("..", filepath.Base(first), "yak"))
		assert.False(t, ok)
	})

	t.Run("list is sorted and distinct", func(t *testing.T) {
		assert.Equal(t, []string{"emu", "yak"}, s.List())
	})

	assert.Equal(t, []string{first, second}, s.Dirs())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
