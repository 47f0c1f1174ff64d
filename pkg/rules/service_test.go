package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	require.NoError(t, os.WriteFile(path, []byte("# Rules\nAlways run tests."), 0o644))

	s := NewService(path)
	assert.Equal(t, "# Rules\nAlways run tests.", s.Get())
}

func TestGetPicksUpEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	s := NewService(path)
	require.Equal(t, "v1", s.Get())

	require.NoError(t, os.WriteFile(path, []byte("v2 longer"), 0o644))
	// Force a distinct mtime in case the filesystem truncates timestamps.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	assert.Equal(t, "v2 longer", s.Get())
}

func TestGetCachesUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	require.NoError(t, os.WriteFile(path, []byte("stable"), 0o644))

	s := NewService(path)
	first := s.Get()
	second := s.Get()
	assert.Equal(t, first, second)
}

func TestGetFailsOpenOnMissingFile(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "absent.md"))
	assert.Equal(t, "", s.Get())
}

func TestGetFailsOpenAfterDeletion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	s := NewService(path)
	require.Equal(t, "content", s.Get())

	require.NoError(t, os.Remove(path))
	assert.Equal(t, "", s.Get())
}

func TestNilServiceReturnsEmpty(t *testing.T) {
	s := NewService("")
	require.Nil(t, s)
	assert.Equal(t, "", s.Get())
}
