package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestUploadFromBytes_StoresUnderDatedDirectory(t *testing.T) {
	s := newTestStorage(t)

	rel, err := s.UploadFromBytes([]byte("%PDF-1.4"), "CONT-2025-00001.PDF", "documents/contracts")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "documents/contracts/2025/03/"))
	assert.Equal(t, ".pdf", filepath.Ext(rel))
	assert.True(t, s.Exists(rel))

	f, err := s.Open(rel)
	require.NoError(t, err)
	defer f.Close()
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestUploadFromBytes_UniqueNames(t *testing.T) {
	s := newTestStorage(t)

	a, err := s.UploadFromBytes([]byte("a"), "x.pdf", "documents")
	require.NoError(t, err)
	b, err := s.UploadFromBytes([]byte("b"), "x.pdf", "documents")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFullPath_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.FullPath("../../etc/passwd")
	assert.ErrorIs(t, err, ErrOutsideStorage)
	assert.False(t, s.Exists("../secret"))
	assert.ErrorIs(t, s.Delete(".."), ErrOutsideStorage)
}

func TestDelete(t *testing.T) {
	s := newTestStorage(t)

	rel, err := s.UploadFromBytes([]byte("x"), "a.png", "signed")
	require.NoError(t, err)
	require.NoError(t, s.Delete(rel))
	assert.False(t, s.Exists(rel))
}

func TestIsValidContentType(t *testing.T) {
	assert.True(t, IsValidContentType("application/pdf"))
	assert.True(t, IsValidContentType("image/png"))
	assert.False(t, IsValidContentType("text/html"))
	assert.Equal(t, int64(10*1024*1024), MaxFileSize())
}
