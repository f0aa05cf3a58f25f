package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiroclinic-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	path, err := store.Store("knee.png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(data))

	require.NoError(t, store.Delete(path))
	_, err = os.Stat(filepath.Join(dir, path))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("does-not-exist.png"))
	assert.NoError(t, store.Delete(""))
}

func TestDeleteRejectsEscapingPaths(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Delete("../outside.png"))
	assert.Error(t, store.Delete("/etc/passwd"))
}
