package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTokenFile(t *testing.T) *TokenFile {
	t.Helper()
	return NewTokenFile(filepath.Join(t.TempDir(), "auth.json"))
}

func TestTokenFile_LoadMissingFile(t *testing.T) {
	f := tempTokenFile(t)

	token, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenFile_SaveAndLoad(t *testing.T) {
	f := tempTokenFile(t)

	require.NoError(t, f.Save("tok-1"))

	token, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	info, err := os.Stat(f.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTokenFile_Clear(t *testing.T) {
	f := tempTokenFile(t)
	require.NoError(t, f.Save("tok-1"))

	require.NoError(t, f.Clear())

	token, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing again must not fail
	require.NoError(t, f.Clear())
}

func TestTokenFile_LoadCorruptFile(t *testing.T) {
	f := tempTokenFile(t)
	require.NoError(t, os.WriteFile(f.path, []byte("not json"), 0o600))

	_, err := f.Load()
	require.Error(t, err)
}
