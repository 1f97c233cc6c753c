package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// tokenKey is the fixed key the bearer token is stored under inside the
// token file.
const tokenKey = "auth_token"

// TokenFile persists the bearer token as a small JSON key-value object.
// It is the only client-side state that survives a restart.
type TokenFile struct {
	path string
}

func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Load returns the stored token, or "" when the file does not exist or
// holds no token.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}

	var kv map[string]string
	if err := json.Unmarshal(data, &kv); err != nil {
		return "", fmt.Errorf("parsing token file: %w", err)
	}
	return kv[tokenKey], nil
}

// Save writes the token, replacing any previous one. The file is created
// owner-readable only.
func (f *TokenFile) Save(token string) error {
	data, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (f *TokenFile) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
