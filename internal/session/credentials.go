package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFileName = "credentials.json"

// credentialsFile is the persisted credential/identity pair. The keys are
// fixed: other tooling (and older releases) read the same file.
type credentialsFile struct {
	Token string `json:"token"`
	Email string `json:"user_email"`
}

// Store persists the credential pair as one small JSON file under Dir.
// It is the only client-side persistence the product has; the backend owns
// all domain data.
type Store struct {
	Dir string
}

func (s Store) path() string {
	return filepath.Join(s.Dir, credentialsFileName)
}

// Load reads the persisted pair. A missing file is not an error: it returns
// empty values, meaning "no session".
func (s Store) Load() (token, email string, err error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("read credentials: %w", err)
	}
	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", "", fmt.Errorf("parse credentials: %w", err)
	}
	return f.Token, f.Email, nil
}

// Save writes the pair atomically (write temp, rename) so a crash can never
// leave a half-written credentials file.
func (s Store) Save(token, email string) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(credentialsFile{Token: token, Email: email}, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Clear removes the persisted pair. Clearing an already-clear store is fine.
func (s Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
