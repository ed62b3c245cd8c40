package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ytup/internal/faults"
)

// Store reads and writes the credential artifact at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the artifact at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the artifact location, for operator-facing messages.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored credential. A missing file returns (nil, nil); a
// corrupt or unreadable file returns a CredentialLoadError so the caller
// can log it and fall back to re-authentication.
func (s *Store) Load() (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, faults.New(faults.CredentialLoad, "",
			fmt.Errorf("failed to read token file: %w", err))
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, faults.New(faults.CredentialLoad, "",
			fmt.Errorf("failed to parse token file %s: %w", s.path, err))
	}
	if cred.Version != CredentialVersion {
		return nil, faults.New(faults.CredentialLoad, "",
			fmt.Errorf("unsupported token artifact version %d in %s", cred.Version, s.path))
	}
	return &cred, nil
}

// Save writes the credential, creating the parent directory if needed. The
// file is private to the operator.
func (s *Store) Save(cred *Credential) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
