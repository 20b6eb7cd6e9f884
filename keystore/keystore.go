// Package keystore caches eERC decryption keys on disk.
//
// Keys are generated once per wallet and mode by the encrypted-balance SDK
// and never rotated, so the cache is a plain write-once file store. One file
// per entry, named eerc-key-{mode}-{address}.
package keystore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a file-backed cache for decryption keys
type Store struct {
	dir string
}

// New creates a store rooted at ~/.veilfund/keys
func New() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewAt(filepath.Join(homeDir, ".veilfund", "keys")), nil
}

// NewAt creates a store rooted at an explicit directory. Used by tests.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

// EntryName builds the cache file name for a mode/address pair.
// The address is lowercased so lookups are case-insensitive.
func EntryName(mode, address string) string {
	return fmt.Sprintf("eerc-key-%s-%s", mode, strings.ToLower(address))
}

// Get returns the cached key for a mode/address pair, if present
func (s *Store) Get(mode, address string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, EntryName(mode, address)))
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", false
	}
	return key, true
}

// Put stores a key for a mode/address pair
func (s *Store) Put(mode, address, key string) error {
	if key == "" {
		return fmt.Errorf("refusing to cache empty key")
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	path := filepath.Join(s.dir, EntryName(mode, address))
	if err := os.WriteFile(path, []byte(key), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// Delete removes a cached key. Missing entries are not an error.
func (s *Store) Delete(mode, address string) error {
	err := os.Remove(filepath.Join(s.dir, EntryName(mode, address)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key file: %w", err)
	}
	return nil
}
