// Package session decides, once per interactive search session, whether to
// invoke the external producer command or reuse its cached output.
//
// A session spans many short-lived process invocations (one per keystroke)
// that share an opaque token. The first invocation mints a token, runs the
// producer, and caches the resulting feedback document under the token;
// later invocations carry the token back in and read the cached document
// instead of re-running the producer.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrStorage indicates a session cache directory or file operation failed.
var ErrStorage = errors.New("session storage failure")

// Store persists raw feedback documents keyed by session token, one JSON
// file per token in a single directory.
//
// No locking is used. Two new sessions racing on a freshly minted token may
// both write; last writer wins, and either document is complete and
// well-formed, so subsequent reads are fine regardless of which survives.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first write, with permissions restricted to the owner.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the document cached under token. The second return value is
// false when no cache entry exists.
func (s *Store) Get(token string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(token))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return data, true, nil
}

// Put writes the document under token, creating the cache directory if
// needed.
func (s *Store) Put(token string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.WriteFile(s.path(token), data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// Clear deletes every file in the store's directory. A missing directory is
// not an error.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}
	return nil
}

// path returns the cache file path for token.
func (s *Store) path(token string) string {
	return filepath.Join(s.dir, token+".json")
}
