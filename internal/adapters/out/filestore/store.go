// Package filestore implements the media store port on the local filesystem.
// Proof-of-delivery photos are written under a single uploads directory and
// served back through a static URL prefix.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persists photos as files under a root directory. Keys are plain file
// names; nothing outside the root is ever touched.
type Store struct {
	root      string
	urlPrefix string
}

// NewStore creates a file store rooted at dir. urlPrefix is prepended to
// keys by URLFor (e.g. "/uploads"). The directory is created if missing.
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &Store{
		root:      dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

// Root returns the directory files are stored under.
func (s *Store) Root() string {
	return s.root
}

// Store writes the reader's bytes under key. The write goes to a temporary
// file first and is renamed into place, so a failed write never leaves a
// partial object under the key.
func (s *Store) Store(ctx context.Context, key string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write photo: %w", err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close photo: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publish photo: %w", err)
	}

	return nil
}

// Remove deletes the file stored under key. A missing key is not an error.
func (s *Store) Remove(_ context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove photo: %w", err)
	}

	return nil
}

// URLFor returns the client-resolvable URL for a stored key.
func (s *Store) URLFor(key string) string {
	return s.urlPrefix + "/" + key
}

// ListOlderThan returns the keys of stored files whose modification time is
// before cutoff. Temporary files from in-flight writes are skipped.
func (s *Store) ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list uploads dir: %w", err)
	}

	keys := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".upload-") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, err
		}

		if info.ModTime().Before(cutoff) {
			keys = append(keys, entry.Name())
		}
	}

	return keys, nil
}

// keyPath maps a key to its on-disk path, rejecting keys that would escape
// the root directory.
func (s *Store) keyPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid photo key: %q", key)
	}

	return filepath.Join(s.root, key), nil
}
