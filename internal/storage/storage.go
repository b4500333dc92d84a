package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidPath = errors.New("path escapes media root")

// Storage keeps uploaded files (payment proofs) and hands back a path
// relative to its root, which is what the database stores.
type Storage interface {
	Save(ctx context.Context, relPath string, r io.Reader, maxSize int64) (int64, error)
	Open(relPath string) (io.ReadCloser, error)
	Remove(relPath string) error
}

type localStorage struct {
	root string
}

func NewLocal(root string) Storage {
	return &localStorage{root: root}
}

func (s *localStorage) resolve(relPath string) (string, error) {
	clean := filepath.Clean("/" + relPath)
	full := filepath.Join(s.root, clean)

	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", ErrInvalidPath
	}

	return full, nil
}

// Save writes at most maxSize bytes; a larger upload is removed and rejected.
func (s *localStorage) Save(ctx context.Context, relPath string, r io.Reader, maxSize int64) (int64, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, fmt.Errorf("creating media dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return 0, fmt.Errorf("creating media file: %w", err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(r, maxSize+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		os.Remove(full)
		return 0, fmt.Errorf("writing media file: %w", copyErr)
	case closeErr != nil:
		os.Remove(full)
		return 0, fmt.Errorf("closing media file: %w", closeErr)
	case n > maxSize:
		os.Remove(full)
		return 0, fmt.Errorf("file exceeds %d bytes", maxSize)
	case ctx.Err() != nil:
		os.Remove(full)
		return 0, ctx.Err()
	}

	return n, nil
}

func (s *localStorage) Open(relPath string) (io.ReadCloser, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	return os.Open(full)
}

func (s *localStorage) Remove(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
