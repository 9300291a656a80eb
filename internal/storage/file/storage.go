package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/you-humble/field-orders/internal/model"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// storage keeps each key in <dir>/<key>.json. Writes go through a temp file
// and a rename so a reader never sees a partial value.
type storage struct {
	dir string
}

func NewStorage(dir string) (*storage, error) {
	const op = "file.NewStorage"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}
	return &storage{dir: dir}, nil
}

func (s *storage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "file.storage.Get"

	path, err := s.path(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}
	return b, nil
}

func (s *storage) Set(ctx context.Context, key string, value []byte) error {
	const op = "file.storage.Set"

	path, err := s.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}
	return nil
}

func (s *storage) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: invalid key %q", model.ErrValidation, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func mapErr(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", model.ErrPermissionDenied, err)
	}
	return err
}
