// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local reads from the machine's own filesystem.
type Local struct{}

// NewLocal returns a Provider backed by the os package.
func NewLocal() Local { return Local{} }

func (Local) List(ctx context.Context, path string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{
			Name: d.Name(),
			Dir:  d.IsDir(),
			Path: filepath.Join(path, d.Name()),
		})
	}

	return entries, nil
}

func (Local) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return f, nil
}

func (Local) Join(elem ...string) string { return filepath.Join(elem...) }

func (Local) Remote() bool { return false }
