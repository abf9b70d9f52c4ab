// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"io"
)

// Entry is a single directory member as reported by a Provider.
type Entry struct {
	// Name is the base name of the entry within its directory.
	Name string
	// Dir reports whether the entry is a subdirectory.
	Dir bool
	// Path is the provider-native path of the entry.
	Path string
}

// Provider reads a tree of directories and files from some backing store.
type Provider interface {
	// List returns the members of the directory at path.
	List(ctx context.Context, path string) ([]Entry, error)

	// Open opens the file at path for reading. The caller closes it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Join composes path elements using the provider's separator.
	Join(elem ...string) string

	// Remote reports whether reads cross a network. Callers use this to
	// decide if files should be staged locally before decoding.
	Remote() bool
}
