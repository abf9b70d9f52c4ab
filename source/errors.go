// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	ErrNotDirectory = errors.New("path is not a directory")
	ErrNoServer     = errors.New("smb server address is empty")
	ErrNoShare      = errors.New("smb share name is empty")
)
