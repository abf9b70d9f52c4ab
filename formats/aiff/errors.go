// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile         = errors.New("not a valid aiff file")
	ErrUnsupportedBitDepth = errors.New("unsupported aiff bit depth")
	ErrUnsupportedLayout   = errors.New("unsupported aiff channel layout")
)
