// SPDX-License-Identifier: EPL-2.0

package mirror

import "errors"

var ErrNoProvider = errors.New("no source provider configured")
