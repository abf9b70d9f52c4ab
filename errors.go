// SPDX-License-Identifier: EPL-2.0

package sp404prep

import "errors"

var ErrUnknownFormat = errors.New("unknown input format")
