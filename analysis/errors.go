// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

// ErrTooShort is returned when a buffer holds fewer samples than an
// analysis needs.
var ErrTooShort = errors.New("buffer too short to analyse")
