// SPDX-License-Identifier: EPL-2.0

package echofx

import "errors"

var (
	// ErrLoadFailed wraps every failure to turn an input into a buffer:
	// unknown format, decoder rejection, read errors and empty results.
	ErrLoadFailed = errors.New("load failed")
	// ErrEngineClosed is returned for work submitted after Close.
	ErrEngineClosed = errors.New("engine closed")
)
