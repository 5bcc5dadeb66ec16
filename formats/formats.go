// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder in this module into one registry.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/formats/aiff"
	"github.com/ik5/echofx/formats/mp3"
	"github.com/ik5/echofx/formats/vorbis"
	"github.com/ik5/echofx/formats/wav"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a
// format key.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Registry returns a registry with every built-in decoder, keyed by file
// extension.
func Registry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}

// Lookup resolves format in r, wrapping ErrUnsupportedFormat on a miss.
func Lookup(r *audio.Registry, format string) (audio.Decoder, error) {
	dec, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return dec, nil
}

// ForPath picks a built-in decoder from the extension of path.
func ForPath(path string) (audio.Decoder, error) {
	return Lookup(Registry(), filepath.Ext(path))
}
