// SPDX-License-Identifier: EPL-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ik5/echofx/dsp"
)

func TestRenderEnvelope(t *testing.T) {
	t.Parallel()

	env := dsp.Envelope{
		{Min: -1, Max: 1},
		{Min: 0, Max: 0},
		{Min: 1, Max: -1},
		{Min: 0.5, Max: 1},
	}

	got := renderEnvelope(env, 5)
	want := "#  #\n" +
		"#  #\n" +
		"##-\n" +
		"#\n" +
		"#\n"

	assert.Equal(t, want, got)
}

func TestRenderEnvelope_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderEnvelope(nil, 10))
	assert.Empty(t, renderEnvelope(dsp.Envelope{{Min: -1, Max: 1}}, 0))
}

func TestRenderEnvelope_SingleRow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#-\n", renderEnvelope(dsp.Envelope{{Min: -0.2, Max: 0.3}, {Min: 1, Max: -1}}, 1))
}
