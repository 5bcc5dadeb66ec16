// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_Shape(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(i%7)/7 - 0.5
	}

	for _, width := range []int{1, 3, 100, 999, 1000, 1001, 4096} {
		env, err := Reduce(samples, width)
		require.NoError(t, err)
		assert.Len(t, env, width)
	}
}

func TestReduce_MinMax(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.2, 0.5, 0.3, -0.9, 0.0}
	env, err := Reduce(samples, 3)
	require.NoError(t, err)

	assert.Equal(t, Envelope{
		{Min: -0.2, Max: 0.1},
		{Min: 0.3, Max: 0.5},
		{Min: -0.9, Max: 0.0},
	}, env)
}

func TestReduce_TrailingColumnsKeepSentinel(t *testing.T) {
	t.Parallel()

	// step = ceil(5/4) = 2: windows [0,2) [2,4) [4,6) [6,8)
	env, err := Reduce([]float32{0.1, 0.2, 0.3, 0.4, 0.5}, 4)
	require.NoError(t, err)

	assert.Equal(t, Column{Min: 0.5, Max: 0.5}, env[2])
	assert.Equal(t, Column{Min: 1, Max: -1}, env[3])
	assert.True(t, env[3].Empty())
	assert.False(t, env[2].Empty())
}

func TestReduce_EmptySamples(t *testing.T) {
	t.Parallel()

	env, err := Reduce(nil, 5)
	require.NoError(t, err)
	require.Len(t, env, 5)
	for _, c := range env {
		assert.True(t, c.Empty())
	}

	_, _, ok := env.Bounds()
	assert.False(t, ok)
}

func TestReduce_SentinelSeedsRange(t *testing.T) {
	t.Parallel()

	// the window starts from (1, -1), so all-high samples keep Min at 1
	env, err := Reduce([]float32{2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, Column{Min: 1, Max: 3}, env[0])
}

func TestReduce_InvalidWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, -1} {
		env, err := Reduce([]float32{1}, width)
		assert.ErrorIs(t, err, ErrInvalidWidth)
		assert.Nil(t, env)

		n := 0
		for range Columns([]float32{1}, width) {
			n++
		}
		assert.Zero(t, n)
	}
}

func TestColumns_LazyAndRestartable(t *testing.T) {
	t.Parallel()

	samples := []float32{-1, 1, -0.5, 0.5, 0, 0.25}
	seq := Columns(samples, 3)

	var first []Column
	for i, c := range seq {
		assert.Equal(t, len(first), i)
		first = append(first, c)
	}

	var second []Column
	for _, c := range seq {
		second = append(second, c)
	}
	assert.Equal(t, first, second)

	// stopping early is honoured
	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEnvelope_Bounds(t *testing.T) {
	t.Parallel()

	env := Envelope{{Min: 1, Max: -1}, {Min: -0.3, Max: 0.2}, {Min: -0.1, Max: 0.7}}
	lo, hi, ok := env.Bounds()
	require.True(t, ok)
	assert.Equal(t, float32(-0.3), lo)
	assert.Equal(t, float32(0.7), hi)
}

func BenchmarkReduce(b *testing.B) {
	samples := Generate().Samples

	for b.Loop() {
		_, _ = Reduce(samples, 800)
	}
}
