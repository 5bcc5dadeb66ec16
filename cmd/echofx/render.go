// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"
	"strings"

	"github.com/ik5/echofx/dsp"
)

// renderEnvelope draws env as height rows of text, top row is +1.0.
// Each column fills the cells between its minimum and maximum.
func renderEnvelope(env dsp.Envelope, height int) string {
	if height <= 0 || len(env) == 0 {
		return ""
	}

	row := func(v float32) int {
		r := int(math.Round(float64(1-v) / 2 * float64(height-1)))
		return min(max(r, 0), height-1)
	}

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", len(env)))
	}

	mid := row(0)
	for x, c := range env {
		if c.Empty() {
			grid[mid][x] = '-'
			continue
		}
		for y := row(c.Max); y <= row(c.Min); y++ {
			grid[y][x] = '#'
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
