// SPDX-License-Identifier: EPL-2.0

// Package analysis measures buffers for the processing report.
//
// Measure returns peak, RMS and DC offset; DominantFrequency estimates the
// strongest tone with a windowed FFT:
//
//	st := analysis.Measure(out)
//	fmt.Println(st) // 7.00s, peak 0.950 (-0.4 dBFS), rms 0.201, dc +0.0001
//
//	hz, err := analysis.DominantFrequency(in, 4096)
package analysis
