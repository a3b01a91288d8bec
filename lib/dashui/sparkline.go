// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"math"
	"strings"
)

// sparklineLevels are the eighth-block characters, one per step of an
// eight-step cell.
var sparklineLevels = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders series into a width-by-height grid of block
// characters, returned as one string per row, top row first. The
// latest value sits at the right edge; a series shorter than width is
// left-padded with blanks. Columns scale from zero to the maximum of
// the visible window, so a column's height is its value's share of
// the window peak. Non-positive and non-finite values draw as blank
// columns.
func Sparkline(series []float64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	window := series
	if len(window) > width {
		window = window[len(window)-width:]
	}

	peak := 0.0
	for _, value := range window {
		if !math.IsInf(value, 0) && !math.IsNaN(value) && value > peak {
			peak = value
		}
	}

	// Column fill levels in eighths, 0..height*8.
	total := height * 8
	levels := make([]int, len(window))
	if peak > 0 {
		for i, value := range window {
			if math.IsInf(value, 0) || math.IsNaN(value) || value <= 0 {
				continue
			}
			level := int(value/peak*float64(total) + 0.5)
			if level > total {
				level = total
			}
			levels[i] = level
		}
	}

	padding := width - len(window)
	rows := make([]string, height)
	var row strings.Builder
	for r := 0; r < height; r++ {
		row.Reset()
		for i := 0; i < padding; i++ {
			row.WriteByte(' ')
		}
		rowFloor := (height - 1 - r) * 8
		for _, level := range levels {
			cell := level - rowFloor
			switch {
			case cell >= 8:
				row.WriteRune('█')
			case cell <= 0:
				row.WriteByte(' ')
			default:
				row.WriteRune(sparklineLevels[cell-1])
			}
		}
		rows[r] = row.String()
	}
	return rows
}
