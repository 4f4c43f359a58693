package render

import (
	"fmt"
	"strings"

	"github.com/mwrobel/kcal/internal/chart"
)

const (
	// chartRows is the number of terminal rows used for the bar area
	chartRows = 10
	// colWidth is the printed width of one day column
	colWidth = 6
	barGlyph = "████"
	padGlyph = "    "
)

// RenderChart projects the chart series onto a character grid: bar
// heights scale from logical pixels to chartRows rows and stay
// bottom-aligned at the baseline, matching the series geometry.
func RenderChart(s chart.Series) string {
	plotH := chart.Height - chart.PadBottom - 20

	rows := make([]int, len(s.Bars))
	for i, b := range s.Bars {
		rows[i] = (b.Height*chartRows + plotH/2) / plotH
		if b.Sum > 0 && rows[i] == 0 {
			rows[i] = 1
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Last 7 days (scale max %d kcal)\n\n", s.ScaleMax)

	for row := chartRows; row >= 1; row-- {
		for i := range s.Bars {
			if rows[i] >= row {
				out.WriteString(" " + barGlyph + " ")
			} else {
				out.WriteString(" " + padGlyph + " ")
			}
		}
		out.WriteString("\n")
	}

	// baseline
	out.WriteString(strings.Repeat("─", colWidth*len(s.Bars)))
	out.WriteString("\n")

	for _, b := range s.Bars {
		out.WriteString(fmt.Sprintf(" %-*s", colWidth-1, b.Label))
	}
	out.WriteString("\n")

	for _, b := range s.Bars {
		out.WriteString(fmt.Sprintf(" %-*d", colWidth-1, b.Sum))
	}
	out.WriteString("\n")

	return out.String()
}
