// Package chart builds the renderable 7-day bar series from the entry
// collection. Output geometry is in logical pixels on a fixed-height
// surface; any renderer can paint it without recomputation.
package chart

import (
	"math"
	"time"

	"github.com/mwrobel/kcal/internal/aggregate"
	"github.com/mwrobel/kcal/internal/dateutil"
	"github.com/mwrobel/kcal/internal/entry"
)

// Drawing surface geometry (logical pixels)
const (
	Days      = 7
	Height    = 240
	PadX      = 30
	PadBottom = 22
	Gap       = 10

	// MinScale guarantees a minimum visual scale so an all-zero week
	// neither divides by zero nor renders full-height bars
	MinScale = 100
)

// Bar is one slot of the 7-day series with its computed geometry
type Bar struct {
	Label  string
	Date   string
	Sum    int
	X      float64
	Width  float64
	Height int
}

// Series is a complete renderable chart: seven bars, oldest day first,
// plus the shared baseline and scale.
type Series struct {
	Bars     [Days]Bar
	Width    int
	Baseline int
	ScaleMax int
}

// Build computes the 7-day series ending today for a surface of the
// given logical width. Bars are bottom-aligned at the baseline; an
// empty collection degrades to seven zero-height bars.
func Build(entries []entry.Entry, now time.Time, width int) Series {
	s := Series{
		Width:    width,
		Baseline: Height - PadBottom,
		ScaleMax: MinScale,
	}

	for i := 0; i < Days; i++ {
		day := now.AddDate(0, 0, -(Days - 1 - i))
		iso := dateutil.Today(day)
		s.Bars[i] = Bar{
			Label: day.Format("Mon"),
			Date:  iso,
			Sum:   aggregate.SumForDate(entries, iso),
		}
		if s.Bars[i].Sum > s.ScaleMax {
			s.ScaleMax = s.Bars[i].Sum
		}
	}

	slotW := float64(width-2*PadX) / Days
	barH := float64(Height - PadBottom - 20)
	for i := range s.Bars {
		s.Bars[i].X = PadX + float64(i)*slotW
		s.Bars[i].Width = slotW - Gap
		s.Bars[i].Height = int(math.Round(float64(s.Bars[i].Sum) / float64(s.ScaleMax) * barH))
	}

	return s
}

// BackingSize returns the backing pixel dimensions for a high-density
// display: the logical width and fixed height scaled by the device
// pixel ratio. Drawing coordinates stay in logical units.
func BackingSize(logicalWidth int, devicePixelRatio float64) (w, h int) {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	return int(math.Floor(float64(logicalWidth) * devicePixelRatio)),
		int(math.Floor(Height * devicePixelRatio))
}
