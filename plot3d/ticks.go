package plot3d

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxTicks bounds how many tick positions an axis gets.
const maxTicks = 6

// niceSteps are the mantissas allowed for a tick step.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// Ticks returns evenly spaced round values covering [-limit, limit].
func Ticks(limit float64) []float64 {
	if !(limit > 0) {
		return nil
	}
	raw := 2 * limit / maxTicks
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag * niceSteps[len(niceSteps)-1]
	for _, m := range niceSteps {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}

	var ticks []float64
	for t := math.Ceil(-limit/step) * step; t <= limit+step*1e-9; t += step {
		if math.Abs(t) < step*1e-9 {
			t = 0
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// labelPrinter formats tick labels with digit grouping.
var labelPrinter = message.NewPrinter(language.English)

// TickLabel formats a tick value: integers without a fraction, thousands
// grouped.
func TickLabel(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return labelPrinter.Sprintf("%d", int64(v))
	}
	return labelPrinter.Sprintf("%g", v)
}
