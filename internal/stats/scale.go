package stats

import "math"

// DefaultTickCount is the tick density used when rounding axis bounds.
const DefaultTickCount = 10

// NiceScale extends the domain [0, maxValue] so its upper bound lands on a round
// tick (1, 2 or 5 times a power of ten) and returns that bound with the tick step.
func NiceScale(maxValue float64, count int) (bound, step float64) {
	if count <= 0 {
		count = DefaultTickCount
	}
	if maxValue <= 0 || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		return 0, 0
	}
	start, stop := 0.0, maxValue
	var prestep float64
	for i := 0; i < 10; i++ {
		inc := tickIncrement(start, stop, count)
		if inc == prestep || inc == 0 {
			break
		}
		if inc > 0 {
			start = math.Floor(start/inc) * inc
			stop = math.Ceil(stop/inc) * inc
		} else {
			start = math.Ceil(start*inc) / inc
			stop = math.Floor(stop*inc) / inc
		}
		prestep = inc
	}
	switch {
	case prestep > 0:
		step = prestep
	case prestep < 0:
		step = -1 / prestep
	}
	return stop, step
}

// tickIncrement returns a positive step, or the negated inverse of a step below one.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= math.Sqrt(50):
		factor = 10
	case e >= math.Sqrt(10):
		factor = 5
	case e >= math.Sqrt(2):
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Ticks lists tick values from 0 to bound inclusive.
func Ticks(bound, step float64) []float64 {
	if bound <= 0 || step <= 0 {
		return []float64{0}
	}
	n := int(math.Round(bound / step))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, roundTick(float64(i)*step))
	}
	return ticks
}

func roundTick(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
