package analysis

import "math"

// Summary describes a population series.
type Summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
	// Final is the last sample.
	Final int
}

func Summarize(pops []int) Summary {
	if len(pops) == 0 {
		return Summary{}
	}
	s := Summary{Samples: len(pops), Min: pops[0], Max: pops[0], Final: pops[len(pops)-1]}
	var sum float64
	for _, p := range pops {
		sum += float64(p)
		s.Min = min(s.Min, p)
		s.Max = max(s.Max, p)
	}
	s.Mean = sum / float64(len(pops))

	var sq float64
	for _, p := range pops {
		d := float64(p) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(pops)))
	return s
}
