package analysis

import (
	"math"
	"sort"
)

// Gini computes the Gini coefficient of a value distribution. Zeros are
// dropped first; fewer than two positive values means no measurable
// concentration and returns 0. Result is clamped to [0, 1].
//
// Uses the rank formula over ascending-sorted values x_1..x_n:
// G = 2*sum(i*x_i) / (n*sum(x_i)) - (n+1)/n.
func Gini(values []float64) float64 {
	positive := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			positive = append(positive, v)
		}
	}
	if len(positive) < 2 {
		return 0
	}

	sort.Float64s(positive)

	n := float64(len(positive))
	var sum, weighted float64
	for i, v := range positive {
		sum += v
		weighted += float64(i+1) * v
	}

	g := 2*weighted/(n*sum) - (n+1)/n
	return clamp(g, 0, 1)
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
