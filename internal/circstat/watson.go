package circstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Result carries the outcome of a two-sample Watson U² test. The
// fields are not guaranteed numeric: degenerate input (an empty
// sample) yields NaN statistic and p-value, and callers must check
// Ok before interpreting them.
type Result struct {
	Statistic float64 // U²
	PValue    float64 // asymptotic approximation
	N1, N2    int
}

// Ok reports whether both the statistic and the p-value came out
// numeric.
func (r Result) Ok() bool {
	return !math.IsNaN(r.Statistic) && !math.IsNaN(r.PValue)
}

// WatsonTwoSample computes the two-sample Watson U² statistic for two
// samples of bearings in degrees, with an asymptotic p-value. The
// test is non-parametric and invariant under rotation of the circle,
// so the bearing convention does not affect it. Tied observations are
// processed as groups, which keeps the statistic independent of input
// order.
func WatsonTwoSample(a, b []float64) Result {
	res := Result{N1: len(a), N2: len(b), Statistic: math.NaN(), PValue: math.NaN()}
	if res.N1 == 0 || res.N2 == 0 {
		return res
	}

	type obs struct {
		value  float64
		sample int
	}
	n := res.N1 + res.N2
	all := make([]obs, 0, n)
	for _, v := range a {
		all = append(all, obs{NormalizeDeg(v), 0})
	}
	for _, v := range b {
		all = append(all, obs{NormalizeDeg(v), 1})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].value < all[j].value })

	// d_k = F1(x_k) - F2(x_k) over the pooled sorted sample, with
	// ties advanced as one group so the ECDF difference is well
	// defined at tied values.
	d := make([]float64, 0, n)
	var c1, c2 int
	for i := 0; i < n; {
		j := i
		for j < n && all[j].value == all[i].value {
			if all[j].sample == 0 {
				c1++
			} else {
				c2++
			}
			j++
		}
		dk := float64(c1)/float64(res.N1) - float64(c2)/float64(res.N2)
		for k := i; k < j; k++ {
			d = append(d, dk)
		}
		i = j
	}

	dbar := floats.Sum(d) / float64(n)
	ss := 0.0
	for _, dk := range d {
		ss += (dk - dbar) * (dk - dbar)
	}

	u2 := float64(res.N1) * float64(res.N2) / (float64(n) * float64(n)) * ss
	res.Statistic = u2
	res.PValue = watsonPValue(u2)
	return res
}

// watsonPValue evaluates the asymptotic null distribution
// P(U² > u) = 2 Σ (-1)^(k-1) exp(-2 k² π² u). The series does not
// converge at zero, but P(U² > u) → 1 as u → 0, so a vanishing
// statistic (all observations tied) reports p = 1.
func watsonPValue(u2 float64) float64 {
	if math.IsNaN(u2) {
		return math.NaN()
	}
	if u2 < 1e-9 {
		return 1
	}
	p := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2 * float64(k*k) * math.Pi * math.Pi * u2)
		p += sign * term
		if term < 1e-12 {
			break
		}
		sign = -sign
	}
	p *= 2
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
