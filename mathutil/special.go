package mathutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// rng backs UniformRand; package-level so Seed can make runs reproducible.
var rng = rand.New(rand.NewSource(1))

// Seed reseeds the package random source.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// UniformRand returns a random double in [0, 1).
func UniformRand() float64 {
	return rng.Float64()
}

// UniformRandRange returns a random double in [lo, hi).
func UniformRandRange(lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Gammaln returns the natural logarithm of the gamma function at x.
func Gammaln(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// Digamma returns the derivative of the log gamma function at x.
func Digamma(x float64) float64 {
	return mathext.Digamma(x)
}

// Factln returns ln(n!).
func Factln(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	return Gammaln(float64(n) + 1)
}

// Binom returns the binomial probability mass Binomial(k; n, p): the
// probability of exactly k successes in n trials with success probability p.
//
// Out-of-support arguments (k < 0, k > n, n < 0) yield 0. The success
// probability is clamped to [0, 1] so that thresholded ratios slightly
// outside the unit interval from floating error remain usable.
func Binom(k, n int, p float64) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	// distuv evaluates k*log(p) terms, which NaN out at the degenerate ends.
	if p == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if p == 1 {
		if k == n {
			return 1
		}
		return 0
	}
	b := distuv.Binomial{N: float64(n), P: p}
	return b.Prob(float64(k))
}
