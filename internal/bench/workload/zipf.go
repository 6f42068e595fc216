package workload

import (
	"math"
	"math/rand/v2"
)

// Zipfian samples ranks in [0, n) with skew theta.
//
// Theta 0 is uniform. For positive theta other than 1 it follows the
// construction of Gray et al., "Quickly Generating Billion-Record Synthetic
// Databases", as popularised by YCSB. Construction is O(n); sampling is O(1).
type Zipfian struct {
	n     uint64
	theta float64

	alpha  float64
	zetan  float64
	eta    float64
	second float64 // 1 + 0.5^theta
}

// NewZipfian creates a sampler over [0, n). It panics if n is zero, theta is
// negative or theta is exactly 1.
func NewZipfian(n uint64, theta float64) *Zipfian {
	if n == 0 {
		panic("workload: zipfian over empty range")
	}
	if theta < 0 || theta == 1 {
		panic("workload: zipfian theta must be 0 or positive and not 1")
	}
	z := &Zipfian{n: n, theta: theta}
	if theta == 0 {
		return z
	}

	z.zetan = zeta(n, theta)
	z.alpha = 1 / (1 - theta)
	z.second = 1 + math.Pow(0.5, theta)
	if n > 1 {
		z.eta = (1 - math.Pow(2/float64(n), 1-theta)) / (1 - zeta(2, theta)/z.zetan)
	}
	return z
}

func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1 / math.Pow(float64(i), theta)
	}
	return sum
}

// N returns the size of the range.
func (z *Zipfian) N() uint64 { return z.n }

// Theta returns the skew parameter.
func (z *Zipfian) Theta() float64 { return z.theta }

// Rank maps u in [0, 1) to a rank in [0, n). Rank 0 is the most likely.
func (z *Zipfian) Rank(u float64) uint64 {
	var r uint64
	switch {
	case z.theta == 0:
		r = uint64(u * float64(z.n))
	case u*z.zetan < 1:
		r = 0
	case u*z.zetan < z.second:
		r = 1
	default:
		r = uint64(float64(z.n) * math.Pow(z.eta*u-z.eta+1, z.alpha))
	}
	if r >= z.n {
		r = z.n - 1
	}
	return r
}

// Next draws a rank using rng.
func (z *Zipfian) Next(rng *rand.Rand) uint64 {
	return z.Rank(rng.Float64())
}
