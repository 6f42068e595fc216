package workload

import (
	"context"
	"errors"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is returned for an unusable workload configuration.
var ErrInvalidConfig = errors.New("workload: invalid config")

// chunkSize is the number of samples generated per task.
const chunkSize = 1 << 16

// Config describes a workload.
type Config struct {
	MaxKey        uint64  // keys are drawn from [1, MaxKey]
	Samples       int     // number of operations
	Zipf          float64 // skew, 0 for uniform
	UpdatePercent int
	Seed          uint64
	Parallelism   int // 0 means GOMAXPROCS
}

// Workload is a pre-generated sequence of operations.
type Workload struct {
	Keys []uint64
	Ops  []OpType
}

// Len returns the number of operations.
func (w *Workload) Len() int { return len(w.Keys) }

// Permutation returns the keys 1..maxKey in random order.
func Permutation(maxKey uint64, rng *rand.Rand) []uint64 {
	keys := make([]uint64, maxKey)
	for i := range keys {
		keys[i] = uint64(i) + 1
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// Generate builds a workload. Output is deterministic for a given Seed
// regardless of Parallelism.
func Generate(ctx context.Context, cfg Config) (*Workload, error) {
	if cfg.MaxKey == 0 || cfg.Samples <= 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.Zipf < 0 || cfg.Zipf == 1 {
		return nil, ErrInvalidConfig
	}
	if cfg.UpdatePercent < 0 || cfg.UpdatePercent > 100 {
		return nil, ErrInvalidConfig
	}

	perm := Permutation(cfg.MaxKey, rand.New(rand.NewPCG(cfg.Seed, 0)))
	zipf := NewZipfian(cfg.MaxKey, cfg.Zipf)

	w := &Workload{
		Keys: make([]uint64, cfg.Samples),
		Ops:  make([]OpType, cfg.Samples),
	}
	m := uint64(cfg.Samples)

	g, ctx := errgroup.WithContext(ctx)
	limit := cfg.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for start := 0; start < cfg.Samples; start += chunkSize {
		end := min(start+chunkSize, cfg.Samples)
		chunk := uint64(start / chunkSize)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, chunk+1))
			for i := start; i < end; i++ {
				w.Keys[i] = perm[zipf.Next(rng)]
				w.Ops[i] = OpFor(m, uint64(i), cfg.UpdatePercent)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return w, nil
}
