package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yndnr/listset-go/internal/bench/config"
	"github.com/yndnr/listset-go/internal/bench/workload"
	"github.com/yndnr/listset-go/internal/telemetry/logger"
	"github.com/yndnr/listset-go/internal/telemetry/metric"
	"github.com/yndnr/listset-go/pkg/listset"
)

// fillValue is the value stored with every key.
const fillValue uint64 = 123

// checkEvery is how many operations a worker runs between deadline checks.
const checkEvery = 128

// Hit ratios outside this range suggest the set lost or gained keys.
const (
	minHitRatio = 0.4
	maxHitRatio = 0.6
)

// Runner executes benchmark rounds.
type Runner struct {
	bench   config.BenchSection
	variant listset.Variant
	workers int

	log     logger.Logger
	metrics *metric.Registry
	out     io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithMetrics records round results in reg.
func WithMetrics(reg *metric.Registry) Option {
	return func(r *Runner) { r.metrics = reg }
}

// WithOutput sets where Sanity prints the set. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// New creates a Runner. The configuration is verified first.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	workers := cfg.Bench.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := config.Verify(cfg, workers); err != nil {
		return nil, err
	}
	variant, err := listset.ParseVariant(cfg.Bench.Set)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		bench:   cfg.Bench,
		variant: variant,
		workers: workers,
		log:     logger.Default(),
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Workers returns the resolved worker count.
func (r *Runner) Workers() int { return r.workers }

// Variant returns the set variant under test.
func (r *Runner) Variant() listset.Variant { return r.variant }

// Run executes every configured round. It returns the rounds completed so
// far together with ErrConservation if a check fails, or the context error
// if ctx is cancelled. A cancelled trial still finishes its round.
func (r *Runner) Run(ctx context.Context) ([]RoundResult, error) {
	runID := ulid.Make().String()
	ctx = logger.WithRunID(ctx, runID)
	log := r.log.With("run_id", runID, "set", string(r.variant))

	n := r.bench.Size
	maxKey := uint64(2 * n)
	samples := r.bench.EffectiveSamples(r.workers)
	if samples < r.workers {
		return nil, fmt.Errorf("%d samples cannot be split between %d workers", samples, r.workers)
	}
	seed := r.bench.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	log.Info("generating workload",
		"n", n, "p", r.workers, "samples", samples,
		"z", r.bench.Zipf, "update_pct", r.bench.Updates, "seed", seed)
	w, err := workload.Generate(ctx, workload.Config{
		MaxKey:        maxKey,
		Samples:       samples,
		Zipf:          r.bench.Zipf,
		UpdatePercent: r.bench.Updates,
		Seed:          seed,
		Parallelism:   r.workers,
	})
	if err != nil {
		return nil, fmt.Errorf("generate workload: %w", err)
	}

	set, err := listset.New[uint64, uint64](r.variant)
	if err != nil {
		return nil, err
	}
	defer set.Close()

	results := make([]RoundResult, 0, r.bench.Rounds)
	for i := 1; i <= r.bench.Rounds; i++ {
		res, err := r.round(ctx, log, set, w, i)
		res.RunID = runID
		results = append(results, res)
		if err != nil {
			return results, err
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (r *Runner) round(ctx context.Context, log logger.Logger, set listset.Set[uint64, uint64], w *workload.Workload, round int) (RoundResult, error) {
	n := r.bench.Size
	maxKey := 2 * n
	p := r.workers
	label := string(r.variant)
	log = log.With("round", round)

	if got := set.CountKeysAndCheckConsistency(); got != 0 {
		log.Warn("bad length", "keys", got)
	}
	log.Info("round started")

	r.forEach(n, func(i int) {
		set.Insert(uint64(2*(i+1)), fillValue)
	})
	if got := set.CountKeysAndCheckConsistency(); got != n {
		log.Warn("prefill mismatch", "expected", n, "found", got)
	}

	var retriesBefore uint64
	rc, hasRetries := set.(listset.RetryCounter)
	if hasRetries {
		retriesBefore = rc.Retries()
	}

	tallies := make([]tally, p)
	mp := w.Len() / p
	start := time.Now()
	deadline := start.Add(r.bench.Trial)

	var g errgroup.Group
	for tid := range p {
		g.Go(func() error {
			progress := rate.Sometimes{Interval: time.Second}
			lo, hi := tid*mp, (tid+1)*mp
			var t tally
			j := lo
			for {
				if t.total%checkEvery == 0 {
					if ctx.Err() != nil || !time.Now().Before(deadline) {
						break
					}
					progress.Do(func() {
						log.Debug("worker progress", "worker", tid, "ops", t.total)
					})
				}

				key := w.Keys[j]
				switch w.Ops[j] {
				case workload.OpFind:
					t.finds++
					if _, ok := set.Find(key); ok {
						t.findHits++
					}
				case workload.OpInsert:
					if set.Insert(key, fillValue) {
						t.inserts++
					} else {
						t.insertMisses++
					}
				case workload.OpRemove:
					if set.Remove(key) {
						t.removes++
					} else {
						t.removeMisses++
					}
				}

				if j++; j >= hi {
					j = lo
				}
				t.total++
			}
			tallies[tid] = t
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	var sum tally
	for i := range tallies {
		sum.add(&tallies[i])
	}

	res := RoundResult{
		Round:         round,
		Set:           label,
		Size:          n,
		Workers:       p,
		Zipf:          r.bench.Zipf,
		UpdatePercent: r.bench.Updates,
		Ops:           sum.total,
		Finds:         sum.finds,
		FindHits:      sum.findHits,
		Inserts:       sum.inserts,
		Removes:       sum.removes,
		Duration:      elapsed,
	}
	if us := float64(elapsed) / float64(time.Microsecond); us > 0 {
		res.Throughput = float64(sum.total) / us
	}
	if hasRetries {
		res.Retries = rc.Retries() - retriesBefore
	}

	log.Info("round finished",
		"update_pct", r.bench.Updates, "n", n, "p", p, "z", r.bench.Zipf,
		"ops", sum.total, "duration", elapsed, "throughput", res.Throughput)

	if sum.finds > 0 {
		res.HitRatio = float64(sum.findHits) / float64(sum.finds)
		if res.HitRatio < minHitRatio || res.HitRatio > maxHitRatio {
			log.Warn("query success ratio out of range", "ratio", res.HitRatio)
		}
	}

	res.FinalKeys = set.CountKeysAndCheckConsistency()
	r.record(label, &sum, &res)

	want := int64(n) + int64(sum.inserts) - int64(sum.removes)
	if int64(res.FinalKeys) != want {
		res.Check = CheckFailed
		r.recordCheck(label, CheckFailed)
		log.Error("bad size",
			"initial", n, "inserted", sum.inserts, "removed", sum.removes, "final", res.FinalKeys)
		return res, fmt.Errorf("%w: initial size %d, added %d, final size %d",
			ErrConservation, n, int64(sum.inserts)-int64(sum.removes), res.FinalKeys)
	}
	res.Check = CheckPassed
	r.recordCheck(label, CheckPassed)
	log.Info("check passed", "keys", res.FinalKeys)

	r.forEach(maxKey, func(i int) {
		set.Remove(uint64(i + 1))
	})
	return res, nil
}

// forEach calls fn for every index in [0, count), split into one contiguous
// chunk per worker.
func (r *Runner) forEach(count int, fn func(i int)) {
	if count <= 0 {
		return
	}
	chunk := (count + r.workers - 1) / r.workers
	var g errgroup.Group
	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Runner) record(label string, sum *tally, res *RoundResult) {
	if r.metrics == nil {
		return
	}
	m := r.metrics
	m.OpsTotal.WithLabelValues(label, workload.OpFind.String(), metric.OutcomeHit).Add(float64(sum.findHits))
	m.OpsTotal.WithLabelValues(label, workload.OpFind.String(), metric.OutcomeMiss).Add(float64(sum.finds - sum.findHits))
	m.OpsTotal.WithLabelValues(label, workload.OpInsert.String(), metric.OutcomeHit).Add(float64(sum.inserts))
	m.OpsTotal.WithLabelValues(label, workload.OpInsert.String(), metric.OutcomeMiss).Add(float64(sum.insertMisses))
	m.OpsTotal.WithLabelValues(label, workload.OpRemove.String(), metric.OutcomeHit).Add(float64(sum.removes))
	m.OpsTotal.WithLabelValues(label, workload.OpRemove.String(), metric.OutcomeMiss).Add(float64(sum.removeMisses))
	m.Throughput.WithLabelValues(label).Set(res.Throughput)
	m.SetSize.WithLabelValues(label).Set(float64(res.FinalKeys))
	m.RoundDuration.WithLabelValues(label).Observe(res.Duration.Seconds())
	m.ValidationRetries.WithLabelValues(label).Add(float64(res.Retries))
}

func (r *Runner) recordCheck(label, result string) {
	if r.metrics == nil {
		return
	}
	r.metrics.ConsistencyChecks.WithLabelValues(label, result).Inc()
}
