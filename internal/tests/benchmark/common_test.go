package benchmark

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/listset-go/pkg/listset"
)

// SetSizes defines the initial set sizes for benchmarking.
var SetSizes = []int{100, 1000, 10000}

// SmallSetSizes for quick benchmarks.
var SmallSetSizes = []int{100, 1000}

// newSet creates a set of the given variant prefilled with the even keys in
// [1, 2*size].
func newSet(b *testing.B, v listset.Variant, size int) listset.Set[uint64, uint64] {
	b.Helper()
	s, err := listset.New[uint64, uint64](v)
	if err != nil {
		b.Fatalf("New(%q) failed: %v", v, err)
	}
	for i := 1; i <= size; i++ {
		s.Insert(uint64(2*i), uint64(i))
	}
	if got := s.CountKeysAndCheckConsistency(); got != size {
		b.Fatalf("prefill: got %d keys, want %d", got, size)
	}
	return s
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithVariantsAndSizes runs benchFn for every variant and size.
func runWithVariantsAndSizes(b *testing.B, sizes []int, benchFn func(b *testing.B, v listset.Variant, size int)) {
	for _, v := range listset.Variants() {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/n_%d", v, size), func(b *testing.B) {
				benchFn(b, v, size)
			})
		}
	}
}
