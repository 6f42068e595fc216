// Package benchmark provides Go benchmarks for the listset sets.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run only the parallel mixed workload:
//
//	go test -bench=BenchmarkMixed -benchtime=5s -cpu=1,2,4,8 ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
//
// These complement listset-bench, which runs fixed-duration trials with a
// conservation check after each round.
package benchmark
