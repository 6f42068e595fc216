// Package bench drives throughput benchmarks against listset sets.
//
// A Runner pre-generates a workload, then for each round prefills the set
// with every even key in [1, 2n], lets p workers hammer it with a mix of
// finds, inserts and removes for a fixed trial time, and verifies that the
// final key count equals the initial count plus successful inserts minus
// successful removes. Every key is removed again before the next round.
//
// Sanity runs the small insert/remove scenario used to eyeball a variant.
package bench
