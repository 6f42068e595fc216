// Package main provides the entry point for listset-bench.
//
// listset-bench measures the throughput of the hand-over-hand and
// optimistic lock-coupling sets in pkg/listset under a configurable mix of
// finds, inserts and removes.
//
// Usage:
//
//	listset-bench run --set olc -n 1000 -p 8 -u 20 -z 0.99
//	listset-bench -o json run --set hoh -r 5 --trial 2s
//	listset-bench sanity --set hoh
//	listset-bench version
//
// Every round ends with a conservation check; a failed check makes the
// process exit with status 1.
package main
