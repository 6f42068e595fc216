// Package workload pre-generates benchmark operations.
//
// A workload is a pair of parallel slices: the key each operation targets
// and the operation type. Keys are drawn from [1, MaxKey] through a random
// permutation indexed by a Zipfian sampler, so the hottest ranks land on
// scattered keys rather than at the front of the list. Operation types are
// derived from a hash of the operation index, which keeps the
// insert/remove/find mix independent of the key distribution.
package workload
