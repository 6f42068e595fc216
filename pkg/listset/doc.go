// Package listset provides concurrent ordered sets over a sorted singly-linked
// list.
//
// Two synchronization disciplines are implemented over the same logical
// chain, both built on [spinlock.Mutex]:
//
//   - HandOverHand: pessimistic lock coupling. A goroutine always holds the
//     locks of two adjacent nodes while traversing or mutating.
//   - Optimistic: traversal takes no locks; mutations lock the splice point
//     and validate that the traversal result still holds, retrying if not.
//
// Usage:
//
//	s := listset.NewOptimistic[uint64, uint64]()
//	s.Insert(3, 123)
//	v, ok := s.Find(3)
//	s.Remove(3)
//
// Thread Safety:
//
// Insert, Remove and Find are safe for concurrent use. Print,
// CountKeysAndCheckConsistency and Close are sequential only and must not
// overlap with any mutation.
//
// Memory reclamation:
//
// An unlinked HandOverHand node is poisoned immediately; this is safe because
// reaching a node requires holding its predecessor's lock, so the remover is
// the only goroutine that can still reference it. An unlinked Optimistic node
// keeps its successor link and is left to the garbage collector, because
// lock-free readers may still be standing on it.
package listset
