package workload

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// OpType is a set operation kind.
type OpType uint8

const (
	OpFind OpType = iota
	OpInsert
	OpRemove
)

func (o OpType) String() string {
	switch o {
	case OpFind:
		return "find"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// opBuckets is the hash modulus. With updatePercent u, u of the 200 buckets
// are inserts and u are removes, so u% of all operations are updates.
const opBuckets = 200

// OpFor returns the operation type of sample i in a workload of m samples.
func OpFor(m, i uint64, updatePercent int) OpType {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], m+i)
	h := murmur3.Sum64(buf[:]) % opBuckets

	u := uint64(updatePercent)
	switch {
	case h < u:
		return OpInsert
	case h < 2*u:
		return OpRemove
	default:
		return OpFind
	}
}
