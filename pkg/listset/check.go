package listset

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"golang.org/x/exp/constraints"
)

// countAndCheck counts keys, panicking on the first pair that is not
// strictly ascending. Strict ascent also rules out duplicates.
func countAndCheck[K constraints.Ordered](keys iter.Seq[K]) int {
	n := 0
	var prev K
	for k := range keys {
		if n > 0 && k <= prev {
			panic(&ConsistencyError{Position: n, Prev: prev, Next: k})
		}
		prev = k
		n++
	}
	return n
}

func printKeys[K any](w io.Writer, keys iter.Seq[K]) error {
	bw := bufio.NewWriter(w)
	sep := ""
	for k := range keys {
		bw.WriteString(sep)
		fmt.Fprint(bw, k)
		sep = ", "
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
