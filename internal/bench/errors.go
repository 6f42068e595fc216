package bench

import "errors"

var (
	// ErrConservation is returned when a round's final key count does not
	// match the initial count plus successful inserts minus removes.
	ErrConservation = errors.New("bench: bad size")

	// ErrSanity is returned when the sanity scenario observes a wrong
	// membership result.
	ErrSanity = errors.New("bench: sanity check failed")
)
