package bench

import (
	"context"
	"fmt"

	"github.com/yndnr/listset-go/pkg/listset"
)

// Sanity inserts 3, 7, 1 and 11, removes 3, and checks membership, printing
// the set after every step.
func (r *Runner) Sanity(ctx context.Context) error {
	set, err := listset.New[uint64, uint64](r.variant)
	if err != nil {
		return err
	}
	defer set.Close()

	log := r.log.With("set", string(r.variant))
	log.Info("running sanity checks")

	steps := []struct {
		insert bool
		key    uint64
	}{
		{true, 3}, {true, 7}, {true, 1}, {true, 11}, {false, 3},
	}

	if err := set.Print(r.out); err != nil {
		return err
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.insert {
			set.Insert(s.key, fillValue)
		} else {
			set.Remove(s.key)
		}
		if err := set.Print(r.out); err != nil {
			return err
		}
	}

	for _, k := range []uint64{7, 1, 11} {
		if _, ok := set.Find(k); !ok {
			return fmt.Errorf("%w: key %d not found", ErrSanity, k)
		}
	}
	for _, k := range []uint64{10, 3} {
		if _, ok := set.Find(k); ok {
			return fmt.Errorf("%w: unexpected key %d", ErrSanity, k)
		}
	}
	if got := set.CountKeysAndCheckConsistency(); got != 3 {
		return fmt.Errorf("%w: %d keys, want 3", ErrSanity, got)
	}

	log.Info("sanity checks passed")
	return nil
}
