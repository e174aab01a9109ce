package strategy

import "iter"

// Mix merges several lazy template sequences into one fair interleaved
// sequence (spec §4.6). The result is a permutation of the multiset
// union of the inputs: Mix advances each input round-robin, taking at
// most one element from any generator before returning to the next, so
// no single input can starve the others. Once only one input generator
// has output remaining, Mix degenerates into pulling straight from it,
// at no further interleaving cost.
//
// The two-queue algorithm mirrors the design note's "pull-based
// iterators that own their frame state explicitly": iter.Pull turns
// each child iter.Seq into an explicit (next, stop) pair, which is
// exactly the state a hand-rolled coroutine would otherwise need to
// keep.
func Mix(seqs ...iter.Seq[Template]) iter.Seq[Template] {
	return func(yield func(Template) bool) {
		type gen struct {
			next func() (Template, bool)
			stop func()
		}
		all := make([]gen, len(seqs))
		for i, s := range seqs {
			all[i].next, all[i].stop = iter.Pull(s)
		}
		defer func() {
			for _, g := range all {
				g.stop()
			}
		}()

		active := make([]int, len(all))
		for i := range all {
			active[i] = i
		}
		var nextBatch []int
		solo := -1

		for {
			if solo < 0 && len(active)+len(nextBatch) == 1 {
				if len(active) == 1 {
					solo = active[0]
				} else {
					solo = nextBatch[0]
				}
			}

			if solo >= 0 {
				v, ok := all[solo].next()
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
				continue
			}

			if len(active) == 0 {
				if len(nextBatch) == 0 {
					return
				}
				active = make([]int, len(nextBatch))
				for i, idx := range nextBatch {
					active[len(nextBatch)-1-i] = idx
				}
				nextBatch = nextBatch[:0]
			}

			idx := active[len(active)-1]
			active = active[:len(active)-1]
			v, ok := all[idx].next()
			if ok {
				nextBatch = append(nextBatch, idx)
				if !yield(v) {
					return
				}
			}
		}
	}
}
