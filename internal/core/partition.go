package core

// Range is an inclusive span [Start, End] of row indices owned by one worker.
type Range struct {
	Start, End int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Partition splits the row indices [0, nrows) into nworkers contiguous
// ranges in increasing order. Row counts differ by at most one: the first
// nrows%nworkers ranges carry the extra row each, so work stays balanced.
// nworkers is clamped to [1, nrows] so every range holds at least one row.
func Partition(nrows, nworkers int) []Range {
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > nrows {
		nworkers = nrows
	}
	base := nrows / nworkers
	rem := nrows % nworkers
	ranges := make([]Range, nworkers)
	start := 0
	for i := range ranges {
		size := base
		if i < rem {
			size++
		}
		ranges[i] = Range{Start: start, End: start + size - 1}
		start += size
	}
	return ranges
}
