package core

import "testing"

func TestPartitionCoversAllRowsExactly(t *testing.T) {
	for nrows := 1; nrows <= 48; nrows++ {
		for nworkers := 1; nworkers <= nrows; nworkers++ {
			ranges := Partition(nrows, nworkers)
			if len(ranges) != nworkers {
				t.Fatalf("Partition(%d,%d) returned %d ranges", nrows, nworkers, len(ranges))
			}
			if ranges[0].Start != 0 {
				t.Fatalf("Partition(%d,%d) first range starts at %d", nrows, nworkers, ranges[0].Start)
			}
			if ranges[len(ranges)-1].End != nrows-1 {
				t.Fatalf("Partition(%d,%d) last range ends at %d", nrows, nworkers, ranges[len(ranges)-1].End)
			}
			for i, rg := range ranges {
				if rg.Len() < 1 {
					t.Fatalf("Partition(%d,%d) range %d is empty", nrows, nworkers, i)
				}
				if i > 0 && rg.Start != ranges[i-1].End+1 {
					t.Fatalf("Partition(%d,%d) gap or overlap between range %d and %d", nrows, nworkers, i-1, i)
				}
			}
		}
	}
}

func TestPartitionBalancesRemainder(t *testing.T) {
	// The first nrows%nworkers ranges carry one extra row each.
	for nrows := 1; nrows <= 48; nrows++ {
		for nworkers := 1; nworkers <= nrows; nworkers++ {
			base := nrows / nworkers
			rem := nrows % nworkers
			for i, rg := range Partition(nrows, nworkers) {
				want := base
				if i < rem {
					want++
				}
				if rg.Len() != want {
					t.Fatalf("Partition(%d,%d) range %d has %d rows, expected %d", nrows, nworkers, i, rg.Len(), want)
				}
			}
		}
	}
}

func TestPartitionClampsWorkerCount(t *testing.T) {
	ranges := Partition(3, 10)
	if len(ranges) != 3 {
		t.Fatalf("Partition(3,10) returned %d ranges, expected 3", len(ranges))
	}
	for i, rg := range ranges {
		if rg.Len() != 1 {
			t.Fatalf("range %d has %d rows, expected 1", i, rg.Len())
		}
	}

	if got := Partition(5, 0); len(got) != 1 || got[0] != (Range{0, 4}) {
		t.Fatalf("Partition(5,0) = %v, expected single full range", got)
	}
}
