package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	for _, items := range []int{0, 1, 7, 100, 4097} {
		covered := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&covered[i], 1)
			}
		})

		for i, c := range covered {
			if c != 1 {
				t.Fatalf("items=%d: index %d processed %d times, want exactly once", items, i, c)
			}
		}
	}
}

func TestParallelizeRangesAreDisjoint(t *testing.T) {
	const items = 1000
	var total int64
	Parallelize(items, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})

	if total != items {
		t.Errorf("ranges cover %d items, want %d", total, items)
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// At or below the threshold the callback runs once over the whole
	// range, on the calling goroutine.
	calls := 0
	ParallelizeWithThreshold(10, 10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential call got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential path ran %d times, want 1", calls)
	}

	// Above the threshold every item is still processed exactly once.
	covered := make([]int32, 100)
	ParallelizeWithThreshold(100, 10, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("index %d processed %d times, want exactly once", i, c)
		}
	}
}
