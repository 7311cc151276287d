package go_radix_tree

import "github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal"

type Stats struct {
	StatInserts int64
	StatUpdates int64
	StatRemoves int64
	StatHits    int64
	StatMisses  int64
	// StatSplits counts edges cut in two by an insertion
	StatSplits int64
	// StatPrunes counts edges dropped because their child became empty
	StatPrunes int64
	// StatMerges counts nodes folded into their parent edge, see WithCompaction
	StatMerges int64
}

func snapshotStats(s *internal.Stats) Stats {
	return Stats{
		StatInserts: s.Inserts.Load(),
		StatUpdates: s.Updates.Load(),
		StatRemoves: s.Removes.Load(),
		StatHits:    s.Hits.Load(),
		StatMisses:  s.Misses.Load(),
		StatSplits:  s.Splits.Load(),
		StatPrunes:  s.Prunes.Load(),
		StatMerges:  s.Merges.Load(),
	}
}
