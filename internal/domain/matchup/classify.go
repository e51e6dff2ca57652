package matchup

import "sort"

// Entry is one opponent in a classified output list.
type Entry struct {
	OpponentID int
	Score      float64
}

// Result holds the two ranked lists produced for one hero. Counters are
// opponents that statistically beat the hero, Countered are opponents the
// hero statistically beats. Both lists may be empty; emptiness is not an
// error.
type Result struct {
	Counters  []Entry
	Countered []Entry
}

// Classify buckets records into counters and countered opponents.
//
// Records with a known sample size below MinSampleSize are dropped first.
// Records that arrive with a declared side keep it as-is; the remaining
// records are bucketed by score, and the open band between the two cutoffs is
// discarded on purpose. Both cutoffs are inclusive.
//
// Countered is sorted by score descending, Counters ascending, so the
// strongest relationship comes first in each list. Sorting is stable: equal
// scores keep their extraction order.
func Classify(records []Record, thresholds Thresholds) Result {
	counters := make([]Entry, 0, len(records))
	countered := make([]Entry, 0, len(records))

	for _, rec := range records {
		if rec.HasSampleSize() && rec.SampleSize < thresholds.MinSampleSize {
			continue
		}

		entry := Entry{OpponentID: rec.OpponentID, Score: rec.Score}

		switch rec.Side {
		case SideCounters:
			counters = append(counters, entry)
		case SideCountered:
			countered = append(countered, entry)
		default:
			switch {
			case rec.Score >= thresholds.CounteredCutoff:
				countered = append(countered, entry)
			case rec.Score <= thresholds.CounterCutoff:
				counters = append(counters, entry)
			}
		}
	}

	sort.SliceStable(countered, func(i, j int) bool { return countered[i].Score > countered[j].Score })
	sort.SliceStable(counters, func(i, j int) bool { return counters[i].Score < counters[j].Score })

	return Result{Counters: counters, Countered: countered}
}
