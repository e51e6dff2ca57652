package matchup

import "fmt"

// SampleSizeUnknown marks records from providers that publish a pre-aggregated
// score without exposing how many games it was computed from.
const SampleSizeUnknown = -1

// Side pins a record to one output list when the provider already buckets its
// rows positionally. Undeclared records are bucketed by thresholds instead.
type Side int

const (
	SideUndeclared Side = iota
	SideCounters
	SideCountered
)

// Record is one normalized pairwise statistic between the queried hero and an
// opponent, independent of which provider produced it.
type Record struct {
	OpponentID int
	SampleSize int
	Score      float64
	Side       Side
}

func (r Record) HasSampleSize() bool {
	return r.SampleSize != SampleSizeUnknown
}

func (r Record) Validate() error {
	if r.OpponentID <= 0 {
		return fmt.Errorf("opponent id must be greater than zero")
	}
	if r.SampleSize < SampleSizeUnknown {
		return fmt.Errorf("invalid sample size: %d", r.SampleSize)
	}
	if r.Score < 0 || r.Score > 1 {
		return fmt.Errorf("score must be within [0,1]: %g", r.Score)
	}

	return nil
}
