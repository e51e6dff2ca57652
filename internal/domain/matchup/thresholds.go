package matchup

import "fmt"

// Thresholds holds the classification cutoffs. A value is passed into
// Classify so tests can exercise alternate cutoffs without process-wide
// state; callers must not mutate a Thresholds after startup.
type Thresholds struct {
	// CounterCutoff: a score at or below this marks the opponent as a counter
	// to the queried hero.
	CounterCutoff float64
	// CounteredCutoff: a score at or above this marks the opponent as
	// countered by the queried hero.
	CounteredCutoff float64
	// MinSampleSize excludes records backed by fewer games. Records without a
	// known sample size are never excluded by this rule.
	MinSampleSize int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CounterCutoff:   0.40,
		CounteredCutoff: 0.60,
		MinSampleSize:   10,
	}
}

func (t Thresholds) Validate() error {
	if t.CounterCutoff < 0 || t.CounterCutoff > 1 {
		return fmt.Errorf("counter cutoff must be within [0,1]: %g", t.CounterCutoff)
	}
	if t.CounteredCutoff < 0 || t.CounteredCutoff > 1 {
		return fmt.Errorf("countered cutoff must be within [0,1]: %g", t.CounteredCutoff)
	}
	if t.CounterCutoff > t.CounteredCutoff {
		return fmt.Errorf("counter cutoff %g exceeds countered cutoff %g", t.CounterCutoff, t.CounteredCutoff)
	}
	if t.MinSampleSize < 0 {
		return fmt.Errorf("min sample size must not be negative: %d", t.MinSampleSize)
	}

	return nil
}
