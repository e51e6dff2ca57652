package opendota

import (
	"fmt"

	sonic "github.com/bytedance/sonic"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

// Extractor normalizes the OpenDota matchups array. Stateless; score is the
// raw win fraction and the sample size is the published game count.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractMatchups(payload []byte) ([]matchup.Record, error) {
	var rows []matchupRow
	if err := sonic.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode matchups array: %v", usecase.ErrSchema, err)
	}

	records := make([]matchup.Record, 0, len(rows))
	for i, row := range rows {
		if row.HeroID == nil || row.GamesPlayed == nil || row.Wins == nil {
			return nil, fmt.Errorf("%w: row %d is missing a required field", usecase.ErrSchema, i)
		}
		// Guard before dividing.
		if *row.GamesPlayed == 0 {
			return nil, fmt.Errorf("%w: row %d has zero games played", usecase.ErrSchema, i)
		}

		rec := matchup.Record{
			OpponentID: *row.HeroID,
			SampleSize: *row.GamesPlayed,
			Score:      float64(*row.Wins) / float64(*row.GamesPlayed),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", usecase.ErrSchema, i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}
