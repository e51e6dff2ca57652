package usecase

import (
	"context"
	"fmt"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
)

// MatchupFetcher retrieves the raw provider payload for one hero. Exactly
// one network round trip per successful call; the provider derives its own
// request key (numeric id or name slug) from the subject.
type MatchupFetcher interface {
	FetchMatchups(ctx context.Context, subject hero.Hero) ([]byte, error)
}

// MatchupExtractor turns one provider's raw payload into normalized records.
// Implementations hold no per-call state, so one call can never leak records
// into the next.
type MatchupExtractor interface {
	ExtractMatchups(payload []byte) ([]matchup.Record, error)
}

// ProviderPair binds a fetcher to the extractor that understands its payload.
// The pairing per variant is an invariant of the registry.
type ProviderPair struct {
	Fetcher   MatchupFetcher
	Extractor MatchupExtractor
}

// CounterService computes counter relationships for a hero against one
// provider variant. It holds only immutable wiring; every Compute call works
// on fresh locals.
type CounterService struct {
	heroes     hero.Resolver
	providers  map[matchup.Variant]ProviderPair
	thresholds matchup.Thresholds
	logger     *logging.Logger
}

func NewCounterService(
	heroes hero.Resolver,
	providers map[matchup.Variant]ProviderPair,
	thresholds matchup.Thresholds,
	logger *logging.Logger,
) (*CounterService, error) {
	if heroes == nil {
		return nil, fmt.Errorf("hero resolver is required")
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}
	if logger == nil {
		logger = logging.Default()
	}

	registry := make(map[matchup.Variant]ProviderPair, len(providers))
	for variant, pair := range providers {
		if !variant.Valid() {
			return nil, fmt.Errorf("unknown provider variant: %q", variant)
		}
		if pair.Fetcher == nil || pair.Extractor == nil {
			return nil, fmt.Errorf("variant %s must register both a fetcher and an extractor", variant)
		}
		registry[variant] = pair
	}

	return &CounterService{
		heroes:     heroes,
		providers:  registry,
		thresholds: thresholds,
		logger:     logger,
	}, nil
}

// Variants lists every declared variant for menu display, supported or not.
func (s *CounterService) Variants() []matchup.Variant {
	return matchup.AllVariants()
}

// Supported reports whether a fetcher/extractor pair is registered for the
// variant.
func (s *CounterService) Supported(variant matchup.Variant) bool {
	_, ok := s.providers[variant]
	return ok
}

// Compute runs fetch, extract and classify for one hero against one variant.
//
// Fetch and extract failures propagate unchanged so the caller can tell a
// missing hero from a broken provider; a declared variant with no registered
// pair returns an empty result and no error.
func (s *CounterService) Compute(ctx context.Context, heroID int, variant matchup.Variant) (matchup.Result, error) {
	ctx, span := startCounterSpan(ctx, "usecase.CounterService.Compute")
	defer span.End()

	name, ok := s.heroes.IDToName(heroID)
	if !ok {
		return matchup.Result{}, fmt.Errorf("%w: unknown hero id %d", ErrInvalidInput, heroID)
	}
	if !variant.Valid() {
		return matchup.Result{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, variant)
	}

	pair, ok := s.providers[variant]
	if !ok {
		s.logger.DebugContext(ctx, "variant not yet supported", "variant", variant)
		return matchup.Result{}, nil
	}

	subject := hero.Hero{ID: heroID, Name: name}
	payload, err := pair.Fetcher.FetchMatchups(ctx, subject)
	if err != nil {
		return matchup.Result{}, fmt.Errorf("fetch matchups hero_id=%d variant=%s: %w", heroID, variant, err)
	}

	records, err := pair.Extractor.ExtractMatchups(payload)
	if err != nil {
		return matchup.Result{}, fmt.Errorf("extract matchups hero_id=%d variant=%s: %w", heroID, variant, err)
	}

	records = s.dropUnresolvable(ctx, records)

	return matchup.Classify(records, s.thresholds), nil
}

// dropUnresolvable removes records whose opponent the static hero table does
// not know. Stale provider data is not fatal.
func (s *CounterService) dropUnresolvable(ctx context.Context, records []matchup.Record) []matchup.Record {
	kept := records[:0]
	dropped := 0
	for _, rec := range records {
		if _, ok := s.heroes.IDToName(rec.OpponentID); !ok {
			dropped++
			continue
		}
		kept = append(kept, rec)
	}
	if dropped > 0 {
		s.logger.DebugContext(ctx, "dropped unresolvable opponents", "count", dropped)
	}

	return kept
}
