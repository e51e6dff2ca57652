package app

import (
	"fmt"
	"io"

	"github.com/GabeGustafson/dota-matchups-CLI/external/dotabuff"
	"github.com/GabeGustafson/dota-matchups-CLI/external/opendota"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/config"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/interfaces/cli"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

// NewPrompt wires the whole application: hero table, provider clients,
// counter service and the command loop. A heroes file that fails to load is
// fatal here, nothing downstream works without id resolution.
func NewPrompt(cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) (*cli.Prompt, error) {
	heroes, err := hero.LoadTable(cfg.HeroesFile)
	if err != nil {
		return nil, fmt.Errorf("load hero table: %w", err)
	}

	openDotaClient := opendota.NewClient(opendota.ClientConfig{
		BaseURL:    cfg.OpenDotaBaseURL,
		Timeout:    cfg.OpenDotaTimeout,
		MaxRetries: cfg.OpenDotaMaxRetries,
		Logger:     logger,
	})
	dotabuffClient := dotabuff.NewClient(dotabuff.ClientConfig{
		BaseURL:    cfg.DotabuffBaseURL,
		UserAgent:  cfg.DotabuffUserAgent,
		Timeout:    cfg.DotabuffTimeout,
		MaxRetries: cfg.DotabuffMaxRetries,
		Logger:     logger,
	})

	providers := map[matchup.Variant]usecase.ProviderPair{
		matchup.VariantOpenDotaAPI: {
			Fetcher:   openDotaClient,
			Extractor: opendota.NewExtractor(),
		},
		matchup.VariantDotabuffScrape: {
			Fetcher:   dotabuffClient,
			Extractor: dotabuff.NewExtractor(heroes),
		},
	}

	svc, err := usecase.NewCounterService(heroes, providers, matchup.DefaultThresholds(), logger)
	if err != nil {
		return nil, fmt.Errorf("build counter service: %w", err)
	}

	variant, ok := matchup.ParseVariant(cfg.DefaultVariant)
	if !ok {
		return nil, fmt.Errorf("unknown default variant: %q", cfg.DefaultVariant)
	}

	return cli.NewPrompt(svc, heroes, variant, in, out, logger), nil
}
