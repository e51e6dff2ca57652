package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

type scriptedFetcher struct {
	err error
}

func (f *scriptedFetcher) FetchMatchups(context.Context, hero.Hero) ([]byte, error) {
	return []byte("payload"), f.err
}

type scriptedExtractor struct {
	records []matchup.Record
}

func (e *scriptedExtractor) ExtractMatchups([]byte) ([]matchup.Record, error) {
	return e.records, nil
}

func promptTable() *hero.Table {
	return hero.NewTable([]hero.Hero{
		{ID: 1, Name: "Anti-Mage"},
		{ID: 2, Name: "Axe"},
		{ID: 14, Name: "Pudge"},
	})
}

func newScriptedPrompt(t *testing.T, pair usecase.ProviderPair, input string) (*Prompt, *bytes.Buffer) {
	t.Helper()

	table := promptTable()
	svc, err := usecase.NewCounterService(
		table,
		map[matchup.Variant]usecase.ProviderPair{matchup.VariantOpenDotaAPI: pair},
		matchup.DefaultThresholds(),
		nil,
	)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	out := &bytes.Buffer{}
	prompt := NewPrompt(svc, table, matchup.VariantOpenDotaAPI, strings.NewReader(input), out, nil)
	return prompt, out
}

func TestPrompt_HeroLookupPrintsBothLists(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{
		Fetcher: &scriptedFetcher{},
		Extractor: &scriptedExtractor{records: []matchup.Record{
			{OpponentID: 2, SampleSize: 20, Score: 0.65},
			{OpponentID: 14, SampleSize: 20, Score: 0.30},
		}},
	}
	prompt, out := newScriptedPrompt(t, pair, "Anti-Mage\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"This hero counters:",
		"\tAxe:\t65.00%",
		"This hero is countered by:",
		"\tPudge:\t30.00%",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPrompt_UnknownHero(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{Fetcher: &scriptedFetcher{}, Extractor: &scriptedExtractor{}}
	prompt, out := newScriptedPrompt(t, pair, "riki\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Hero not found") {
		t.Fatalf("expected a not-found message:\n%s", out.String())
	}
}

func TestPrompt_Names(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{Fetcher: &scriptedFetcher{}, Extractor: &scriptedExtractor{}}
	prompt, out := newScriptedPrompt(t, pair, "names\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	text := out.String()
	antiMage := strings.Index(text, "Anti-Mage")
	axe := strings.Index(text, "Axe")
	pudge := strings.Index(text, "Pudge")
	if antiMage < 0 || axe < 0 || pudge < 0 || !(antiMage < axe && axe < pudge) {
		t.Fatalf("names not listed alphabetically:\n%s", text)
	}
}

func TestPrompt_ModeMenuSwitchesVariant(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{Fetcher: &scriptedFetcher{}, Extractor: &scriptedExtractor{}}
	prompt, out := newScriptedPrompt(t, pair, "modes\nopendota-scrape\naxe\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Current Mode: opendota-api") {
		t.Fatalf("menu did not show the current mode:\n%s", text)
	}
	// Every declared variant appears in the menu with a description.
	for _, v := range matchup.AllVariants() {
		if !strings.Contains(text, string(v)+" - ") {
			t.Fatalf("menu missing variant %s:\n%s", v, text)
		}
	}
	// The switched-to variant has no implementation: lookups report that
	// instead of failing.
	if !strings.Contains(text, "has no implementation yet") {
		t.Fatalf("expected the unsupported-mode notice:\n%s", text)
	}
}

func TestPrompt_ModeMenuRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{Fetcher: &scriptedFetcher{}, Extractor: &scriptedExtractor{}}
	prompt, out := newScriptedPrompt(t, pair, "modes\ncarrier-pigeon\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Unable to recognize: carrier-pigeon") {
		t.Fatalf("expected an unknown-key message:\n%s", out.String())
	}
}

func TestPrompt_ProviderFailureKeepsLoopAlive(t *testing.T) {
	t.Parallel()

	pair := usecase.ProviderPair{
		Fetcher:   &scriptedFetcher{err: fmt.Errorf("%w: connection refused", usecase.ErrNetwork)},
		Extractor: &scriptedExtractor{},
	}
	prompt, out := newScriptedPrompt(t, pair, "axe\nnames\nx\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Network Error: unable to connect.") {
		t.Fatalf("expected the network failure message:\n%s", text)
	}
	if !strings.Contains(text, "Hero name list:") {
		t.Fatalf("loop must continue after a failure:\n%s", text)
	}
}

func TestFailureMessages_DistinctPerKind(t *testing.T) {
	t.Parallel()

	kinds := []error{
		usecase.ErrNetwork,
		usecase.ErrNotFound,
		usecase.ErrSchema,
		usecase.ErrMarkup,
	}

	seen := map[string]error{}
	for _, kind := range kinds {
		msg := failureMessage(fmt.Errorf("wrapped: %w", kind))
		if prev, dup := seen[msg]; dup {
			t.Fatalf("kinds %v and %v share the message %q", prev, kind, msg)
		}
		seen[msg] = kind
	}
}
