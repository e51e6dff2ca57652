package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

// Prompt is the line-oriented command loop. It owns only presentation: every
// counter computation goes through the service, and every failure kind maps
// to its own message instead of ending the loop.
type Prompt struct {
	svc     *usecase.CounterService
	heroes  *hero.Table
	printer *Printer
	in      *bufio.Scanner
	out     io.Writer
	variant matchup.Variant
	logger  *logging.Logger
}

func NewPrompt(
	svc *usecase.CounterService,
	heroes *hero.Table,
	variant matchup.Variant,
	in io.Reader,
	out io.Writer,
	logger *logging.Logger,
) *Prompt {
	if logger == nil {
		logger = logging.Default()
	}
	return &Prompt{
		svc:     svc,
		heroes:  heroes,
		printer: NewPrinter(heroes, out),
		in:      bufio.NewScanner(in),
		out:     out,
		variant: variant,
		logger:  logger,
	}
}

func (p *Prompt) Run(ctx context.Context) error {
	p.banner()

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(p.out, "\nEnter a command (x to exit): ")
		if !p.in.Scan() {
			return p.in.Err()
		}

		line := strings.ToLower(strings.TrimSpace(p.in.Text()))
		switch line {
		case "":
			continue
		case "x":
			return nil
		case "names":
			p.printNames()
		case "modes":
			p.modeMenu()
		default:
			p.lookupCounters(ctx, line)
		}
	}
}

func (p *Prompt) banner() {
	fmt.Fprint(p.out, "Welcome to the Dota 2 Matchups App!\n\n")
	fmt.Fprintln(p.out, "Instructions:")
	fmt.Fprintln(p.out, "\tEnter a hero name to see their counters.")
	fmt.Fprintln(p.out, "\tEnter 'names' to see a list of all hero names.")
	fmt.Fprintln(p.out, "\tEnter 'modes' to see different ways of getting counter information (web-scraping vs. API usage).")
}

func (p *Prompt) printNames() {
	fmt.Fprintln(p.out, "Hero name list: ")
	for _, name := range p.heroes.Names() {
		fmt.Fprintf(p.out, "\t%s\n", name)
	}
}

func (p *Prompt) modeMenu() {
	fmt.Fprintf(p.out, "\nCurrent Mode: %s\n\n", p.variant)
	fmt.Fprintln(p.out, "Select one of the following modes for analyzing counters by entering the corresponding key:")
	for _, v := range p.svc.Variants() {
		fmt.Fprintf(p.out, "\t%s - %s\n", v, v.Describe())
	}

	fmt.Fprint(p.out, "\nEnter mode key: ")
	if !p.in.Scan() {
		return
	}
	input := p.in.Text()

	variant, ok := matchup.ParseVariant(input)
	if !ok {
		fmt.Fprintf(p.out, "Unable to recognize: %s, please try again with a key from the list.\n", strings.TrimSpace(input))
		return
	}
	p.variant = variant
}

func (p *Prompt) lookupCounters(ctx context.Context, name string) {
	heroID, ok := p.heroes.NameToID(name)
	if !ok {
		fmt.Fprintln(p.out, "Hero not found, please try again with another name.")
		return
	}

	result, err := p.svc.Compute(ctx, heroID, p.variant)
	if err != nil {
		p.logger.WarnContext(ctx, "counter lookup failed", "hero_id", heroID, "variant", p.variant, "error", err)
		fmt.Fprintln(p.out, failureMessage(err))
		return
	}

	if !p.svc.Supported(p.variant) {
		fmt.Fprintf(p.out, "Mode %s has no implementation yet, nothing to show.\n", p.variant)
		return
	}

	if err := p.printer.PrintResult(result); err != nil {
		p.logger.Warn("write result", "error", err)
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return "Hero not found at the provider, please try again with another name."
	case errors.Is(err, usecase.ErrNetwork):
		return "Network Error: unable to connect."
	case errors.Is(err, usecase.ErrSchema):
		return "The provider answered with data in an unexpected format."
	case errors.Is(err, usecase.ErrMarkup):
		return "The provider page no longer matches the expected layout."
	case errors.Is(err, usecase.ErrInvalidInput):
		return "Hero not found, please try again with another name."
	default:
		return "Unexpected error, please try again."
	}
}
