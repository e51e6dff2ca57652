package cli

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
)

// Printer renders a classified result for the terminal. Output is assembled
// in a pooled buffer and written in one call so interleaved log lines cannot
// split a listing.
type Printer struct {
	heroes hero.Resolver
	out    io.Writer
}

func NewPrinter(heroes hero.Resolver, out io.Writer) *Printer {
	return &Printer{heroes: heroes, out: out}
}

func (p *Printer) PrintResult(res matchup.Result) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("This hero counters:\n")
	p.writeEntries(buf, res.Countered)
	_, _ = buf.WriteString("This hero is countered by:\n")
	p.writeEntries(buf, res.Counters)

	_, err := p.out.Write(buf.Bytes())
	return err
}

func (p *Printer) writeEntries(buf *bytebufferpool.ByteBuffer, entries []matchup.Entry) {
	for _, entry := range entries {
		name, ok := p.heroes.IDToName(entry.OpponentID)
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(buf, "\t%s:\t%.2f%%\n", name, entry.Score*100)
	}
}
