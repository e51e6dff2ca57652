package dotabuff

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/matchup"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

// The counters page carries exactly two tables with this class: the first
// lists heroes that counter the subject, the second the heroes the subject
// counters. The order is a positional convention of the page, never inferred
// from headings.
const sectionSelector = "table.counters-table"

const minRowCells = 3

// Extractor parses Dotabuff counter pages into normalized records. Row
// scores are advantage percentages over public matches; the page publishes
// no game counts, so records carry no sample size. A row that does not match
// the layout fails the whole extraction: malformed markup signals a page
// redesign that must surface, not be skipped over.
type Extractor struct {
	heroes hero.Resolver
}

func NewExtractor(heroes hero.Resolver) *Extractor {
	return &Extractor{heroes: heroes}
}

func (e *Extractor) ExtractMatchups(payload []byte) ([]matchup.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: parse document: %v", usecase.ErrMarkup, err)
	}

	sections := doc.Find(sectionSelector)
	if sections.Length() != 2 {
		return nil, fmt.Errorf("%w: found %d counter sections, want 2", usecase.ErrMarkup, sections.Length())
	}

	sides := []matchup.Side{matchup.SideCounters, matchup.SideCountered}
	var records []matchup.Record
	for i := range sides {
		sectionRecords, err := e.extractSection(sections.Eq(i), sides[i])
		if err != nil {
			return nil, err
		}
		records = append(records, sectionRecords...)
	}

	return records, nil
}

func (e *Extractor) extractSection(section *goquery.Selection, side matchup.Side) ([]matchup.Record, error) {
	var records []matchup.Record
	var rowErr error

	section.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 { // header row
			return true
		}

		cells := row.Find("td")
		if cells.Length() < minRowCells {
			rowErr = fmt.Errorf("%w: row %d has %d cells, want at least %d", usecase.ErrMarkup, i, cells.Length(), minRowCells)
			return false
		}

		name := strings.TrimSpace(cells.Eq(1).Text())
		score, err := parsePercentCell(cells.Eq(2))
		if err != nil {
			rowErr = fmt.Errorf("%w: row %d: %v", usecase.ErrMarkup, i, err)
			return false
		}

		opponentID, ok := e.heroes.NameToID(name)
		if !ok {
			// A hero the static table does not know yet; skip the row.
			return true
		}

		records = append(records, matchup.Record{
			OpponentID: opponentID,
			SampleSize: matchup.SampleSizeUnknown,
			Score:      score,
			Side:       side,
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return records, nil
}

// parsePercentCell reads the cell's first text node as a percentage and maps
// it onto [0,1]. Nested elements after the number (bars, sparklines) are
// ignored.
func parsePercentCell(cell *goquery.Selection) (float64, error) {
	text := firstTextNode(cell)
	if text == "" {
		return 0, fmt.Errorf("percent cell has no text")
	}

	trimmed := strings.TrimSuffix(strings.TrimSpace(text), "%")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse percent %q: %v", text, err)
	}

	score := value / 100
	if score < 0 || score > 1 {
		return 0, fmt.Errorf("percent %q outside [0,100]", text)
	}

	return score, nil
}

func firstTextNode(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	for n := sel.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			return n.Data
		}
	}
	return ""
}
