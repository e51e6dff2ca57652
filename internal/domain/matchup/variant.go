package matchup

import "strings"

// Variant identifies one supported way of obtaining matchup data. Each variant
// maps to exactly one fetcher/extractor pair; a declared variant with no pair
// registered yields an empty, non-erroring result.
type Variant string

const (
	// VariantOpenDotaAPI pulls raw winrates in professional matches from the
	// OpenDota JSON API.
	VariantOpenDotaAPI Variant = "opendota-api"
	// VariantDotabuffScrape scrapes advantage scores in public matches from
	// Dotabuff counter pages.
	VariantDotabuffScrape Variant = "dotabuff-scrape"
	// VariantOpenDotaScrape is declared for the menu but has no implementation
	// yet.
	VariantOpenDotaScrape Variant = "opendota-scrape"
)

func AllVariants() []Variant {
	return []Variant{VariantOpenDotaAPI, VariantDotabuffScrape, VariantOpenDotaScrape}
}

func (v Variant) Valid() bool {
	switch v {
	case VariantOpenDotaAPI, VariantDotabuffScrape, VariantOpenDotaScrape:
		return true
	}
	return false
}

// Describe returns the human menu line for the variant. Display only, no
// semantic meaning.
func (v Variant) Describe() string {
	switch v {
	case VariantOpenDotaAPI:
		return "Obtain raw winrates in professional matches from OpenDota (with the OpenDota API)"
	case VariantDotabuffScrape:
		return "Obtain advantage-scores in public matches from Dotabuff (with web-scraping techniques)"
	case VariantOpenDotaScrape:
		return "Obtain advantage-scores from OpenDota pages (not yet supported)"
	}
	return ""
}

func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	return v, v.Valid()
}
