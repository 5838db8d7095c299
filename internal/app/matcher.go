package app

import (
	"strings"

	"travel_reco/internal/domain"
)

type keywordRule struct {
	keywords []string
	category domain.Category
}

// keywordRules is evaluated in order; the first rule with a keyword contained
// in the query decides the category.
var keywordRules = []keywordRule{
	{keywords: []string{"beach", "beaches"}, category: domain.CategoryBeach},
	{keywords: []string{"temple", "temples"}, category: domain.CategoryTemple},
	{keywords: []string{"country", "countries"}, category: domain.CategoryCity},
}

// Keywords lists the recognized category keywords in priority order.
func Keywords() []string {
	out := make([]string, 0, len(keywordRules))
	for _, r := range keywordRules {
		out = append(out, r.keywords[0])
	}
	return out
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Classify reports which branch Match takes for query.
func Classify(query string) domain.Category {
	q := normalizeQuery(query)
	if q == "" {
		return domain.CategoryAll
	}
	for _, r := range keywordRules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.category
			}
		}
	}
	return domain.CategoryName
}

// Match resolves a free-text query against the catalog. Category results are
// the catalog's own slices, in catalog order. A nil catalog matches nothing.
func Match(c *domain.Catalog, query string) []domain.Destination {
	if c == nil {
		return []domain.Destination{}
	}
	q := normalizeQuery(query)
	switch Classify(q) {
	case domain.CategoryAll:
		return FlattenAll(c)
	case domain.CategoryBeach:
		return orEmpty(c.Beaches)
	case domain.CategoryTemple:
		return orEmpty(c.Temples)
	case domain.CategoryCity:
		return c.Cities()
	default:
		return searchByName(c, q)
	}
}

// searchByName expects an already normalized q. A matching country name adds
// all its cities; otherwise cities are checked one by one.
func searchByName(c *domain.Catalog, q string) []domain.Destination {
	out := []domain.Destination{}
	for _, country := range c.Countries {
		if containsFold(country.Name, q) {
			out = append(out, country.Cities...)
			continue
		}
		for _, city := range country.Cities {
			if containsFold(city.Name, q) {
				out = append(out, city)
			}
		}
	}
	for _, t := range c.Temples {
		if containsFold(t.Name, q) {
			out = append(out, t)
		}
	}
	for _, b := range c.Beaches {
		if containsFold(b.Name, q) {
			out = append(out, b)
		}
	}
	return out
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

func orEmpty(ds []domain.Destination) []domain.Destination {
	if ds == nil {
		return []domain.Destination{}
	}
	return ds
}
