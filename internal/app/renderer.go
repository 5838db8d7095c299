package app

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"travel_reco/internal/domain"
)

const (
	DefaultTitle = "Recommandations"

	imageSentinel   = "enter_your_image"
	placeholderBase = "https://via.placeholder.com/300x200/4CAF50/ffffff?text="
	noImageURL      = placeholderBase + "No+Image"
)

type Renderer struct {
	now func() time.Time
}

// NewRenderer uses now for card local times; nil means time.Now.
func NewRenderer(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now}
}

// Render builds a complete replacement view for items found by query.
func (r *Renderer) Render(items []domain.Destination, query string) domain.View {
	q := strings.TrimSpace(query)
	v := domain.View{
		Title: Title(q),
		Query: q,
		Cards: r.Cards(items),
	}
	if len(items) == 0 {
		v.Notice = NoResults(q)
	}
	return v
}

func (r *Renderer) Cards(items []domain.Destination) []domain.CardDescriptor {
	out := make([]domain.CardDescriptor, 0, len(items))
	for _, it := range items {
		card := domain.CardDescriptor{
			ImageURL:         ImageURL(it),
			FallbackImageURL: noImageURL,
			Name:             it.Name,
			Description:      it.Description,
			TimeZone:         timeZoneFor(it.Name),
		}
		card.LocalTime = r.localTime(card.TimeZone)
		out = append(out, card)
	}
	return out
}

// Restamp returns a copy of cards with local times recomputed for now.
func (r *Renderer) Restamp(cards []domain.CardDescriptor) []domain.CardDescriptor {
	out := make([]domain.CardDescriptor, len(cards))
	copy(out, cards)
	for i := range out {
		out[i].LocalTime = r.localTime(out[i].TimeZone)
	}
	return out
}

// Title is the results heading: the query as typed, or the default label.
func Title(query string) string {
	if q := strings.TrimSpace(query); q != "" {
		return q
	}
	return DefaultTitle
}

func NoResults(query string) *domain.Notice {
	quoted := make([]string, 0, len(keywordRules))
	for _, kw := range Keywords() {
		quoted = append(quoted, fmt.Sprintf("%q", kw))
	}
	return &domain.Notice{
		Heading:  "No recommendations found for \"" + query + "\"",
		Guidance: "Try searching for " + strings.Join(quoted, ", ") + ", or specific destination names.",
	}
}

// ImageURL keeps a real image URL and replaces a missing or sentinel one with a
// placeholder labelled by the first comma-separated segment of the name.
func ImageURL(d domain.Destination) string {
	if d.ImageURL != "" && !strings.Contains(d.ImageURL, imageSentinel) {
		return d.ImageURL
	}
	return placeholderBase + escapeLabel(firstSegment(d.Name))
}

func firstSegment(name string) string {
	if i := strings.IndexByte(name, ','); i >= 0 {
		return name[:i]
	}
	return name
}

// escapeLabel percent-encodes s for a query value, spaces as %20.
func escapeLabel(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
