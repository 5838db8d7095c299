package app_test

import (
	"strings"
	"testing"
	"time"

	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

const placeholder = "https://via.placeholder.com/300x200/4CAF50/ffffff?text="

func fixedClock() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

func TestImageURL(t *testing.T) {
	cases := []struct {
		in   domain.Destination
		want string
	}{
		{domain.Destination{Name: "Tokyo, Japan", ImageURL: "enter_your_image_url_here"}, placeholder + "Tokyo"},
		{domain.Destination{Name: "Bora Bora"}, placeholder + "Bora%20Bora"},
		{domain.Destination{Name: "São Paulo, Brazil"}, placeholder + "S%C3%A3o%20Paulo"},
		{domain.Destination{Name: "Fish & Chips, UK"}, placeholder + "Fish%20%26%20Chips"},
		{domain.Destination{Name: "Kinkaku-ji, Japan", ImageURL: "https://img.example/kinkaku.jpg"}, "https://img.example/kinkaku.jpg"},
	}
	for _, tc := range cases {
		if got := app.ImageURL(tc.in); got != tc.want {
			t.Fatalf("ImageURL(%q): want %s got %s", tc.in.Name, tc.want, got)
		}
	}
}

func TestImageURL_DoesNotMutateDestination(t *testing.T) {
	c := sampleCatalog()
	_ = app.NewRenderer(fixedClock).Cards(app.FlattenAll(c))
	if c.Countries[0].Cities[0].ImageURL != "enter_your_image_url_here" {
		t.Fatalf("destination was mutated: %+v", c.Countries[0].Cities[0])
	}
}

func TestTitle(t *testing.T) {
	if got := app.Title(""); got != "Recommandations" {
		t.Fatalf("blank title: %q", got)
	}
	if got := app.Title("  "); got != "Recommandations" {
		t.Fatalf("whitespace title: %q", got)
	}
	if got := app.Title("Tokyo Temples"); got != "Tokyo Temples" {
		t.Fatalf("query title should keep the typed text: %q", got)
	}
}

func TestRender_Cards(t *testing.T) {
	r := app.NewRenderer(fixedClock)
	v := r.Render(app.FlattenAll(sampleCatalog()), "")

	if v.Title != "Recommandations" || v.Notice != nil || len(v.Cards) != 3 {
		t.Fatalf("unexpected view: %+v", v)
	}
	tokyo := v.Cards[0]
	if tokyo.Name != "Tokyo, Japan" || tokyo.Description != "d1" || tokyo.ImageURL != placeholder+"Tokyo" {
		t.Fatalf("unexpected card: %+v", tokyo)
	}
	if tokyo.FallbackImageURL != placeholder+"No+Image" {
		t.Fatalf("fallback: %s", tokyo.FallbackImageURL)
	}
	if tokyo.TimeZone != "Asia/Tokyo" || tokyo.LocalTime != "9:00:00 AM" {
		t.Fatalf("local time: %+v", tokyo)
	}
	if kinkaku := v.Cards[1]; kinkaku.TimeZone != "" || kinkaku.LocalTime != "" {
		t.Fatalf("unexpected zone for Kinkaku-ji: %+v", kinkaku)
	}
}

func TestRender_ZeroResults(t *testing.T) {
	v := app.NewRenderer(fixedClock).Render(nil, "xyz")

	if v.Title != "xyz" || len(v.Cards) != 0 || v.Notice == nil {
		t.Fatalf("expected a single notice, got %+v", v)
	}
	if v.Notice.Heading != `No recommendations found for "xyz"` {
		t.Fatalf("heading: %s", v.Notice.Heading)
	}
	for _, kw := range []string{`"beach"`, `"temple"`, `"country"`} {
		if !strings.Contains(v.Notice.Guidance, kw) {
			t.Fatalf("guidance should mention %s: %s", kw, v.Notice.Guidance)
		}
	}
}

func TestNoResults_KeepsQueryText(t *testing.T) {
	n := app.NoResults("say \"hi\"\tnow")
	if n.Heading != "No recommendations found for \"say \"hi\"\tnow\"" {
		t.Fatalf("heading: %s", n.Heading)
	}
}

func TestRender_TimeZones(t *testing.T) {
	r := app.NewRenderer(fixedClock)
	cards := r.Cards(wideCatalog().Beaches)
	if cards[0].TimeZone != "Pacific/Tahiti" || cards[0].LocalTime != "2:00:00 PM" {
		t.Fatalf("bora bora: %+v", cards[0])
	}
	if cards[1].TimeZone != "America/Sao_Paulo" {
		t.Fatalf("copacabana: %+v", cards[1])
	}
}

func TestRestamp_UsesCurrentClock(t *testing.T) {
	now := fixedClock()
	r := app.NewRenderer(func() time.Time { return now })
	cards := r.Cards([]domain.Destination{{Name: "Kyoto, Japan"}})

	now = now.Add(90 * time.Minute)
	fresh := r.Restamp(cards)
	if fresh[0].LocalTime != "10:30:00 AM" {
		t.Fatalf("restamped: %s", fresh[0].LocalTime)
	}
	if cards[0].LocalTime != "9:00:00 AM" {
		t.Fatalf("original cards must be left alone: %s", cards[0].LocalTime)
	}
}
