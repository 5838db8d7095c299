package app_test

import (
	"context"
	"errors"
	"sync/atomic"

	"travel_reco/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	body    []byte
	err     error
	fetches int32
	gate    chan struct{} // when set, Fetch blocks until closed
}

func (f *fakeSource) Fetch(ctx context.Context) ([]byte, error) {
	atomic.AddInt32(&f.fetches, 1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.body, f.err
}

func (f *fakeSource) count() int { return int(atomic.LoadInt32(&f.fetches)) }

var errOffline = errors.New("offline")

// the catalog used throughout the package tests
const sampleJSON = `{
  "countries": [
    {"name": "Japan", "cities": [
      {"name": "Tokyo, Japan", "description": "d1", "imageUrl": "enter_your_image_url_here"}
    ]}
  ],
  "temples": [
    {"name": "Kinkaku-ji, Japan", "description": "d2", "imageUrl": "https://img.example/kinkaku.jpg"}
  ],
  "beaches": [
    {"name": "Bora Bora", "description": "d3"}
  ]
}`

func sampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		Countries: []domain.Country{
			{Name: "Japan", Cities: []domain.Destination{
				{Name: "Tokyo, Japan", Description: "d1", ImageURL: "enter_your_image_url_here"},
			}},
		},
		Temples: []domain.Destination{
			{Name: "Kinkaku-ji, Japan", Description: "d2", ImageURL: "https://img.example/kinkaku.jpg"},
		},
		Beaches: []domain.Destination{
			{Name: "Bora Bora", Description: "d3"},
		},
	}
}

func wideCatalog() *domain.Catalog {
	return &domain.Catalog{
		Countries: []domain.Country{
			{Name: "Australia", Cities: []domain.Destination{
				{Name: "Sydney, Australia"}, {Name: "Melbourne, Australia"},
			}},
			{Name: "Brazil", Cities: []domain.Destination{
				{Name: "Rio de Janeiro, Brazil"}, {Name: "São Paulo, Brazil"},
			}},
		},
		Temples: []domain.Destination{{Name: "Angkor Wat, Cambodia"}, {Name: "Taj Mahal, India"}},
		Beaches: []domain.Destination{{Name: "Bora Bora, French Polynesia"}, {Name: "Copacabana Beach, Brazil"}},
	}
}

func names(ds []domain.Destination) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
