package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"travel_reco/internal/adapters/catalogsrc"
	server "travel_reco/internal/adapters/http_server"
	"travel_reco/internal/adapters/observability"
	redisad "travel_reco/internal/adapters/redis"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

// ---------- helpers ----------

// datasetPath points at the sample dataset shipped at the repo root.
func datasetPath(t *testing.T) string {
	t.Helper()
	p := filepath.Join("..", "..", "travel_recommendation_api.json")
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("sample dataset missing: %v", err)
	}
	return p
}

func getView(t *testing.T, url string) domain.View {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	var v domain.View
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

// ---------- the test ----------

func TestE2E_FileSourceRedisCacheAndMetrics(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	store := app.NewCatalogStore(catalogsrc.NewFile(datasetPath(t)))
	ctrl := app.NewController(store, app.NewRenderer(nil), cache, 10*time.Minute)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.MountHandlers(&server.Handlers{C: ctrl})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// before the load nothing is shown
	if v := getView(t, ts.URL+"/v1/view"); len(v.Cards) != 0 || v.State != domain.StateUnset {
		t.Fatalf("expected empty unset view, got %+v", v)
	}

	resp, err := http.Post(ts.URL+"/v1/catalog/load", "", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("load status: %d", resp.StatusCode)
	}

	all := getView(t, ts.URL+"/v1/view")
	if all.Title != "Recommandations" || len(all.Cards) == 0 {
		t.Fatalf("expected default recommendations, got %+v", all)
	}

	beaches := getView(t, ts.URL+"/v1/search?q=beach")
	if len(beaches.Cards) == 0 {
		t.Fatalf("expected beaches")
	}
	for _, c := range beaches.Cards {
		if c.ImageURL == "" || strings.Contains(c.ImageURL, "enter_your_image") {
			t.Fatalf("sentinel image leaked: %+v", c)
		}
	}

	// rendered views land in redis under the catalog version
	if !mr.Exists("search:" + store.Version() + ":beach") {
		t.Fatalf("expected cached beach view, keys=%v", mr.Keys())
	}

	sydney := getView(t, ts.URL+"/v1/search?q=sydney")
	if len(sydney.Cards) != 1 || sydney.Cards[0].TimeZone != "Australia/Sydney" || sydney.Cards[0].LocalTime == "" {
		t.Fatalf("unexpected sydney view: %+v", sydney)
	}

	mresp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer mresp.Body.Close()
	body, _ := io.ReadAll(mresp.Body)
	if !strings.Contains(string(body), `travel_catalog_loads_total{result="ok"}`) {
		t.Fatalf("expected catalog load metric")
	}
}

func TestE2E_MissingDatasetLeavesCatalogUnset(t *testing.T) {
	store := app.NewCatalogStore(catalogsrc.NewFile(filepath.Join(t.TempDir(), "missing.json")))
	ctrl := app.NewController(store, app.NewRenderer(nil), nil, time.Minute)

	err := ctrl.LoadCatalog(context.Background())
	if domain.LoadErrorKindOf(err) != domain.FetchFailed {
		t.Fatalf("expected fetch failure, got %v", err)
	}
	for _, q := range []string{"", "beach", "sydney"} {
		if v := ctrl.Search(context.Background(), q); len(v.Cards) != 0 {
			t.Fatalf("Search(%q) on unset catalog returned cards", q)
		}
	}
}
