package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

type Handlers struct{ C *app.Controller }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type searchCommand struct {
	Text string `json:"text"`
}

type loadResult struct {
	State        domain.CatalogState `json:"state"`
	Version      string              `json:"version"`
	Destinations int                 `json:"destinations"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page)
	s.mux.Get("/v1/search", h.search)
	s.mux.Post("/v1/search", h.onSearch)
	s.mux.Post("/v1/clear", h.onClear)
	s.mux.Get("/v1/view", h.view)
	s.mux.Get("/v1/destinations", h.destinations)
	s.mux.Post("/v1/catalog/load", h.loadCatalog)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this representation.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode response")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.C.Search(r.Context(), r.URL.Query().Get("q")))
}

// onSearch reads the search text from a JSON body or a form field named "text".
func (h *Handlers) onSearch(w http.ResponseWriter, r *http.Request) {
	var cmd searchCommand
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/json" {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&cmd); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"text\": string}")
			return
		}
	} else {
		cmd.Text = r.FormValue("text")
	}
	writeJSON(w, r, h.C.OnSearch(r.Context(), cmd.Text))
}

func (h *Handlers) onClear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.C.OnClear(r.Context()))
}

func (h *Handlers) view(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.C.Current())
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.C.Destinations())
}

func (h *Handlers) loadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.C.LoadCatalog(r.Context()); err != nil {
		var le *domain.LoadError
		detail := err.Error()
		if errors.As(err, &le) {
			detail = le.Kind.String()
		}
		writeProblem(w, http.StatusServiceUnavailable, "Catalog unavailable", detail)
		return
	}
	writeJSON(w, r, loadResult{
		State:        h.C.State(),
		Version:      h.C.Version(),
		Destinations: len(h.C.Destinations()),
	})
}
