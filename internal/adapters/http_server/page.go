package httpserver

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/domain"
)

//go:embed templates/results.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/results.html"))

type pageData struct {
	View   domain.View
	Banner string
}

// banner is shown instead of results while no catalog is available.
func banner(st domain.CatalogState) string {
	switch st {
	case domain.StateUnset, domain.StateLoading:
		return "Recommendations are loading, please try again in a moment."
	case domain.StateFailed:
		return "Recommendations are unavailable right now."
	default:
		return ""
	}
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	v := h.C.Search(r.Context(), r.URL.Query().Get("q"))

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{View: v, Banner: banner(v.State)}); err != nil {
		log.Error().Err(err).Msg("render results page failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write results page")
	}
}
