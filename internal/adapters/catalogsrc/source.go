// Package catalogsrc provides the file and HTTP implementations of domain.CatalogSource
// and picks the configured source for the commands.
package catalogsrc

import (
	"strings"
	"time"

	"travel_reco/internal/domain"
)

// New picks an HTTP source for http(s) locations and a file source otherwise.
func New(location string, timeout time.Duration, rps int) (domain.CatalogSource, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTP(location, timeout, rps)
	}
	return NewFile(location), nil
}
