package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"travel_reco/internal/domain"
)

var validate = validator.New()

var errNullDataset = errors.New("decode dataset: document is null")

// decodeCatalog parses the dataset document. Absent top-level collections decode
// as empty; a null document or a country or destination without a name rejects
// the whole document.
func decodeCatalog(raw []byte) (*domain.Catalog, error) {
	var c *domain.Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if c == nil {
		return nil, errNullDataset
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	return c, nil
}
