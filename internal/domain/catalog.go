package domain

// Destination is one displayable place: a city, a temple or a beach.
type Destination struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"` // may hold a placeholder sentinel
}

type Country struct {
	Name   string        `json:"name" validate:"required"`
	Cities []Destination `json:"cities,omitempty" validate:"dive"`
}

// Catalog is the root of the dataset. It is loaded once and never mutated.
type Catalog struct {
	Countries []Country     `json:"countries,omitempty" validate:"dive"`
	Temples   []Destination `json:"temples,omitempty" validate:"dive"`
	Beaches   []Destination `json:"beaches,omitempty" validate:"dive"`
}

// Category tags which part of the catalog a query resolved to.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryCity   Category = "city"
	CategoryTemple Category = "temple"
	CategoryBeach  Category = "beach"
	CategoryName   Category = "name" // free-text name search
)

// Cities returns every city of every country, country order first, then city order.
func (c *Catalog) Cities() []Destination {
	if c == nil {
		return []Destination{}
	}
	out := make([]Destination, 0, c.cityCount())
	for _, country := range c.Countries {
		out = append(out, country.Cities...)
	}
	return out
}

// Size is the number of destinations across all categories.
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return c.cityCount() + len(c.Temples) + len(c.Beaches)
}

func (c *Catalog) cityCount() int {
	n := 0
	for _, country := range c.Countries {
		n += len(country.Cities)
	}
	return n
}
