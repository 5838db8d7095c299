package domain

// CardDescriptor is the render-ready form of a Destination.
type CardDescriptor struct {
	ImageURL         string `json:"imageUrl"`
	FallbackImageURL string `json:"fallbackImageUrl"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	TimeZone         string `json:"timeZone,omitempty"`
	LocalTime        string `json:"localTime,omitempty"`
}

// Notice replaces the card list when a query produced nothing.
type Notice struct {
	Heading  string `json:"heading"`
	Guidance string `json:"guidance"`
}

// CatalogState is the lifecycle of the single loaded catalog.
type CatalogState string

const (
	StateUnset   CatalogState = "unset"
	StateLoading CatalogState = "loading"
	StateReady   CatalogState = "ready"
	StateFailed  CatalogState = "failed"
)

// View is a full replacement of the results area: title, cards or notice.
type View struct {
	Title  string           `json:"title"`
	Query  string           `json:"query"`
	Cards  []CardDescriptor `json:"cards"`
	Notice *Notice          `json:"notice,omitempty"`
	State  CatalogState     `json:"catalogState"`
}
