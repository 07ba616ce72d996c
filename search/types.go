package search

// Wire types for the remote search endpoint. The builder hands the endpoint
// an opaque boolean expression and treats the response as display data; no
// parsing or re-ranking happens on this side.

// Study is a single search hit.
type Study struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Condition    string  `json:"condition"`
	Intervention string  `json:"intervention"`
	Phase        string  `json:"phase"`
	Status       string  `json:"status"`
	Score        float64 `json:"score"`
}

// FacetCount is one value bucket within a facet.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet groups result counts for one field (phase, status, ...).
type Facet struct {
	Field  string       `json:"field"`
	Counts []FacetCount `json:"counts"`
}

// ResultPage is one page of search results with facet counts for the whole
// result set.
type ResultPage struct {
	Studies  []Study `json:"studies"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Facets   []Facet `json:"facets"`
}
