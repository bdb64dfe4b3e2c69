package port

import "context"

// SwiftRecord is a bank record resolved from a SWIFT/BIC code.
type SwiftRecord struct {
	Swift    string
	BankName string
	City     string
	Country  string
}

// SwiftDirectory abstracts SWIFT/BIC code lookup.
type SwiftDirectory interface {
	LookupSwift(ctx context.Context, code string) (*SwiftRecord, error)
}

// Place is a geocoded location.
type Place struct {
	Name      string
	Country   string
	CountryCode string
	Lat       float64
	Lon       float64
	Category  string
}

// Geocoder abstracts place name resolution.
type Geocoder interface {
	Geocode(ctx context.Context, name string) ([]Place, error)
}

// SearchHit is a single web search result.
type SearchHit struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher abstracts neural web search.
type Searcher interface {
	Search(ctx context.Context, query string, numResults int) ([]SearchHit, error)
}

// Researcher abstracts answer-with-citations research over the live web.
type Researcher interface {
	Ask(ctx context.Context, query string) (string, error)
}
