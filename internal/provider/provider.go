// Package provider is the outbound boundary to the external flight-pricing
// sources. Everything past the RawOffer variant is provider-shaped; nothing
// here leaks past the normalizer.
package provider

import "context"

// Request is one concrete priced-search invocation: a single airport pair,
// a single date pair, and the travelling party.
type Request struct {
	Origin           string
	Destination      string
	DepartureDate    string
	ReturnDate       string
	Adults           int
	Children         int
	ExcludedAirlines []string
}

// Querier issues one pricing query per request. A nil offer with a nil
// error means the source had nothing for that combination; an error means
// the source itself failed and the option should be skipped, not the search.
type Querier interface {
	Name() string
	Query(ctx context.Context, req Request) (*RawOffer, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
