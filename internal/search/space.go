package search

import "github.com/ewelton/faredrop/internal/dates"

// Option is one concrete search-space point: a single airport pair and a
// single date pair. Options live for one search and are never persisted.
type Option struct {
	Origin      string
	Destination string
	Dates       dates.Pair
}

// Generate computes the full origin x destination x date-pair cross
// product, origin-major so runs are reproducible. Identical origin and
// destination pairs are not filtered here; the caller owns that decision.
func Generate(origins, destinations []string, pairs []dates.Pair) []Option {
	options := make([]Option, 0, len(origins)*len(destinations)*len(pairs))

	for _, origin := range origins {
		for _, destination := range destinations {
			for _, pair := range pairs {
				options = append(options, Option{
					Origin:      origin,
					Destination: destination,
					Dates:       pair,
				})
			}
		}
	}

	return options
}
