// Package normalize maps provider-shaped offers into the canonical deal
// model. Unresolvable reference codes and malformed fields degrade to empty
// values in place; normalization never fails a search.
package normalize

import (
	"context"
	"fmt"

	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/internal/refdata"
)

// Trip carries the option context a deal was priced for: the airport pair,
// the date pair, and the party. It feeds the booking link and directional
// mapping.
type Trip struct {
	Origin           string
	Destination      string
	DepartureDate    string
	ReturnDate       string
	Adults           int
	Children         int
	ExcludedAirlines []string
}

// Deal converts a raw offer into a comparable BestDeal, or nil when the
// offer holds no viable round trip for this option.
func Deal(ctx context.Context, raw *provider.RawOffer, lookup refdata.Lookup, trip Trip) *models.BestDeal {
	if raw == nil {
		return nil
	}

	switch {
	case raw.Offer != nil:
		return fromOffer(ctx, raw.Offer, lookup, trip)
	case raw.Scrape != nil:
		return fromScrape(raw.Scrape, trip)
	}

	return nil
}

// BookingURL builds the booking-site deeplink. The path and query layout
// must stay byte-for-byte stable; the site parses it positionally.
func BookingURL(trip Trip) string {
	return fmt.Sprintf("https://skiplagged.com/flights/%s/%s/%s/%s?adults=%d&children=%d",
		trip.Origin, trip.Destination, trip.DepartureDate, trip.ReturnDate,
		trip.Adults, trip.Children)
}

// CombinedRoundTripCents prices a deal from its legs: the cheaper of two
// one-way fares versus the outbound's published round-trip fare plus the
// inbound one-way. The mirrored combination (inbound round trip plus
// outbound one-way) is deliberately not considered.
func CombinedRoundTripCents(outOneWay, inOneWay, outMinRoundTrip int64) int64 {
	oneWayTotal := addCents(outOneWay, inOneWay)
	withRoundTrip := addCents(outMinRoundTrip, inOneWay)

	if oneWayTotal < withRoundTrip {
		return oneWayTotal
	}
	return withRoundTrip
}

func addCents(a, b int64) int64 {
	if a == models.PriceUnknown || b == models.PriceUnknown {
		return models.PriceUnknown
	}
	return a + b
}

func centsOrUnknown(cents *int64) int64 {
	if cents == nil {
		return models.PriceUnknown
	}
	return *cents
}
