package normalize

import (
	"context"

	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/internal/refdata"
	"github.com/ewelton/faredrop/pkg/format"
)

// fromOffer normalizes the structured-API shape. Itineraries are split
// positionally: index 0 outbound, index 1 inbound; a one-way offer yields
// an empty inbound itinerary.
func fromOffer(ctx context.Context, offer *provider.OffersResponse, lookup refdata.Lookup, trip Trip) *models.BestDeal {
	airlines := lookup.Airlines(ctx, carrierCodes(offer))
	airports := lookup.Airports(ctx, airportCodes(offer))

	outbound := models.ReducedItinerary{Segments: []models.NormalizedSegment{}}
	inbound := models.ReducedItinerary{Segments: []models.NormalizedSegment{}}

	if len(offer.Itineraries) > 0 {
		outbound.Segments = mapOfferSegments(offer.Itineraries[0].Segments, airlines, airports)
	}
	if len(offer.Itineraries) > 1 {
		inbound.Segments = mapOfferSegments(offer.Itineraries[1].Segments, airlines, airports)
	}

	priceInCents := models.PriceUnknown
	if cents, err := format.ParseCents(offer.Price.GrandTotal); err == nil {
		priceInCents = cents
	} else if cents, err := format.ParseCents(offer.Price.Total); err == nil {
		priceInCents = cents
	}

	return &models.BestDeal{
		ID:                    offer.ID,
		BookingURL:            BookingURL(trip),
		Price:                 offer.Price.Total,
		PriceInCents:          priceInCents,
		NumberOfBookableSeats: offer.NumberOfBookableSeats,
		OutboundItinerary:     outbound,
		InboundItinerary:      inbound,
	}
}

func mapOfferSegments(segments []provider.OfferSegment, airlines map[string]models.Airline, airports map[string]models.Airport) []models.NormalizedSegment {
	normalized := make([]models.NormalizedSegment, 0, len(segments))

	for _, segment := range segments {
		duration := ""
		if minutes, err := format.ISODuration(segment.Duration); err == nil {
			duration = format.Minutes(minutes)
		}

		normalized = append(normalized, models.NormalizedSegment{
			Airline:          airlines[segment.CarrierCode].DisplayName(),
			AirlineCode:      segment.CarrierCode,
			FlightNumber:     segment.Number,
			DepartureAirport: airports[segment.Departure.IataCode].DisplayName(),
			DepartureTime:    format.TimeWithZone(segment.Departure.At),
			ArrivalAirport:   airports[segment.Arrival.IataCode].DisplayName(),
			ArrivalTime:      format.TimeWithZone(segment.Arrival.At),
			FlightDuration:   duration,
		})
	}

	return normalized
}

func carrierCodes(offer *provider.OffersResponse) []string {
	seen := make(map[string]bool)
	var codes []string

	for _, itinerary := range offer.Itineraries {
		for _, segment := range itinerary.Segments {
			if !seen[segment.CarrierCode] {
				seen[segment.CarrierCode] = true
				codes = append(codes, segment.CarrierCode)
			}
		}
	}

	return codes
}

func airportCodes(offer *provider.OffersResponse) []string {
	seen := make(map[string]bool)
	var codes []string

	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, itinerary := range offer.Itineraries {
		for _, segment := range itinerary.Segments {
			add(segment.Departure.IataCode)
			add(segment.Arrival.IataCode)
		}
	}

	return codes
}
