package normalize

import (
	"sort"
	"strconv"

	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/pkg/format"
)

// Scrape segment durations arrive in the site's own unit; dividing by this
// factor yields minutes.
const scrapeDurationScale = 100

// fromScrape normalizes the scraped-site shape: drop itineraries touching
// an excluded airline, pick the cheapest remaining bound per direction, and
// price the pairing. A direction with no surviving bound means no deal for
// this option.
func fromScrape(scrape *provider.ScrapeResponse, trip Trip) *models.BestDeal {
	outBounds := filterExcluded(scrape, scrape.Itineraries.Outbound, trip.ExcludedAirlines)
	inBounds := filterExcluded(scrape, scrape.Itineraries.Inbound, trip.ExcludedAirlines)

	sortByRoundTripPrice(outBounds)
	sortByRoundTripPrice(inBounds)

	if len(outBounds) == 0 || len(inBounds) == 0 {
		return nil
	}

	bestOutbound := mapBound(scrape, outBounds[0], trip.Origin, trip.Destination)
	bestInbound := mapBound(scrape, inBounds[0], trip.Destination, trip.Origin)

	combined := CombinedRoundTripCents(
		bestOutbound.Summary.OneWayPriceInCents,
		bestInbound.Summary.OneWayPriceInCents,
		bestOutbound.Summary.MinRoundTripPriceInCents,
	)

	return &models.BestDeal{
		ID:                bestInbound.ID + "-" + bestOutbound.ID,
		BookingURL:        BookingURL(trip),
		Price:             format.MoneyPtr(&combined),
		PriceInCents:      combined,
		OutboundItinerary: bestOutbound,
		InboundItinerary:  bestInbound,
	}
}

// filterExcluded keeps a bound only when every segment of its flight is
// operated by a non-excluded airline. Bounds referencing an unknown flight
// key are dropped.
func filterExcluded(scrape *provider.ScrapeResponse, bounds []provider.Bound, excluded []string) []provider.Bound {
	excludedSet := make(map[string]bool, len(excluded))
	for _, code := range excluded {
		excludedSet[code] = true
	}

	kept := make([]provider.Bound, 0, len(bounds))
	for _, bound := range bounds {
		flight, found := scrape.Flights[bound.Flight]
		if !found {
			continue
		}

		clean := true
		for _, segment := range flight.Segments {
			if excludedSet[segment.Airline] {
				clean = false
				break
			}
		}
		if clean {
			kept = append(kept, bound)
		}
	}

	return kept
}

func sortByRoundTripPrice(bounds []provider.Bound) {
	sort.SliceStable(bounds, func(i, j int) bool {
		return centsOrUnknown(bounds[i].MinRoundTripPrice) < centsOrUnknown(bounds[j].MinRoundTripPrice)
	})
}

// mapBound resolves one directional itinerary through the response's shared
// dictionaries. The segment list is trimmed at the requested arrival
// airport; hidden-city continuations past it are not part of the deal.
func mapBound(scrape *provider.ScrapeResponse, bound provider.Bound, departureCode, arrivalCode string) models.ReducedItinerary {
	flight := scrape.Flights[bound.Flight]
	segments := flight.Segments

	arrivalIdx := -1
	var departureSegment, arrivalSegment *provider.ScrapeSegment
	for i := range segments {
		if segments[i].Departure.Airport == departureCode && departureSegment == nil {
			departureSegment = &segments[i]
		}
		if segments[i].Arrival.Airport == arrivalCode && arrivalIdx == -1 {
			arrivalIdx = i
			arrivalSegment = &segments[i]
		}
	}

	onItinerary := segments[:arrivalIdx+1]

	normalized := make([]models.NormalizedSegment, 0, len(onItinerary))
	for _, segment := range onItinerary {
		normalized = append(normalized, models.NormalizedSegment{
			Airline:          scrape.Airlines[segment.Airline].Name,
			AirlineCode:      segment.Airline,
			FlightNumber:     strconv.Itoa(segment.FlightNumber),
			DepartureAirport: scrape.Airports[segment.Departure.Airport].Name,
			DepartureTime:    format.TimeWithZone(segment.Departure.Time),
			ArrivalAirport:   scrape.Airports[segment.Arrival.Airport].Name,
			ArrivalTime:      format.TimeWithZone(segment.Arrival.Time),
			FlightDuration:   format.Minutes(int(segment.Duration / scrapeDurationScale)),
		})
	}

	summary := &models.ItinerarySummary{
		Airline:                  summaryAirline(scrape, segments),
		OneWayPrice:              format.MoneyPtr(bound.OneWayPrice),
		OneWayPriceInCents:       centsOrUnknown(bound.OneWayPrice),
		MinRoundTripPrice:        format.MoneyPtr(bound.MinRoundTripPrice),
		MinRoundTripPriceInCents: centsOrUnknown(bound.MinRoundTripPrice),
	}

	if departureSegment != nil {
		summary.DepartureAirport = scrape.Airports[departureSegment.Departure.Airport].Name
		summary.DepartureTime = format.TimeWithZone(departureSegment.Departure.Time)
	}
	if arrivalSegment != nil {
		summary.ArrivalAirport = scrape.Airports[arrivalSegment.Arrival.Airport].Name
		summary.ArrivalTime = format.TimeWithZone(arrivalSegment.Arrival.Time)
	}

	return models.ReducedItinerary{
		ID:       bound.Flight,
		Segments: normalized,
		Summary:  summary,
	}
}

// summaryAirline labels the itinerary with its single carrier, or the
// literal "Multiple Airlines" when legs are split across carriers.
func summaryAirline(scrape *provider.ScrapeResponse, segments []provider.ScrapeSegment) string {
	if len(segments) == 0 {
		return ""
	}

	first := scrape.Airlines[segments[0].Airline].Name
	for _, segment := range segments[1:] {
		if scrape.Airlines[segment.Airline].Name != first {
			return "Multiple Airlines"
		}
	}

	return first
}
