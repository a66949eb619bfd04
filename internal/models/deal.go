package models

import "math"

// PriceUnknown marks a price the provider did not publish. It compares
// greater than every real fare so an unpriced itinerary never wins.
const PriceUnknown int64 = math.MaxInt64

type Airline struct {
	Code         string `json:"code"`
	BusinessName string `json:"business_name,omitempty"`
	CommonName   string `json:"common_name,omitempty"`
}

// DisplayName prefers the carrier's common name, then its registered
// business name, then the bare IATA code.
func (a Airline) DisplayName() string {
	if a.CommonName != "" {
		return a.CommonName
	}
	if a.BusinessName != "" {
		return a.BusinessName
	}
	return a.Code
}

type Airport struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

func (a Airport) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Code
}

// NormalizedSegment is one flight leg in canonical form. Times and the
// duration are display strings; comparison happens on itinerary prices,
// never on segments.
type NormalizedSegment struct {
	Airline          string `json:"airline"`
	AirlineCode      string `json:"airline_code"`
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"departure_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalAirport   string `json:"arrival_airport"`
	ArrivalTime      string `json:"arrival_time"`
	FlightDuration   string `json:"flight_duration"`
}

type ItinerarySummary struct {
	Airline                  string `json:"airline"`
	DepartureAirport         string `json:"departure_airport"`
	DepartureTime            string `json:"departure_time"`
	ArrivalAirport           string `json:"arrival_airport"`
	ArrivalTime              string `json:"arrival_time"`
	OneWayPrice              string `json:"one_way_price"`
	OneWayPriceInCents       int64  `json:"one_way_price_in_cents"`
	MinRoundTripPrice        string `json:"min_round_trip_price"`
	MinRoundTripPriceInCents int64  `json:"min_round_trip_price_in_cents"`
}

// ReducedItinerary is one flight direction. Summary is present for sources
// that publish per-direction pricing and nil otherwise.
type ReducedItinerary struct {
	ID       string              `json:"id"`
	Segments []NormalizedSegment `json:"segments"`
	Summary  *ItinerarySummary   `json:"summary,omitempty"`
}

type BestDeal struct {
	ID                    string           `json:"id"`
	BookingURL            string           `json:"booking_url"`
	Price                 string           `json:"price"`
	PriceInCents          int64            `json:"price_in_cents"`
	NumberOfBookableSeats int              `json:"number_of_bookable_seats,omitempty"`
	OutboundItinerary     ReducedItinerary `json:"outbound_itinerary"`
	InboundItinerary      ReducedItinerary `json:"inbound_itinerary"`
}
