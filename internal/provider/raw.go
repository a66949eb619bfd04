package provider

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrUnknownShape reports a response body matching neither supported
// provider shape.
var ErrUnknownShape = errors.New("unrecognized offer response shape")

// RawOffer is a tagged variant over the two response shapes seen from
// pricing sources: the structured offers API and the scraped-site JSON.
// Exactly one field is set.
type RawOffer struct {
	Offer  *OffersResponse
	Scrape *ScrapeResponse
}

// ParseRawOffer sniffs the response shape by which fields are present:
// a top-level itineraries array marks the offers shape, top-level flights
// and airlines dictionaries mark the scrape shape.
func ParseRawOffer(data []byte) (*RawOffer, error) {
	var probe struct {
		Airlines    json.RawMessage `json:"airlines"`
		Flights     json.RawMessage `json:"flights"`
		Itineraries json.RawMessage `json:"itineraries"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	itineraries := bytes.TrimSpace(probe.Itineraries)
	flights := bytes.TrimSpace(probe.Flights)

	switch {
	case len(itineraries) > 0 && itineraries[0] == '[':
		var offer OffersResponse
		if err := json.Unmarshal(data, &offer); err != nil {
			return nil, err
		}
		return &RawOffer{Offer: &offer}, nil

	case len(flights) > 0 && flights[0] == '{' && len(probe.Airlines) > 0:
		var scrape ScrapeResponse
		if err := json.Unmarshal(data, &scrape); err != nil {
			return nil, err
		}
		return &RawOffer{Scrape: &scrape}, nil
	}

	return nil, ErrUnknownShape
}

// OffersResponse is one priced round-trip offer from the structured API.
// Itineraries are positional: index 0 outbound, index 1 inbound.
type OffersResponse struct {
	ID                     string           `json:"id"`
	NumberOfBookableSeats  int              `json:"numberOfBookableSeats"`
	Itineraries            []OfferItinerary `json:"itineraries"`
	Price                  OfferPrice       `json:"price"`
	ValidatingAirlineCodes []string         `json:"validatingAirlineCodes"`
}

type OfferItinerary struct {
	Duration string         `json:"duration"`
	Segments []OfferSegment `json:"segments"`
}

type OfferSegment struct {
	Departure     OfferStop `json:"departure"`
	Arrival       OfferStop `json:"arrival"`
	CarrierCode   string    `json:"carrierCode"`
	Number        string    `json:"number"`
	Duration      string    `json:"duration"`
	ID            string    `json:"id"`
	NumberOfStops int       `json:"numberOfStops"`
}

type OfferStop struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type OfferPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// ScrapeResponse is the scraped-site shape: directional itineraries that
// reference shared flight/airline/airport dictionaries by key.
type ScrapeResponse struct {
	Airlines    map[string]ScrapeAirline `json:"airlines"`
	Airports    map[string]ScrapeAirport `json:"airports"`
	Flights     map[string]ScrapeFlight  `json:"flights"`
	Itineraries ScrapeItineraries        `json:"itineraries"`
}

type ScrapeAirline struct {
	Name string `json:"name"`
}

type ScrapeAirport struct {
	Name string `json:"name"`
}

type ScrapeFlight struct {
	Segments []ScrapeSegment `json:"segments"`
	Duration int64           `json:"duration"`
	Count    int             `json:"count"`
}

type ScrapeSegment struct {
	Airline      string     `json:"airline"`
	FlightNumber int        `json:"flight_number"`
	Departure    ScrapeStop `json:"departure"`
	Arrival      ScrapeStop `json:"arrival"`
	Duration     int64      `json:"duration"`
}

type ScrapeStop struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
}

type ScrapeItineraries struct {
	Outbound []Bound `json:"outbound"`
	Inbound  []Bound `json:"inbound"`
}

// Bound is one directional itinerary in the scrape shape. Prices are in
// cents and optional; a missing price means the site did not publish one.
type Bound struct {
	Flight            string `json:"flight"`
	OneWayPrice       *int64 `json:"one_way_price,omitempty"`
	MinRoundTripPrice *int64 `json:"min_round_trip_price,omitempty"`
}
