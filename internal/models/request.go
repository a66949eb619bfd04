package models

type SearchRequest struct {
	DepartureAirports []string    `json:"departure_airports"`
	ArrivalAirports   []string    `json:"arrival_airports"`
	DatePairs         [][2]string `json:"date_pairs"`
	FlexDate          int         `json:"flex_date"`
	NumOfAdults       int         `json:"num_of_adults"`
	NumOfChildren     int         `json:"num_of_children"`
	AirlinesToExclude []string    `json:"airlines_to_exclude,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if len(r.DepartureAirports) < 1 || len(r.DepartureAirports) > 2 {
		return ErrDepartureAirports
	}
	if len(r.ArrivalAirports) < 1 || len(r.ArrivalAirports) > 2 {
		return ErrArrivalAirports
	}
	for _, code := range r.DepartureAirports {
		if len(code) != 3 {
			return ErrAirportCode
		}
	}
	for _, code := range r.ArrivalAirports {
		if len(code) != 3 {
			return ErrAirportCode
		}
	}
	if len(r.DatePairs) < 1 || len(r.DatePairs) > 6 {
		return ErrDatePairs
	}
	if r.FlexDate < 0 || r.FlexDate > 7 {
		return ErrFlexDate
	}
	if r.NumOfAdults < 0 || r.NumOfChildren < 0 {
		return ErrPassengerCount
	}
	for _, code := range r.AirlinesToExclude {
		if len(code) != 2 {
			return ErrAirlineCode
		}
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrDepartureAirports ValidationError = "departure_airports must contain 1 to 2 airport codes"
	ErrArrivalAirports   ValidationError = "arrival_airports must contain 1 to 2 airport codes"
	ErrAirportCode       ValidationError = "airport codes must be 3-letter IATA codes"
	ErrDatePairs         ValidationError = "date_pairs must contain 1 to 6 departure/return pairs"
	ErrFlexDate          ValidationError = "flex_date must be between 0 and 7"
	ErrPassengerCount    ValidationError = "passenger counts must not be negative"
	ErrAirlineCode       ValidationError = "excluded airline codes must be 2-letter IATA codes"
)
