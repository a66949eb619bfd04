// Package refdata resolves IATA reference entities (airlines, airports).
// Lookups are batched per distinct code set and fail open: a code that
// cannot be resolved yields a code-only entry, never an error, so missing
// reference data degrades display without failing a search.
package refdata

import (
	"context"
	"encoding/json"

	"github.com/ewelton/faredrop/internal/models"
)

const (
	airlineKeyPrefix = "refdata:airline:"
	airportKeyPrefix = "refdata:airport:"
)

type Lookup interface {
	Airlines(ctx context.Context, codes []string) map[string]models.Airline
	Airports(ctx context.Context, codes []string) map[string]models.Airport
}

// AirlineSource is the upstream batch reference endpoint.
type AirlineSource interface {
	AirlineReference(ctx context.Context, codes []string) ([]models.Airline, error)
}

// CachedLookup layers cache -> upstream -> built-in table -> code-only
// fallback. The returned maps always contain an entry per requested code.
type CachedLookup struct {
	source AirlineSource
	store  Store
}

func NewCachedLookup(source AirlineSource, store Store) *CachedLookup {
	if store == nil {
		store = NewNoOpStore()
	}
	return &CachedLookup{
		source: source,
		store:  store,
	}
}

// NewStaticLookup resolves from the built-in tables only.
func NewStaticLookup() *CachedLookup {
	return NewCachedLookup(nil, NewNoOpStore())
}

func (l *CachedLookup) Airlines(ctx context.Context, codes []string) map[string]models.Airline {
	result := make(map[string]models.Airline, len(codes))

	var missing []string
	for _, code := range codes {
		if _, seen := result[code]; seen {
			continue
		}
		if data, found := l.store.Get(ctx, airlineKeyPrefix+code); found {
			var airline models.Airline
			if json.Unmarshal(data, &airline) == nil {
				result[code] = airline
				continue
			}
		}
		missing = append(missing, code)
	}

	if len(missing) > 0 && l.source != nil {
		// one batch call per search for all unresolved codes; upstream
		// failure falls through to the built-in table
		if airlines, err := l.source.AirlineReference(ctx, missing); err == nil {
			for _, airline := range airlines {
				result[airline.Code] = airline
				if data, err := json.Marshal(airline); err == nil {
					_ = l.store.Set(ctx, airlineKeyPrefix+airline.Code, data)
				}
			}
		}
	}

	for _, code := range codes {
		if _, resolved := result[code]; resolved {
			continue
		}
		if airline, known := staticAirlines[code]; known {
			result[code] = airline
			continue
		}
		result[code] = models.Airline{Code: code}
	}

	return result
}

func (l *CachedLookup) Airports(ctx context.Context, codes []string) map[string]models.Airport {
	result := make(map[string]models.Airport, len(codes))

	for _, code := range codes {
		if _, seen := result[code]; seen {
			continue
		}
		if data, found := l.store.Get(ctx, airportKeyPrefix+code); found {
			var airport models.Airport
			if json.Unmarshal(data, &airport) == nil {
				result[code] = airport
				continue
			}
		}
		if airport, known := staticAirports[code]; known {
			result[code] = airport
			continue
		}
		result[code] = models.Airport{Code: code}
	}

	return result
}
