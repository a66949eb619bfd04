package dates

import "time"

const dayLayout = "2006-01-02"

// Pair is one departure/return date combination, both in "2006-01-02" form.
type Pair struct {
	Departure string `json:"departure"`
	Return    string `json:"return"`
}

// Expand widens the requested date pairs by the flex window and keeps only
// viable candidates: the departure must parse, fall strictly before the
// return, and fall strictly after now. For each flex offset d in [1, flexDays]
// an earlier departure (dep-d, ret) and a later return (dep, ret+d) are tried
// independently under the same rule.
//
// Insertion order is preserved and overlapping windows may yield duplicate
// pairs; duplicates are kept, matching the behavior booking callers already
// depend on. Unparseable dates drop the candidate rather than failing the
// whole expansion.
func Expand(pairs []Pair, flexDays int, now time.Time) []Pair {
	if flexDays < 0 {
		flexDays = 0
	}
	expanded := make([]Pair, 0, len(pairs)*(1+2*flexDays))

	for _, pair := range pairs {
		if viable(pair, now) {
			expanded = append(expanded, pair)
		}

		if flexDays <= 0 {
			continue
		}

		departure, depErr := time.Parse(dayLayout, pair.Departure)
		ret, retErr := time.Parse(dayLayout, pair.Return)

		for d := 1; d <= flexDays; d++ {
			if depErr == nil {
				early := Pair{
					Departure: departure.AddDate(0, 0, -d).Format(dayLayout),
					Return:    pair.Return,
				}
				if viable(early, now) {
					expanded = append(expanded, early)
				}
			}

			if retErr == nil {
				late := Pair{
					Departure: pair.Departure,
					Return:    ret.AddDate(0, 0, d).Format(dayLayout),
				}
				if viable(late, now) {
					expanded = append(expanded, late)
				}
			}
		}
	}

	return expanded
}

func viable(pair Pair, now time.Time) bool {
	departure, err := time.Parse(dayLayout, pair.Departure)
	if err != nil {
		return false
	}

	ret, err := time.Parse(dayLayout, pair.Return)
	if err != nil {
		return false
	}

	return departure.Before(ret) && departure.After(now)
}
