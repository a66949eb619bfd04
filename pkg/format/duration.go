package format

import (
	"fmt"
	"strconv"
	"strings"
)

// ISODuration parses the ISO-8601 subset the pricing API emits for flight
// durations ("PT2H20M", "PT45M", "PT3H") into total minutes.
func ISODuration(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	hours := 0
	if h, tail, found := strings.Cut(rest, "H"); found {
		parsed, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		hours = parsed
		rest = tail
	}

	minutes := 0
	if rest != "" {
		m, found := strings.CutSuffix(rest, "M")
		if !found {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		minutes = parsed
	}

	return hours*60 + minutes, nil
}

// Minutes renders a total-minute count as "2h 05m".
func Minutes(totalMinutes int) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
