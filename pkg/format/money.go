package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ewelton/faredrop/internal/models"
)

// Money renders an integer cent amount as a USD display string,
// e.g. 72648 -> "$726.48", 123456789 -> "$1,234,567.89".
func Money(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	dollars := cents / 100
	remainder := cents % 100

	formatted := addThousandsSeparator(strconv.FormatInt(dollars, 10), ",")

	result := fmt.Sprintf("$%s.%02d", formatted, remainder)
	if negative {
		result = "-" + result
	}

	return result
}

// MoneyPtr formats an optional cent amount. A nil or unknown price renders
// as the empty string rather than a fake zero.
func MoneyPtr(cents *int64) string {
	if cents == nil || *cents == models.PriceUnknown {
		return ""
	}
	return Money(*cents)
}

// ParseCents converts a decimal price string such as "726.48" into cents.
func ParseCents(s string) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}

	if frac == "" {
		return dollars * 100, nil
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}

	if dollars < 0 || strings.HasPrefix(whole, "-") {
		return dollars*100 - cents, nil
	}
	return dollars*100 + cents, nil
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
