package format

import (
	"time"
	_ "time/tzdata" // deal times always render in US Central, even without a system zone db
)

const displayLayout = "1/2/2006 3:04 PM (MST)"

var central *time.Location

func init() {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		loc = time.FixedZone("CST", -6*60*60)
	}
	central = loc
}

// TimeWithZone renders a provider timestamp as a zone-qualified display
// string, e.g. "10/31/2022 1:12 PM (CDT)". Zone-less timestamps are taken
// as US Central wall-clock time; offset-qualified ones are converted.
// Empty input renders as the empty string.
func TimeWithZone(ts string) string {
	if ts == "" {
		return ""
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", ts, central); err == nil {
		return t.Format(displayLayout)
	}

	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.In(central).Format(displayLayout)
	}

	return ""
}
