// internal/model/timestamp.go
package model

import "time"

// upstreamTimeLayout matches GitHub's UTC timestamp strings.
const upstreamTimeLayout = "2006-01-02T15:04:05Z"

// timeOfDayLayout renders the time part, e.g. "04:00:47".
const timeOfDayLayout = "15:04:05"

// Date layouts selectable via configuration.
const (
	DateLayoutLong = "02 Jan 2006" // e.g. "25 Feb 2025"
	DateLayoutISO  = "2006-01-02"  // e.g. "2025-02-25"
)

// SplitTimestamp parses an upstream timestamp string and splits it into
// separate date and time strings, rendering the date with dateLayout. An
// empty, "Unknown", or unparsable input yields Unknown for both parts; this
// function never fails.
func SplitTimestamp(s string, dateLayout string) Timestamp {
	if s == "" || s == Unknown {
		return Timestamp{Date: Unknown, Time: Unknown}
	}
	t, err := time.Parse(upstreamTimeLayout, s)
	if err != nil {
		return Timestamp{Date: Unknown, Time: Unknown}
	}
	return Timestamp{
		Date: t.Format(dateLayout),
		Time: t.Format(timeOfDayLayout),
	}
}

// FormatUpstreamTime renders t in the upstream timestamp layout, suitable as
// SplitTimestamp input. A zero time renders as "Unknown".
func FormatUpstreamTime(t time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	return t.UTC().Format(upstreamTimeLayout)
}
