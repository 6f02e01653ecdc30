package prayer

import (
	"fmt"
	"strconv"
	"time"
)

// AnchorFor returns local midnight of the calendar day that now falls on in
// loc. This is the anchoring strategy used by the server and the CLI: the date
// is taken in the location's zone, never in the host's.
func AnchorFor(now time.Time, loc *time.Location) DateAnchor {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return DateAnchor{Timestamp: midnight.Unix(), Timezone: loc.String()}
}

// LoadAnchor is AnchorFor with the zone given by its IANA name.
func LoadAnchor(now time.Time, timezone string) (DateAnchor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return DateAnchor{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return AnchorFor(now, loc), nil
}

// AnchorFromTimestamp builds an anchor from the provider's "timestamp" date
// field (UNIX seconds as a string).
func AnchorFromTimestamp(timestamp, timezone string) (DateAnchor, error) {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return DateAnchor{}, fmt.Errorf("%w: invalid timestamp %q", ErrMalformedTimings, timestamp)
	}
	return DateAnchor{Timestamp: ts, Timezone: timezone}, nil
}
