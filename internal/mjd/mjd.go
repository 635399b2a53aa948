package mjd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnixEpoch is the MJD of 1970-01-01T00:00:00Z.
const UnixEpoch = 40587.0

const secondsPerDay = 86400.0

// ErrInvalidTimestamp is returned for timestamps that are not ISO-8601 UTC.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Layouts accepted by Parse, tried in order. The date/time separator is
// normalised to 'T' before matching.
var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads an ISO-8601 timestamp without zone information and returns it
// as a UTC time. A trailing "Z" is allowed; any other zone offset is rejected.
func Parse(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "Z")
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, v, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD[Thh:mm[:ss]] in UTC", ErrInvalidTimestamp, s)
}

// FromTime converts t to a Modified Julian Date.
func FromTime(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return sec/secondsPerDay + UnixEpoch
}

// FromISO parses s and converts it to a Modified Julian Date.
func FromISO(s string) (float64, error) {
	t, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return FromTime(t), nil
}

// Format renders an MJD in its shortest exact decimal form, e.g. "61085.28472".
func Format(mjd float64) string {
	s := strconv.FormatFloat(mjd, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
