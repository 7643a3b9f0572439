package common

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the canonical wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Fixed layouts only; carbon.Parse would also resolve "now" or "tomorrow" against the wall clock.
var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05"}

// ParseDate parses a calendar date, or an RFC 3339 / "YYYY-MM-DD hh:mm:ss" date-time, as a UTC date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		parsed := carbon.ParseByLayout(value, layout, carbon.UTC)
		if parsed.Error == nil && !parsed.IsZero() {
			return parsed.StartOfDay().Carbon2Time().UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return carbon.Time2Carbon(t).ToDateString(carbon.UTC)
}

// FormatShortDate renders t as M/D/YYYY without zero padding, e.g. 2/1/2017.
func FormatShortDate(t time.Time) string {
	return carbon.Time2Carbon(t).Format("n/j/Y", carbon.UTC)
}

// SubDays returns t moved days calendar days back.
func SubDays(t time.Time, days int) time.Time {
	return carbon.Time2Carbon(t.UTC()).SubDays(days).Carbon2Time().UTC()
}
