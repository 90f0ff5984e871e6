package reservations

import (
	"regexp"
	"time"

	"table-reservations-go/internal/domain/errs"
)

const (
	DateLayout = "2006-01-02"
	// OutputLayout renders instants in UTC with milliseconds.
	OutputLayout = "2006-01-02T15:04:05.000Z"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?Z$`)
)

// ParseDateTime accepts YYYY-MM-DDTHH:MM:SS[.mmm]Z naming a real instant.
func ParseDateTime(value string) (time.Time, error) {
	if !dateTimePattern.MatchString(value) {
		return time.Time{}, errs.ErrInvalidTimeFormat
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errs.ErrInvalidTimeFormat
	}
	return parsed.UTC(), nil
}

// ParseDate checks the YYYY-MM-DD shape. ok is false when the text has the
// right shape but names no calendar day, such as 2026-02-30; such a date
// simply matches nothing.
func ParseDate(value string) (day time.Time, ok bool, err error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false, errs.ErrInvalidDateFormat
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false, nil
	}
	return parsed.UTC(), true, nil
}

func FormatDateTime(value time.Time) string {
	return value.UTC().Format(OutputLayout)
}
