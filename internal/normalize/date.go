package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// strictFormats are tried in order before the general ISO-8601 fallbacks.
var strictFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
}

// fallbackFormats cover ISO-8601 timestamp variants and the slash/dot
// spellings seen in spreadsheet exports.
var fallbackFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var dateSpaceRe = regexp.MustCompile(`\s+`)

// ParseDate parses a raw date string, trying strict formats first and
// falling back to general ISO-8601 variants. Returns nil when nothing
// matches. Date-only values carry no timezone assumption: they parse in
// UTC and only the calendar date is meaningful.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = dateSpaceRe.ReplaceAllString(s, " ")

	for _, format := range strictFormats {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}
	for _, format := range fallbackFormats {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}
	return nil
}

// ISOWeek returns the ISO year-week period key for a date, e.g. "2024-W02".
// ISO calendar semantics: the week belongs to the year containing its
// Thursday, so early-January dates can key to the previous year.
func ISOWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
