package utils

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatTimestamp renders t as RFC3339 in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatDate renders the calendar date of t
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate accepts YYYY-MM-DD or RFC3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
