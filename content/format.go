package content

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO timestamp as "January 2, 2006". Input that does
// not parse is returned unchanged.
func FormatDate(iso string) string {
	t, ok := parseDate(iso)
	if !ok {
		return iso
	}
	return t.Format("January 2, 2006")
}

// FormatTime renders t like FormatDate, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatDateTime renders t with its clock time, used by the contacts detail.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}
