package export

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCurrency renders a numeric string as a compact dollar figure
// ($1.5M, $800K). Non-numeric input passes through untouched.
func FormatCurrency(val string) string {
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	switch {
	case num >= 1000000:
		return fmt.Sprintf("$%.1fM", num/1000000)
	case num >= 1000:
		return fmt.Sprintf("$%.0fK", num/1000)
	default:
		return fmt.Sprintf("$%g", num)
	}
}

// FormatDate renders a date string as "Mar 1, 2025". Unparsable input
// passes through untouched.
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, err := parseFlexible(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Jan 2, 2006")
}

// FormatTimestamp renders a timestamp as "Feb 18, 2025 02:22 PM".
func FormatTimestamp(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, err := parseFlexible(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Jan 2, 2006 03:04 PM")
}

func parseFlexible(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
