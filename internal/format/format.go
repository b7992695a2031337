package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts used across the API and exported reports.
const (
	APIDateLayout     = "2006-01-02"
	DisplayDateLayout = "02 Jan 2006"
	DisplayTimeLayout = "02 Jan 2006, 03:04 PM"
)

// Date converts an API date string ("2006-01-02") to display form.
// Unparseable input is returned unchanged so a bad row never blanks a cell.
func Date(s string) string {
	t, err := time.Parse(APIDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// DateTime formats a timestamp for report headers and footers.
func DateTime(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}

// Amount parses a decimal-string monetary field. Empty or malformed values
// count as zero, matching how the reports treat missing amounts.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Currency renders a monetary value with thousands separators, e.g. "$1,249.50".
func Currency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}

// Percent renders a rate as "82.5%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// StatusColor maps an entity or payment status to its display hex color.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "occupied", "active", "paid":
		return "#22C55E"
	case "available", "completed":
		return "#3B82F6"
	case "maintenance", "pending":
		return "#F59E0B"
	case "cancelled", "failed", "inactive":
		return "#EF4444"
	default:
		return "#6B7280"
	}
}

// StatusRGB returns the same status color as 0-255 components for PDF fills.
func StatusRGB(status string) (int, int, int) {
	hex := StatusColor(status)
	r, _ := strconv.ParseInt(hex[1:3], 16, 0)
	g, _ := strconv.ParseInt(hex[3:5], 16, 0)
	b, _ := strconv.ParseInt(hex[5:7], 16, 0)
	return int(r), int(g), int(b)
}

// Truncate shortens long names for fixed-width report cells.
func Truncate(s string, max int) string {
	if len(s) <= max || max < 4 {
		return s
	}
	return s[:max-3] + "..."
}
