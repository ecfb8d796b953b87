package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DurationMagnitude extracts the leading integer from a plan duration string
// such as "7 Days". An unparseable numeric part yields 0, which produces an
// investment that ends immediately. Kept as-is pending product clarification,
// see DESIGN.md.
func DurationMagnitude(duration string) int {
	s := strings.TrimSpace(duration)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// PlanEndDate resolves a plan duration string against a start time. The unit
// is substring-matched case-insensitively; anything without a recognized
// unit counts as days.
func PlanEndDate(start time.Time, duration string) time.Time {
	n := DurationMagnitude(duration)
	lower := strings.ToLower(duration)
	switch {
	case strings.Contains(lower, "week"):
		return start.AddDate(0, 0, 7*n)
	case strings.Contains(lower, "month"):
		return start.AddDate(0, n, 0)
	case strings.Contains(lower, "year"):
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, 0, n)
	}
}
