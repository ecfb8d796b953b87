package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMagnitude(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"7 Days", 7},
		{"30 Days", 30},
		{"2 Weeks", 2},
		{"  14 days  ", 14},
		{"365", 365},
		{"Days", 0},
		{"", 0},
		{"forever", 0},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMagnitude(tt.duration))
		})
	}
}

func TestPlanEndDate(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		duration string
		want     time.Time
	}{
		{"7 Days", start.AddDate(0, 0, 7)},
		{"2 Weeks", start.AddDate(0, 0, 14)},
		{"1 Month", start.AddDate(0, 1, 0)},
		{"3 years", start.AddDate(3, 0, 0)},
		{"6 MONTHS", start.AddDate(0, 6, 0)},
		{"10", start.AddDate(0, 0, 10)}, // no unit counts as days
		{"forever", start},              // unparseable magnitude ends immediately
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanEndDate(start, tt.duration))
		})
	}
}
