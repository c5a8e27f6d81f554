package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"exactly 3 days", now.Add(72 * time.Hour), 3},
		{"a few hours ahead rounds up to 1", now.Add(5 * time.Hour), 1},
		{"fractional day rounds up", now.Add(25 * time.Hour), 2},
		{"same instant", now, 0},
		{"an hour ago is still day zero", now.Add(-time.Hour), 0},
		{"past a full day goes negative", now.Add(-25 * time.Hour), -1},
		{"exactly 60 days", now.Add(60 * 24 * time.Hour), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(now, tt.due))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC)

	// Calendar days, not 24h blocks
	assert.Equal(t, 2, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 10, 17, 45, 12, 999, time.UTC)
	got := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}
