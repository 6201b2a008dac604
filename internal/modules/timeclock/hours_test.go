package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.August, 14, hour, minute, 0, 0, time.UTC)
}

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     float64
	}{
		{"full shift", at(8, 0), at(16, 0), 8.00},
		{"half day", at(8, 0), at(12, 30), 4.50},
		{"long day", at(8, 0), at(17, 15), 9.25},
		{"zero", at(8, 0), at(8, 0), 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursBetween(tt.clockIn, tt.clockOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHoursBetween_NegativeDuration(t *testing.T) {
	_, err := HoursBetween(at(16, 0), at(8, 0))
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestIsOvertime(t *testing.T) {
	assert.False(t, IsOvertime(8, 32))
	assert.True(t, IsOvertime(10, 30))
	assert.True(t, IsOvertime(8, 45))
	assert.True(t, IsOvertime(12, 52))

	// thresholds are strict greater-than
	assert.False(t, IsOvertime(8, 40))
}
