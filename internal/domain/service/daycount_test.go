package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tierbank/depositcalc/internal/domain/service"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2100, false},
		{1996, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, service.IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, service.DaysInYear(2024))
	assert.Equal(t, 365, service.DaysInYear(2023))
	assert.Equal(t, 366, service.DaysInYear(2000))
	assert.Equal(t, 365, service.DaysInYear(1900))
}

func TestInclusiveDayCount(t *testing.T) {
	t.Run("same day counts as one", func(t *testing.T) {
		d := date(2024, time.March, 15)
		assert.Equal(t, 1, service.InclusiveDayCount(d, d))
	})

	t.Run("full january", func(t *testing.T) {
		assert.Equal(t, 31, service.InclusiveDayCount(date(2024, time.January, 1), date(2024, time.January, 31)))
	})

	t.Run("february non-leap", func(t *testing.T) {
		assert.Equal(t, 28, service.InclusiveDayCount(date(2023, time.February, 1), date(2023, time.February, 28)))
	})

	t.Run("february leap", func(t *testing.T) {
		assert.Equal(t, 29, service.InclusiveDayCount(date(2024, time.February, 1), date(2024, time.February, 29)))
	})

	t.Run("full leap year", func(t *testing.T) {
		assert.Equal(t, 366, service.InclusiveDayCount(date(2024, time.January, 1), date(2024, time.December, 31)))
	})

	t.Run("across month boundary", func(t *testing.T) {
		assert.Equal(t, 2, service.InclusiveDayCount(date(2024, time.January, 31), date(2024, time.February, 1)))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		start := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 2, service.InclusiveDayCount(start, end))
	})
}
