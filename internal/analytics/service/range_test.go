package service

import (
	"testing"
	"time"

	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
	"github.com/salespulse/salespulse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() config.Settings {
	return config.Settings{
		DefaultRange:    "30d",
		DefaultTimeZone: "UTC",
		MaxCustomDays:   366,
	}
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
}

func TestResolveRangeSevenDays(t *testing.T) {
	resolved := resolveRange(fixedNow(), analyticsdomain.OverviewRequest{Range: "7d"}, testSettings())

	assert.Equal(t, "7d", resolved.Token)
	assert.Equal(t, 7, resolved.Days)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), resolved.Start)
	assert.Equal(t, time.Date(2026, time.March, 10, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), resolved.End)

	// Previous window has the same span and ends the instant before the
	// current one starts.
	assert.Equal(t, time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC), resolved.PreviousStart)
	assert.True(t, resolved.PreviousEnd.Add(time.Nanosecond).Equal(resolved.Start))
	assert.Equal(t, resolved.Days, daySpan(resolved.PreviousStart, resolved.PreviousEnd))
}

func TestResolveRangeSingleDay(t *testing.T) {
	resolved := resolveRange(fixedNow(), analyticsdomain.OverviewRequest{Range: "24h"}, testSettings())

	assert.Equal(t, 1, resolved.Days)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), resolved.Start)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), resolved.PreviousStart)
}

func TestResolveRangeDefaultsToThirtyDays(t *testing.T) {
	for _, token := range []string{"", "90d", "weekly"} {
		resolved := resolveRange(fixedNow(), analyticsdomain.OverviewRequest{Range: token}, testSettings())
		assert.Equal(t, "30d", resolved.Token, token)
		assert.Equal(t, 30, resolved.Days, token)
	}
}

func TestResolveRangeCustom(t *testing.T) {
	resolved := resolveRange(fixedNow(), analyticsdomain.OverviewRequest{
		Range:     "custom",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-10",
	}, testSettings())

	assert.Equal(t, "custom", resolved.Token)
	assert.Equal(t, 10, resolved.Days)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), resolved.Start)
	assert.Equal(t, time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC), resolved.PreviousStart)
}

func TestResolveRangeCustomFallsBackSilently(t *testing.T) {
	cases := []analyticsdomain.OverviewRequest{
		{Range: "custom", StartDate: "not-a-date", EndDate: "2026-03-10"},
		{Range: "custom", StartDate: "2026-03-01", EndDate: ""},
		{Range: "custom", StartDate: "2026-03-10", EndDate: "2026-03-01"},
	}

	for _, req := range cases {
		resolved := resolveRange(fixedNow(), req, testSettings())
		assert.Equal(t, "30d", resolved.Token)
		assert.Equal(t, 30, resolved.Days)
	}
}

func TestResolveRangeHonorsTimeZone(t *testing.T) {
	// 2026-03-10 03:30 UTC is still 2026-03-09 in Los Angeles.
	now := time.Date(2026, time.March, 10, 3, 30, 0, 0, time.UTC)
	resolved := resolveRange(now, analyticsdomain.OverviewRequest{
		Range:    "24h",
		TimeZone: "America/Los_Angeles",
	}, testSettings())

	zone, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	assert.Equal(t, "America/Los_Angeles", resolved.TimeZone)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, zone), resolved.Start)
}

func TestResolveRangeSpringForwardKeepsDayCount(t *testing.T) {
	// Los Angeles springs forward on 2026-03-08, so this 7-calendar-day
	// window is only 143 wall hours long.
	now := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)
	resolved := resolveRange(now, analyticsdomain.OverviewRequest{
		Range:    "7d",
		TimeZone: "America/Los_Angeles",
	}, testSettings())

	zone, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	assert.Equal(t, 7, resolved.Days)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, zone), resolved.Start)
	assert.Equal(t, time.Date(2026, time.February, 25, 0, 0, 0, 0, zone), resolved.PreviousStart)
	assert.Equal(t, resolved.Days, daySpan(resolved.PreviousStart, resolved.PreviousEnd))
	assert.True(t, resolved.PreviousEnd.Add(time.Nanosecond).Equal(resolved.Start))
}

func TestResolveRangeBadZoneFallsBack(t *testing.T) {
	resolved := resolveRange(fixedNow(), analyticsdomain.OverviewRequest{
		Range:    "7d",
		TimeZone: "Mars/Olympus",
	}, testSettings())

	assert.Equal(t, "UTC", resolved.TimeZone)
}

func TestComputeGrowth(t *testing.T) {
	assert.Equal(t, int64(100), computeGrowth(5, 0))
	assert.Equal(t, int64(0), computeGrowth(0, 0))
	assert.Equal(t, int64(50), computeGrowth(15, 10))
	assert.Equal(t, int64(-50), computeGrowth(5, 10))
	assert.Equal(t, int64(-100), computeGrowth(0, 10))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.0", formatRate(3, 0))
	assert.Equal(t, "50.0", formatRate(5, 10))
	assert.Equal(t, "33.3", formatRate(1, 3))
	assert.Equal(t, "100.0", formatRate(10, 10))
}
