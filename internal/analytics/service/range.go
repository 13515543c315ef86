package service

import (
	"strings"
	"time"

	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
	"github.com/salespulse/salespulse/internal/config"
)

const dateOnlyLayout = "2006-01-02"

// resolveRange turns a range token into a concrete window pair in the
// caller's zone. Custom windows that fail to parse, run backwards, or
// exceed the configured cap fall back to the default token rather than
// erroring; the dashboard always renders something.
func resolveRange(now time.Time, req analyticsdomain.OverviewRequest, defaults config.Settings) analyticsdomain.ResolvedRange {
	zone := loadZone(req.TimeZone, defaults.DefaultTimeZone)
	local := now.In(zone)

	token := strings.ToLower(strings.TrimSpace(req.Range))
	switch token {
	case analyticsdomain.Range24h, analyticsdomain.Range7d, analyticsdomain.Range30d, analyticsdomain.RangeCustom:
	default:
		token = defaults.DefaultRange
	}

	endDay := beginningOfDay(local)
	var startDay time.Time

	switch token {
	case analyticsdomain.Range24h:
		startDay = endDay
	case analyticsdomain.Range7d:
		startDay = endDay.AddDate(0, 0, -6)
	case analyticsdomain.RangeCustom:
		customStart, errStart := time.ParseInLocation(dateOnlyLayout, strings.TrimSpace(req.StartDate), zone)
		customEnd, errEnd := time.ParseInLocation(dateOnlyLayout, strings.TrimSpace(req.EndDate), zone)
		if errStart != nil || errEnd != nil || customEnd.Before(customStart) ||
			daySpan(customStart, customEnd) > defaults.MaxCustomDays {
			token = defaults.DefaultRange
			startDay, endDay = defaultWindow(endDay, token)
		} else {
			startDay = beginningOfDay(customStart)
			endDay = beginningOfDay(customEnd)
		}
	default:
		startDay = endDay.AddDate(0, 0, -29)
	}

	days := daySpan(startDay, endDay)
	prevStartDay := startDay.AddDate(0, 0, -days)
	prevEndDay := startDay.AddDate(0, 0, -1)

	return analyticsdomain.ResolvedRange{
		Token:         token,
		Start:         startDay,
		End:           endOfDay(endDay),
		PreviousStart: prevStartDay,
		PreviousEnd:   endOfDay(prevEndDay),
		Days:          days,
		TimeZone:      zone.String(),
	}
}

func defaultWindow(endDay time.Time, token string) (time.Time, time.Time) {
	switch token {
	case analyticsdomain.Range24h:
		return endDay, endDay
	case analyticsdomain.Range7d:
		return endDay.AddDate(0, 0, -6), endDay
	default:
		return endDay.AddDate(0, 0, -29), endDay
	}
}

func loadZone(name, fallback string) *time.Location {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		if zone, err := time.LoadLocation(trimmed); err == nil {
			return zone
		}
	}
	if zone, err := time.LoadLocation(fallback); err == nil {
		return zone
	}
	return time.UTC
}

func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// daySpan counts calendar days inclusively. Both ends are collapsed to
// UTC dates first so DST transitions in the window's zone cannot shift
// the count.
func daySpan(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	first := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	last := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(last.Sub(first).Hours()/24) + 1
}
