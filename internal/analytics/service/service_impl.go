package service

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
	"github.com/salespulse/salespulse/internal/clock"
	"github.com/salespulse/salespulse/internal/config"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	obsmetrics "github.com/salespulse/salespulse/internal/observability/metrics"
	"github.com/salespulse/salespulse/internal/orgcontext"
	"github.com/salespulse/salespulse/internal/roleconfig"
	"github.com/salespulse/salespulse/pkg/db/option"
	"github.com/salespulse/salespulse/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const revenueField = "revenueGenerated"

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Settings   *config.SettingsHolder
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log *zap.Logger

	clock      clock.Clock
	settings   *config.SettingsHolder
	recordrepo repository.Repository[eoddomain.MetricRecord]
	obsMetrics *obsmetrics.Metrics
}

func NewService(p ServiceParam) analyticsdomain.Service {
	return &Service{
		log:        p.Log.Named("analytics.service"),
		clock:      p.Clock,
		settings:   p.Settings,
		recordrepo: repository.ProvideStore[eoddomain.MetricRecord](p.DB),
		obsMetrics: p.ObsMetrics,
	}
}

func (s *Service) Overview(ctx context.Context, req analyticsdomain.OverviewRequest) (analyticsdomain.OverviewResponse, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return analyticsdomain.OverviewResponse{}, analyticsdomain.ErrInvalidOrganization
	}

	cfg, err := roleconfig.ForRole(req.Role)
	if err != nil {
		return analyticsdomain.OverviewResponse{}, analyticsdomain.ErrInvalidRole
	}

	var personID snowflake.ID
	if trimmed := strings.TrimSpace(req.PersonID); trimmed != "" {
		personID, err = snowflake.ParseString(trimmed)
		if err != nil || personID == 0 {
			return analyticsdomain.OverviewResponse{}, analyticsdomain.ErrInvalidPerson
		}
	}

	resolved := resolveRange(s.clock.Now(), req, s.settings.Current())

	current, err := s.fetchRecords(ctx, orgID, cfg, personID, resolved.Start, resolved.End)
	if err != nil {
		return analyticsdomain.OverviewResponse{}, err
	}
	previous, err := s.fetchRecords(ctx, orgID, cfg, personID, resolved.PreviousStart, resolved.PreviousEnd)
	if err != nil {
		return analyticsdomain.OverviewResponse{}, err
	}

	totals := sumFields(cfg, current)
	previousTotals := sumFields(cfg, previous)

	averages := make(map[string]float64, len(totals))
	deltas := make(map[string]int64, len(totals))
	for _, field := range cfg.Fields {
		averages[field.Name] = averageFor(field.Kind, totals[field.Name], resolved.Days)
		deltas[field.Name] = computeGrowth(totals[field.Name], previousTotals[field.Name])
	}

	rates := make(map[string]string, len(cfg.Rates))
	for _, rate := range cfg.Rates {
		rates[rate.Name] = formatRate(totals[rate.Numerator], totals[rate.Denominator])
	}

	if s.obsMetrics != nil {
		s.obsMetrics.RecordAnalyticsQuery(string(cfg.Role), resolved.Token)
	}

	return analyticsdomain.OverviewResponse{
		Role:             string(cfg.Role),
		Range:            resolved,
		Records:          dereference(current),
		Totals:           totals,
		PreviousTotals:   previousTotals,
		Averages:         averages,
		Deltas:           deltas,
		Rates:            rates,
		RevenueSeries:    buildRevenueSeries(current),
		DayCount:         resolved.Days,
		PreviousDayCount: resolved.Days,
	}, nil
}

// fetchRecords loads day-keyed reports overlapping [from, to]. Reports are
// stored at UTC midnight of their calendar day, so the window boundaries
// collapse to calendar dates before comparison.
func (s *Service) fetchRecords(
	ctx context.Context,
	orgID snowflake.ID,
	cfg roleconfig.RoleConfig,
	personID snowflake.ID,
	from, to time.Time,
) ([]*eoddomain.MetricRecord, error) {
	filter := &eoddomain.MetricRecord{OrgID: orgID, Role: string(cfg.Role)}
	if personID != 0 {
		filter.PersonID = personID
	}

	return s.recordrepo.Find(ctx, filter,
		option.ApplyOperator(option.Condition{
			Field:    "report_date",
			Operator: option.GTE,
			Value:    calendarDayUTC(from),
		}),
		option.ApplyOperator(option.Condition{
			Field:    "report_date",
			Operator: option.LTE,
			Value:    calendarDayUTC(to),
		}),
		option.WithSortBy(option.QuerySortBy{
			SortBy:  "report_date",
			OrderBy: "ASC",
			Allow:   map[string]bool{"report_date": true},
		}),
	)
}

func calendarDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sumFields(cfg roleconfig.RoleConfig, records []*eoddomain.MetricRecord) map[string]float64 {
	totals := make(map[string]float64, len(cfg.Fields))
	for _, field := range cfg.FieldNames() {
		totals[field] = 0
	}
	for _, record := range records {
		for _, field := range cfg.FieldNames() {
			totals[field] += record.Metric(field)
		}
	}
	return totals
}

// averageFor rounds count fields to whole units and currency fields to
// cents.
func averageFor(kind string, total float64, days int) float64 {
	avg := total / float64(days)
	if kind == roleconfig.KindCurrency {
		return math.Round(avg*100) / 100
	}
	return math.Round(avg)
}

// computeGrowth follows the dashboard convention: a previous total of zero
// reads as +100% when anything happened and 0% when nothing did.
func computeGrowth(current, previous float64) int64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int64(math.Round((current - previous) / previous * 100))
}

func formatRate(numerator, denominator float64) string {
	if denominator == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(numerator/denominator*100, 'f', 1, 64)
}

func buildRevenueSeries(records []*eoddomain.MetricRecord) []analyticsdomain.SeriesPoint {
	byDay := make(map[string]float64)
	for _, record := range records {
		period := record.ReportDate.Format(dateOnlyLayout)
		byDay[period] += record.Metric(revenueField)
	}

	series := make([]analyticsdomain.SeriesPoint, 0, len(byDay))
	for period, value := range byDay {
		series = append(series, analyticsdomain.SeriesPoint{Period: period, Value: value})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })
	return series
}

func dereference(records []*eoddomain.MetricRecord) []eoddomain.MetricRecord {
	out := make([]eoddomain.MetricRecord, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}
	return out
}
