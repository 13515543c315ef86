package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	analyticsdomain "github.com/salespulse/salespulse/internal/analytics/domain"
	"github.com/salespulse/salespulse/internal/clock"
	"github.com/salespulse/salespulse/internal/config"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	"github.com/salespulse/salespulse/internal/orgcontext"
	"github.com/salespulse/salespulse/pkg/db"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func testContext() context.Context {
	return orgcontext.WithOrgID(context.Background(), 1)
}

func setupAnalyticsService(t *testing.T, now time.Time) (*gorm.DB, analyticsdomain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbConn.AutoMigrate(&eoddomain.MetricRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	svc := NewService(ServiceParam{
		DB:       dbConn,
		Log:      zap.NewNop(),
		Clock:    clock.NewFakeClock(now),
		Settings: config.NewStaticSettingsHolder(config.DefaultSettings()),
	})
	return dbConn, svc, node
}

func seedMetricRecord(
	t *testing.T,
	dbConn *gorm.DB,
	node *snowflake.Node,
	personID snowflake.ID,
	day string,
	fields datatypes.JSONMap,
) {
	t.Helper()

	reportDate, err := time.ParseInLocation(dateOnlyLayout, day, time.UTC)
	if err != nil {
		t.Fatalf("parse day %s: %v", day, err)
	}

	record := eoddomain.MetricRecord{
		ID:         node.Generate(),
		OrgID:      1,
		Role:       "dialer",
		PersonID:   personID,
		ReportDate: reportDate,
		Fields:     fields,
	}
	if err := dbConn.Create(&record).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
}

func TestOverviewAggregates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	dbConn, svc, node := setupAnalyticsService(t, now)
	ctx := testContext()
	personID := node.Generate()

	// Current window for 7d is Mar 4 through Mar 10.
	seedMetricRecord(t, dbConn, node, personID, "2026-03-08", datatypes.JSONMap{
		"dials": 10.0, "connects": 5.0, "conversations": 3.0, "revenueGenerated": 100.0,
	})
	seedMetricRecord(t, dbConn, node, personID, "2026-03-09", datatypes.JSONMap{
		"dials": 20.0, "connects": 5.0, "revenueGenerated": 200.0,
	})
	// Previous window, Feb 25 through Mar 3.
	seedMetricRecord(t, dbConn, node, personID, "2026-03-01", datatypes.JSONMap{
		"dials": 10.0,
	})
	// Outside both windows.
	seedMetricRecord(t, dbConn, node, personID, "2026-02-20", datatypes.JSONMap{
		"dials": 999.0,
	})

	resp, err := svc.Overview(ctx, analyticsdomain.OverviewRequest{Role: "dialer", Range: "7d"})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(resp.Records) != 2 {
		t.Fatalf("expected 2 records in window, got %d", len(resp.Records))
	}
	if resp.DayCount != 7 || resp.PreviousDayCount != 7 {
		t.Fatalf("expected 7-day windows, got %d and %d", resp.DayCount, resp.PreviousDayCount)
	}

	if got := resp.Totals["dials"]; got != 30 {
		t.Fatalf("expected 30 dials, got %v", got)
	}
	if got := resp.Totals["revenueGenerated"]; got != 300 {
		t.Fatalf("expected 300 revenue, got %v", got)
	}
	if got := resp.PreviousTotals["dials"]; got != 10 {
		t.Fatalf("expected 10 previous dials, got %v", got)
	}

	// Counts average to whole units, currency averages keep cents.
	if got := resp.Averages["dials"]; got != 4 {
		t.Fatalf("expected dials average 4, got %v", got)
	}
	if got := resp.Averages["revenueGenerated"]; got != 42.86 {
		t.Fatalf("expected revenue average 42.86, got %v", got)
	}

	// Growth: 10 -> 30 is +200%, zero previous with activity reads +100%,
	// zero on both sides reads 0%.
	if got := resp.Deltas["dials"]; got != 200 {
		t.Fatalf("expected dials delta 200, got %d", got)
	}
	if got := resp.Deltas["revenueGenerated"]; got != 100 {
		t.Fatalf("expected revenue delta 100, got %d", got)
	}
	if got := resp.Deltas["cashCollected"]; got != 0 {
		t.Fatalf("expected cash delta 0, got %d", got)
	}

	if got := resp.Rates["connectRate"]; got != "33.3" {
		t.Fatalf("expected connectRate 33.3, got %s", got)
	}
	if got := resp.Rates["showRate"]; got != "0.0" {
		t.Fatalf("expected showRate 0.0 on zero meetings, got %s", got)
	}
}

func TestOverviewRevenueSeries(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	dbConn, svc, node := setupAnalyticsService(t, now)
	ctx := testContext()
	personID := node.Generate()

	seedMetricRecord(t, dbConn, node, personID, "2026-03-09", datatypes.JSONMap{"revenueGenerated": 200.0})
	seedMetricRecord(t, dbConn, node, personID, "2026-03-05", datatypes.JSONMap{"revenueGenerated": 50.0})
	seedMetricRecord(t, dbConn, node, personID, "2026-03-07", datatypes.JSONMap{"dials": 12.0})

	resp, err := svc.Overview(ctx, analyticsdomain.OverviewRequest{Role: "dialer", Range: "7d"})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// Ascending by day, zero-revenue days still present, empty days absent.
	want := []analyticsdomain.SeriesPoint{
		{Period: "2026-03-05", Value: 50},
		{Period: "2026-03-07", Value: 0},
		{Period: "2026-03-09", Value: 200},
	}
	if len(resp.RevenueSeries) != len(want) {
		t.Fatalf("expected %d series points, got %d", len(want), len(resp.RevenueSeries))
	}
	for i, point := range want {
		if resp.RevenueSeries[i] != point {
			t.Fatalf("series[%d]: expected %+v, got %+v", i, point, resp.RevenueSeries[i])
		}
	}
}

func TestOverviewFiltersByPerson(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	dbConn, svc, node := setupAnalyticsService(t, now)
	ctx := testContext()
	personA := node.Generate()
	personB := node.Generate()

	seedMetricRecord(t, dbConn, node, personA, "2026-03-08", datatypes.JSONMap{"dials": 10.0})
	seedMetricRecord(t, dbConn, node, personB, "2026-03-08", datatypes.JSONMap{"dials": 7.0})

	resp, err := svc.Overview(ctx, analyticsdomain.OverviewRequest{
		Role:     "dialer",
		Range:    "7d",
		PersonID: personA.String(),
	})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if got := resp.Totals["dials"]; got != 10 {
		t.Fatalf("expected only person A dials, got %v", got)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}
}

func TestOverviewUnknownRole(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	_, svc, _ := setupAnalyticsService(t, now)

	_, err := svc.Overview(testContext(), analyticsdomain.OverviewRequest{Role: "manager"})
	if !errors.Is(err, analyticsdomain.ErrInvalidRole) {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestOverviewMissingOrganization(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	_, svc, _ := setupAnalyticsService(t, now)

	_, err := svc.Overview(context.Background(), analyticsdomain.OverviewRequest{Role: "dialer"})
	if !errors.Is(err, analyticsdomain.ErrInvalidOrganization) {
		t.Fatalf("expected invalid organization error, got %v", err)
	}
}
