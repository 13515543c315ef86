// Package domain defines the analytics read surface over stored EOD reports.
package domain

import (
	"context"
	"errors"
	"time"

	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
)

const (
	Range24h    = "24h"
	Range7d     = "7d"
	Range30d    = "30d"
	RangeCustom = "custom"
)

type OverviewRequest struct {
	Role      string `json:"role"`
	PersonID  string `json:"person_id"`
	Range     string `json:"range"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TimeZone  string `json:"time_zone"`
}

// ResolvedRange is the concrete window pair a request resolved to. The
// previous window has the same day span and ends the instant before the
// current one starts.
type ResolvedRange struct {
	Token         string    `json:"token"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previous_start"`
	PreviousEnd   time.Time `json:"previous_end"`
	Days          int       `json:"days"`
	TimeZone      string    `json:"time_zone"`
}

type SeriesPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

type OverviewResponse struct {
	Role             string                   `json:"role"`
	Range            ResolvedRange            `json:"range"`
	Records          []eoddomain.MetricRecord `json:"records"`
	Totals           map[string]float64       `json:"totals"`
	PreviousTotals   map[string]float64       `json:"previous_totals"`
	Averages         map[string]float64       `json:"averages"`
	Deltas           map[string]int64         `json:"deltas"`
	Rates            map[string]string        `json:"rates"`
	RevenueSeries    []SeriesPoint            `json:"revenue_series"`
	DayCount         int                      `json:"day_count"`
	PreviousDayCount int                      `json:"previous_day_count"`
}

type Service interface {
	Overview(context.Context, OverviewRequest) (OverviewResponse, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidRole         = errors.New("invalid_role")
	ErrInvalidPerson       = errors.New("invalid_person")
)
