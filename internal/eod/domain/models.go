// Package domain contains persistence models for end-of-day metric reports.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// MetricRecord stores one salesperson's report for one calendar day.
// A person has at most one record per role and day; resubmission with
// overwrite confirmation replaces the field document wholesale.
type MetricRecord struct {
	ID         snowflake.ID      `gorm:"primaryKey"`
	OrgID      snowflake.ID      `gorm:"not null;uniqueIndex:ux_metric_records_person_day"`
	Role       string            `gorm:"type:text;not null;uniqueIndex:ux_metric_records_person_day"`
	PersonID   snowflake.ID      `gorm:"not null;uniqueIndex:ux_metric_records_person_day"`
	ReportDate time.Time         `gorm:"not null;uniqueIndex:ux_metric_records_person_day"` // truncated to the day
	Fields     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (MetricRecord) TableName() string { return "metric_records" }

// Metric returns one numeric field from the report document, 0 when absent.
func (r MetricRecord) Metric(name string) float64 {
	if r.Fields == nil {
		return 0
	}
	switch v := r.Fields[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
