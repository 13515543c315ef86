package domain

import (
	"context"
	"errors"
	"time"

	"github.com/salespulse/salespulse/pkg/db/pagination"
)

// SubmitReportRequest carries one EOD submission. Metric values arrive as
// strings and are validated against the role catalog.
type SubmitReportRequest struct {
	Role           string            `json:"role"`
	PersonID       string            `json:"personId"`
	Date           string            `json:"date"`
	ForceOverwrite bool              `json:"forceOverwrite"`
	Fields         map[string]string `json:"fields"`
}

// SubmitReportResult is the tri-state outcome of a submission. Exactly one
// of Success, Errors, or ExistingDate is meaningful.
type SubmitReportResult struct {
	Success      bool              `json:"success"`
	Errors       map[string]string `json:"errors,omitempty"`
	ExistingDate *time.Time        `json:"existingDate,omitempty"`
	Record       *MetricRecord     `json:"-"`
}

type ListReportsRequest struct {
	Role      string `json:"role"`
	PersonID  string `json:"person_id"`
	PageToken string `json:"page_token"`
	PageSize  int32  `json:"page_size"`
}

type ListReportsResponse struct {
	pagination.PageInfo
	Records []MetricRecord `json:"records"`
}

type Service interface {
	Submit(context.Context, SubmitReportRequest) (SubmitReportResult, error)
	List(context.Context, ListReportsRequest) (ListReportsResponse, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidRole         = errors.New("invalid_role")
	ErrInvalidPerson       = errors.New("invalid_person")
	ErrInvalidDate         = errors.New("invalid_date")
)
