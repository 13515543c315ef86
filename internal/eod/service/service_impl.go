package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	obsmetrics "github.com/salespulse/salespulse/internal/observability/metrics"
	"github.com/salespulse/salespulse/internal/orgcontext"
	persondomain "github.com/salespulse/salespulse/internal/person/domain"
	"github.com/salespulse/salespulse/internal/roleconfig"
	"github.com/salespulse/salespulse/pkg/db/option"
	"github.com/salespulse/salespulse/pkg/db/pagination"
	"github.com/salespulse/salespulse/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateOnlyLayout = "2006-01-02"

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	PersonSvc  persondomain.Service
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID      *snowflake.Node
	personSvc  persondomain.Service
	recordrepo repository.Repository[eoddomain.MetricRecord]
	obsMetrics *obsmetrics.Metrics
}

func NewService(p ServiceParam) eoddomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("eod.service"),

		genID:      p.GenID,
		personSvc:  p.PersonSvc,
		recordrepo: repository.ProvideStore[eoddomain.MetricRecord](p.DB),
		obsMetrics: p.ObsMetrics,
	}
}

// Submit runs the full write path: role catalog validation, then an
// existence check on (person, day) unless the caller confirmed the
// overwrite, then a whole-document upsert. Validation failures and
// overwrite conflicts are results, not errors; errors are reserved for
// malformed identity and storage trouble.
func (s *Service) Submit(ctx context.Context, req eoddomain.SubmitReportRequest) (eoddomain.SubmitReportResult, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return eoddomain.SubmitReportResult{}, eoddomain.ErrInvalidOrganization
	}

	cfg, err := roleconfig.ForRole(req.Role)
	if err != nil {
		return eoddomain.SubmitReportResult{}, eoddomain.ErrInvalidRole
	}

	person, err := s.resolvePerson(ctx, req.PersonID, cfg.Role)
	if err != nil {
		return eoddomain.SubmitReportResult{}, err
	}

	metrics, validationErrs := cfg.Validate(req.Date, req.Fields)

	var day time.Time
	if _, ok := validationErrs["date"]; !ok {
		day, err = time.Parse(dateOnlyLayout, strings.TrimSpace(req.Date))
		if err != nil {
			validationErrs["date"] = "Date must be a valid day (YYYY-MM-DD)"
		}
	}

	if len(validationErrs) > 0 {
		s.recordOutcome(string(cfg.Role), obsmetrics.OutcomeRejected)
		return eoddomain.SubmitReportResult{Errors: validationErrs}, nil
	}

	day = day.UTC().Truncate(24 * time.Hour)

	existing, err := s.recordrepo.FindOne(ctx, &eoddomain.MetricRecord{
		OrgID:      orgID,
		Role:       string(cfg.Role),
		PersonID:   person.ID,
		ReportDate: day,
	})
	if err != nil {
		return eoddomain.SubmitReportResult{}, err
	}

	if existing != nil && !req.ForceOverwrite {
		s.recordOutcome(string(cfg.Role), obsmetrics.OutcomeConflict)
		existingDate := existing.ReportDate
		return eoddomain.SubmitReportResult{ExistingDate: &existingDate}, nil
	}

	fields := make(datatypes.JSONMap, len(metrics))
	for name, value := range metrics {
		fields[name] = value
	}

	now := time.Now().UTC()
	record := &eoddomain.MetricRecord{
		ID:         s.genID.Generate(),
		OrgID:      orgID,
		Role:       string(cfg.Role),
		PersonID:   person.ID,
		ReportDate: day,
		Fields:     fields,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Full replacement of the field document. Losing a concurrent racer's
	// write is accepted; the unique index keeps one row per person and day.
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "org_id"},
			{Name: "role"},
			{Name: "person_id"},
			{Name: "report_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"fields", "updated_at"}),
	}).Create(record).Error; err != nil {
		return eoddomain.SubmitReportResult{}, err
	}

	outcome := obsmetrics.OutcomeAccepted
	if existing != nil {
		outcome = obsmetrics.OutcomeOverwrite
	}
	s.recordOutcome(string(cfg.Role), outcome)

	s.log.Info("eod report stored",
		zap.String("role", string(cfg.Role)),
		zap.String("person_id", person.ID.String()),
		zap.Time("report_date", day),
		zap.Bool("overwrite", existing != nil),
	)

	return eoddomain.SubmitReportResult{Success: true, Record: record}, nil
}

func (s *Service) List(ctx context.Context, req eoddomain.ListReportsRequest) (eoddomain.ListReportsResponse, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return eoddomain.ListReportsResponse{}, eoddomain.ErrInvalidOrganization
	}

	filter := &eoddomain.MetricRecord{OrgID: orgID}
	if role := strings.TrimSpace(req.Role); role != "" {
		cfg, err := roleconfig.ForRole(role)
		if err != nil {
			return eoddomain.ListReportsResponse{}, eoddomain.ErrInvalidRole
		}
		filter.Role = string(cfg.Role)
	}
	if personID := strings.TrimSpace(req.PersonID); personID != "" {
		id, err := snowflake.ParseString(personID)
		if err != nil || id == 0 {
			return eoddomain.ListReportsResponse{}, eoddomain.ErrInvalidPerson
		}
		filter.PersonID = id
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	items, err := s.recordrepo.Find(ctx, filter,
		option.ApplyPagination(pagination.Pagination{
			PageToken: req.PageToken,
			PageSize:  int(pageSize),
		}),
		option.WithSortBy(option.QuerySortBy{Allow: map[string]bool{"created_at": true, "report_date": true}}),
	)
	if err != nil {
		return eoddomain.ListReportsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(r *eoddomain.MetricRecord) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: r.ID.String()})
		return token
	})

	records := make([]eoddomain.MetricRecord, 0, len(items))
	for i, item := range items {
		if i >= int(pageSize) {
			break
		}
		records = append(records, *item)
	}

	return eoddomain.ListReportsResponse{
		PageInfo: *pageInfo,
		Records:  records,
	}, nil
}

func (s *Service) resolvePerson(ctx context.Context, personID string, role roleconfig.Role) (*persondomain.Person, error) {
	person, err := s.personSvc.Get(ctx, personID)
	if err != nil {
		return nil, eoddomain.ErrInvalidPerson
	}
	if person == nil || !person.Active {
		return nil, eoddomain.ErrInvalidPerson
	}
	// A report may only be filed under the person's own role catalog.
	if person.Role != string(role) {
		return nil, eoddomain.ErrInvalidPerson
	}
	return person, nil
}

func (s *Service) recordOutcome(role, outcome string) {
	if s.obsMetrics != nil {
		s.obsMetrics.RecordSubmission(role, outcome)
	}
}
