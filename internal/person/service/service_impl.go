package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/salespulse/salespulse/internal/cache"
	"github.com/salespulse/salespulse/internal/orgcontext"
	persondomain "github.com/salespulse/salespulse/internal/person/domain"
	"github.com/salespulse/salespulse/internal/roleconfig"
	"github.com/salespulse/salespulse/pkg/db/option"
	"github.com/salespulse/salespulse/pkg/db/pagination"
	"github.com/salespulse/salespulse/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	ResolverCache cache.PersonResolverCache
}

type Service struct {
	log *zap.Logger

	genID         *snowflake.Node
	personrepo    repository.Repository[persondomain.Person]
	resolverCache cache.PersonResolverCache
}

func NewService(p ServiceParam) persondomain.Service {
	return &Service{
		log:           p.Log.Named("person.service"),
		genID:         p.GenID,
		personrepo:    repository.ProvideStore[persondomain.Person](p.DB),
		resolverCache: p.ResolverCache,
	}
}

func (s *Service) Create(ctx context.Context, req persondomain.CreatePersonRequest) (*persondomain.Person, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, persondomain.ErrInvalidOrganization
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, persondomain.ErrInvalidName
	}

	if _, err := roleconfig.ForRole(req.Role); err != nil {
		return nil, persondomain.ErrInvalidRole
	}

	now := time.Now().UTC()
	person := &persondomain.Person{
		ID:        s.genID.Generate(),
		OrgID:     orgID,
		Name:      name,
		Slug:      slug.Make(name),
		Email:     strings.TrimSpace(req.Email),
		Role:      strings.ToLower(strings.TrimSpace(req.Role)),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.personrepo.Create(ctx, person); err != nil {
		return nil, err
	}

	s.log.Info("person created",
		zap.String("person_id", person.ID.String()),
		zap.String("role", person.Role),
	)
	return person, nil
}

func (s *Service) List(ctx context.Context, req persondomain.ListPersonsRequest) (persondomain.ListPersonsResponse, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return persondomain.ListPersonsResponse{}, persondomain.ErrInvalidOrganization
	}

	filter := &persondomain.Person{OrgID: orgID}
	if role := strings.ToLower(strings.TrimSpace(req.Role)); role != "" {
		if _, err := roleconfig.ForRole(role); err != nil {
			return persondomain.ListPersonsResponse{}, persondomain.ErrInvalidRole
		}
		filter.Role = role
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	items, err := s.personrepo.Find(ctx, filter,
		option.ApplyPagination(pagination.Pagination{
			PageToken: req.PageToken,
			PageSize:  int(pageSize),
		}),
		option.WithSortBy(option.QuerySortBy{Allow: map[string]bool{"created_at": true, "name": true}}),
	)
	if err != nil {
		return persondomain.ListPersonsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(p *persondomain.Person) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: p.ID.String()})
		return token
	})

	persons := make([]persondomain.Person, 0, len(items))
	for i, item := range items {
		if i >= int(pageSize) {
			break
		}
		persons = append(persons, *item)
	}

	return persondomain.ListPersonsResponse{
		PageInfo: *pageInfo,
		Persons:  persons,
	}, nil
}

func (s *Service) Get(ctx context.Context, personID string) (*persondomain.Person, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, persondomain.ErrInvalidOrganization
	}

	id, err := snowflake.ParseString(strings.TrimSpace(personID))
	if err != nil || id == 0 {
		return nil, persondomain.ErrPersonNotFound
	}

	if cached, ok := s.resolverCache.GetPerson(orgID.String(), id.String()); ok {
		return &cached, nil
	}

	person, err := s.personrepo.FindOne(ctx, &persondomain.Person{ID: id, OrgID: orgID})
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, persondomain.ErrPersonNotFound
	}

	s.resolverCache.SetPerson(orgID.String(), id.String(), *person)
	return person, nil
}

func (s *Service) Deactivate(ctx context.Context, personID string) error {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return persondomain.ErrInvalidOrganization
	}

	person, err := s.Get(ctx, personID)
	if err != nil {
		return err
	}

	if err := s.personrepo.Update(ctx, person.ID.String(), map[string]any{
		"active":     false,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		return err
	}

	s.resolverCache.InvalidatePerson(orgID.String(), person.ID.String())
	return nil
}
