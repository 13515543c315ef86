package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/salespulse/salespulse/internal/billing/domain"
	"github.com/salespulse/salespulse/internal/clock"
	"github.com/salespulse/salespulse/internal/orgcontext"
	"github.com/salespulse/salespulse/pkg/db"
	"github.com/salespulse/salespulse/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	log *zap.Logger

	genID     *snowflake.Node
	clock     clock.Clock
	planrepo  repository.Repository[billingdomain.Plan]
	pricerepo repository.Repository[billingdomain.Price]
	subrepo   repository.Repository[billingdomain.Subscription]
}

func NewService(p ServiceParam) billingdomain.Service {
	return &Service{
		log:       p.Log.Named("billing.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		planrepo:  repository.ProvideStore[billingdomain.Plan](p.DB),
		pricerepo: repository.ProvideStore[billingdomain.Price](p.DB),
		subrepo:   repository.ProvideStore[billingdomain.Subscription](p.DB),
	}
}

func (s *Service) CreatePlan(ctx context.Context, req billingdomain.CreatePlanRequest) (*billingdomain.Plan, error) {
	code := strings.ToLower(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, billingdomain.ErrInvalidPlan
	}

	now := s.clock.Now()
	plan := &billingdomain.Plan{
		ID:          s.genID.Generate(),
		Code:        code,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Metadata != nil {
		plan.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.planrepo.Create(ctx, plan); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, billingdomain.ErrDuplicatePlanCode
		}
		return nil, err
	}
	return plan, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]billingdomain.Plan, error) {
	items, err := s.planrepo.Find(ctx, &billingdomain.Plan{Active: true})
	if err != nil {
		return nil, err
	}
	plans := make([]billingdomain.Plan, 0, len(items))
	for _, item := range items {
		plans = append(plans, *item)
	}
	return plans, nil
}

func (s *Service) CreatePrice(ctx context.Context, req billingdomain.CreatePriceRequest) (*billingdomain.Price, error) {
	planID, err := s.parseID(req.PlanID, billingdomain.ErrInvalidPlan)
	if err != nil {
		return nil, err
	}

	plan, err := s.planrepo.FindOne(ctx, &billingdomain.Plan{ID: planID})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, billingdomain.ErrInvalidPlan
	}

	interval := billingdomain.BillingInterval(strings.ToUpper(strings.TrimSpace(req.Interval)))
	if interval != billingdomain.IntervalMonth && interval != billingdomain.IntervalYear {
		return nil, billingdomain.ErrInvalidInterval
	}
	if req.UnitCents < 0 || strings.TrimSpace(req.Currency) == "" {
		return nil, billingdomain.ErrInvalidPrice
	}

	now := s.clock.Now()
	price := &billingdomain.Price{
		ID:        s.genID.Generate(),
		PlanID:    planID,
		Currency:  strings.ToUpper(strings.TrimSpace(req.Currency)),
		Interval:  interval,
		UnitCents: req.UnitCents,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pricerepo.Create(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

func (s *Service) ListPrices(ctx context.Context, rawPlanID string) ([]billingdomain.Price, error) {
	planID, err := s.parseID(rawPlanID, billingdomain.ErrInvalidPlan)
	if err != nil {
		return nil, err
	}

	items, err := s.pricerepo.Find(ctx, &billingdomain.Price{PlanID: planID, Active: true})
	if err != nil {
		return nil, err
	}
	prices := make([]billingdomain.Price, 0, len(items))
	for _, item := range items {
		prices = append(prices, *item)
	}
	return prices, nil
}

func (s *Service) Subscribe(ctx context.Context, req billingdomain.CreateSubscriptionRequest) (*billingdomain.Subscription, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, billingdomain.ErrInvalidOrganization
	}

	planID, err := s.parseID(req.PlanID, billingdomain.ErrInvalidPlan)
	if err != nil {
		return nil, err
	}
	priceID, err := s.parseID(req.PriceID, billingdomain.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}
	if req.Seats <= 0 {
		return nil, billingdomain.ErrInvalidSeats
	}

	price, err := s.pricerepo.FindOne(ctx, &billingdomain.Price{ID: priceID, PlanID: planID, Active: true})
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, billingdomain.ErrInvalidPrice
	}

	active, err := s.activeSubscription(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, billingdomain.ErrAlreadySubscribed
	}

	now := s.clock.Now()
	periodTo := now.AddDate(0, 1, 0)
	if price.Interval == billingdomain.IntervalYear {
		periodTo = now.AddDate(1, 0, 0)
	}

	sub := &billingdomain.Subscription{
		ID:                s.genID.Generate(),
		OrgID:             orgID,
		PlanID:            planID,
		PriceID:           priceID,
		Seats:             req.Seats,
		Status:            billingdomain.SubscriptionStatusActive,
		CurrentPeriodFrom: now,
		CurrentPeriodTo:   periodTo,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.subrepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("subscription created",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("plan_id", planID.String()),
		zap.Int("seats", req.Seats),
	)
	return sub, nil
}

func (s *Service) GetSubscription(ctx context.Context) (*billingdomain.Subscription, error) {
	orgID, ok := orgcontext.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return nil, billingdomain.ErrInvalidOrganization
	}

	sub, err := s.activeSubscription(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, billingdomain.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *Service) CancelSubscription(ctx context.Context) (*billingdomain.Subscription, error) {
	sub, err := s.GetSubscription(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.subrepo.Update(ctx, sub.ID.String(), map[string]any{
		"status":      billingdomain.SubscriptionStatusCanceled,
		"canceled_at": now,
		"updated_at":  now,
	}); err != nil {
		return nil, err
	}

	sub.Status = billingdomain.SubscriptionStatusCanceled
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	return sub, nil
}

func (s *Service) activeSubscription(ctx context.Context, orgID snowflake.ID) (*billingdomain.Subscription, error) {
	return s.subrepo.FindOne(ctx, &billingdomain.Subscription{
		OrgID:  orgID,
		Status: billingdomain.SubscriptionStatusActive,
	})
}

func (s *Service) parseID(value string, invalidErr error) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, invalidErr
	}
	return id, nil
}
