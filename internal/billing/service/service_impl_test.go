package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/salespulse/salespulse/internal/billing/domain"
	"github.com/salespulse/salespulse/internal/clock"
	"github.com/salespulse/salespulse/internal/orgcontext"
	"github.com/salespulse/salespulse/pkg/db"
	"go.uber.org/zap"
)

func setupBillingService(t *testing.T, now time.Time) billingdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&billingdomain.Plan{},
		&billingdomain.Price{},
		&billingdomain.Subscription{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	return NewService(ServiceParam{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(now),
	})
}

func testContext() context.Context {
	return orgcontext.WithOrgID(context.Background(), 1)
}

func seedPlanWithPrice(t *testing.T, svc billingdomain.Service) (*billingdomain.Plan, *billingdomain.Price) {
	t.Helper()

	plan, err := svc.CreatePlan(context.Background(), billingdomain.CreatePlanRequest{
		Code: "team",
		Name: "Team",
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	price, err := svc.CreatePrice(context.Background(), billingdomain.CreatePriceRequest{
		PlanID:    plan.ID.String(),
		Currency:  "usd",
		Interval:  "MONTH",
		UnitCents: 4900,
	})
	if err != nil {
		t.Fatalf("create price: %v", err)
	}
	return plan, price
}

func TestCreatePlanRejectsDuplicateCode(t *testing.T) {
	svc := setupBillingService(t, time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.CreatePlan(ctx, billingdomain.CreatePlanRequest{Code: "team", Name: "Team"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	_, err := svc.CreatePlan(ctx, billingdomain.CreatePlanRequest{Code: "TEAM", Name: "Team again"})
	if !errors.Is(err, billingdomain.ErrDuplicatePlanCode) {
		t.Fatalf("expected duplicate plan code error, got %v", err)
	}
}

func TestCreatePriceRejectsBadInterval(t *testing.T) {
	svc := setupBillingService(t, time.Now().UTC())
	plan, _ := seedPlanWithPrice(t, svc)

	_, err := svc.CreatePrice(context.Background(), billingdomain.CreatePriceRequest{
		PlanID:    plan.ID.String(),
		Currency:  "usd",
		Interval:  "weekly",
		UnitCents: 900,
	})
	if !errors.Is(err, billingdomain.ErrInvalidInterval) {
		t.Fatalf("expected invalid interval error, got %v", err)
	}
}

func TestSubscribeAnchorsBillingPeriod(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	svc := setupBillingService(t, now)
	plan, price := seedPlanWithPrice(t, svc)
	ctx := testContext()

	sub, err := svc.Subscribe(ctx, billingdomain.CreateSubscriptionRequest{
		PlanID:  plan.ID.String(),
		PriceID: price.ID.String(),
		Seats:   5,
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if sub.Status != billingdomain.SubscriptionStatusActive {
		t.Fatalf("expected active subscription, got %s", sub.Status)
	}
	if !sub.CurrentPeriodFrom.Equal(now) {
		t.Fatalf("expected period start %v, got %v", now, sub.CurrentPeriodFrom)
	}
	if want := now.AddDate(0, 1, 0); !sub.CurrentPeriodTo.Equal(want) {
		t.Fatalf("expected period end %v, got %v", want, sub.CurrentPeriodTo)
	}
}

func TestSubscribeRejectsSecondActiveSubscription(t *testing.T) {
	svc := setupBillingService(t, time.Now().UTC())
	plan, price := seedPlanWithPrice(t, svc)
	ctx := testContext()

	req := billingdomain.CreateSubscriptionRequest{
		PlanID:  plan.ID.String(),
		PriceID: price.ID.String(),
		Seats:   3,
	}
	if _, err := svc.Subscribe(ctx, req); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	_, err := svc.Subscribe(ctx, req)
	if !errors.Is(err, billingdomain.ErrAlreadySubscribed) {
		t.Fatalf("expected already subscribed error, got %v", err)
	}
}

func TestCancelSubscription(t *testing.T) {
	svc := setupBillingService(t, time.Now().UTC())
	plan, price := seedPlanWithPrice(t, svc)
	ctx := testContext()

	if _, err := svc.Subscribe(ctx, billingdomain.CreateSubscriptionRequest{
		PlanID:  plan.ID.String(),
		PriceID: price.ID.String(),
		Seats:   3,
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	canceled, err := svc.CancelSubscription(ctx)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != billingdomain.SubscriptionStatusCanceled {
		t.Fatalf("expected canceled status, got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatal("expected canceled_at timestamp")
	}

	// A new subscription is allowed once the previous one is canceled.
	if _, err := svc.Subscribe(ctx, billingdomain.CreateSubscriptionRequest{
		PlanID:  plan.ID.String(),
		PriceID: price.ID.String(),
		Seats:   1,
	}); err != nil {
		t.Fatalf("resubscribe: %v", err)
	}

	_, err = svc.GetSubscription(orgcontext.WithOrgID(context.Background(), 2))
	if !errors.Is(err, billingdomain.ErrSubscriptionNotFound) {
		t.Fatalf("expected not found for other org, got %v", err)
	}
}
