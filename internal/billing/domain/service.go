package domain

import (
	"context"
	"errors"
)

type CreatePlanRequest struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

type CreatePriceRequest struct {
	PlanID    string `json:"plan_id"`
	Currency  string `json:"currency"`
	Interval  string `json:"interval"`
	UnitCents int64  `json:"unit_cents"`
}

type CreateSubscriptionRequest struct {
	PlanID  string `json:"plan_id"`
	PriceID string `json:"price_id"`
	Seats   int    `json:"seats"`
}

type Service interface {
	CreatePlan(context.Context, CreatePlanRequest) (*Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	CreatePrice(context.Context, CreatePriceRequest) (*Price, error)
	ListPrices(ctx context.Context, planID string) ([]Price, error)
	Subscribe(context.Context, CreateSubscriptionRequest) (*Subscription, error)
	GetSubscription(ctx context.Context) (*Subscription, error)
	CancelSubscription(ctx context.Context) (*Subscription, error)
}

var (
	ErrInvalidOrganization  = errors.New("invalid_organization")
	ErrInvalidPlan          = errors.New("invalid_plan")
	ErrInvalidPrice         = errors.New("invalid_price")
	ErrInvalidSeats         = errors.New("invalid_seats")
	ErrInvalidInterval      = errors.New("invalid_interval")
	ErrDuplicatePlanCode    = errors.New("duplicate_plan_code")
	ErrSubscriptionNotFound = errors.New("subscription_not_found")
	ErrAlreadySubscribed    = errors.New("already_subscribed")
)
