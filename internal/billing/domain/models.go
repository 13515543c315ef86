// Package domain contains persistence models for plans, prices, and
// subscriptions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SubscriptionStatus represents lifecycle states for a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusTrialing SubscriptionStatus = "TRIALING"
	SubscriptionStatusPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
)

type BillingInterval string

const (
	IntervalMonth BillingInterval = "MONTH"
	IntervalYear  BillingInterval = "YEAR"
)

// Plan is a sellable tier of the product.
type Plan struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	Code        string            `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string            `gorm:"type:text;not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	Active      bool              `gorm:"not null;default:true" json:"active"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Plan) TableName() string { return "plans" }

// Price is a per-seat amount for a plan and interval.
type Price struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	PlanID    snowflake.ID    `gorm:"not null;index" json:"plan_id"`
	Currency  string          `gorm:"type:text;not null" json:"currency"`
	Interval  BillingInterval `gorm:"type:text;not null" json:"interval"`
	UnitCents int64           `gorm:"not null" json:"unit_cents"` // per seat
	Active    bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Price) TableName() string { return "prices" }

// Subscription captures an organization's billing agreement.
type Subscription struct {
	ID                snowflake.ID       `gorm:"primaryKey" json:"id"`
	OrgID             snowflake.ID       `gorm:"not null;index" json:"org_id"`
	PlanID            snowflake.ID       `gorm:"not null;index" json:"plan_id"`
	PriceID           snowflake.ID       `gorm:"not null;index" json:"price_id"`
	Seats             int                `gorm:"not null;default:1" json:"seats"`
	Status            SubscriptionStatus `gorm:"type:text;not null" json:"status"`
	CurrentPeriodFrom time.Time          `gorm:"not null" json:"current_period_from"`
	CurrentPeriodTo   time.Time          `gorm:"not null" json:"current_period_to"`
	CanceledAt        *time.Time         `json:"canceled_at,omitempty"`
	CreatedAt         time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Subscription) TableName() string { return "subscriptions" }
