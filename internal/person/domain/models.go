// Package domain contains persistence models for the team directory.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Person is one member of the sales team.
type Person struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID     snowflake.ID `gorm:"not null;index" json:"org_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Slug      string       `gorm:"type:text;not null;index" json:"slug"`
	Email     string       `gorm:"type:text" json:"email"`
	Role      string       `gorm:"type:text;not null" json:"role"`
	Active    bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Person) TableName() string { return "persons" }
