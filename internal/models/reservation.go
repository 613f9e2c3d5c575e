package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	CabinID uint  `gorm:"not null;index" json:"cabin_id"`
	Cabin   Cabin `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cabin"`

	// [start_date, end_date)
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	Status          string          `gorm:"size:20;not null;index" json:"status"`
	ClientConfirmed bool            `gorm:"not null" json:"client_confirmed"`
	QuotedAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"quoted_amount"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CancelledBy *uint      `json:"cancelled_by"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
