package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cabin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Capacity    int    `gorm:"not null" json:"capacity"`

	NightlyPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"nightly_price"`

	// estado físico apenas: available | under_maintenance
	Status string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
