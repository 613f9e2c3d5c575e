package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	TotalStock     int `gorm:"not null;check:total_stock >= 0" json:"total_stock"`
	AvailableStock int `gorm:"not null;check:available_stock >= 0" json:"available_stock"`

	LoanPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"loan_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}
