package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentLoan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	EquipmentID uint      `gorm:"not null;index" json:"equipment_id"`
	Equipment   Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"equipment"`

	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Status      string          `gorm:"size:20;not null;index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	LoanedAt   time.Time  `gorm:"not null" json:"loaned_at"`
	ReturnedAt *time.Time `json:"returned_at"`
	LostAt     *time.Time `json:"lost_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
