package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment é sempre um fato já liquidado; pertence a uma reserva OU a um
// empréstimo, nunca aos dois.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID   *uint `gorm:"index" json:"reservation_id"`
	EquipmentLoanID *uint `gorm:"index" json:"equipment_loan_id"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method string          `gorm:"size:20;not null" json:"method"`
	Status string          `gorm:"size:20;not null" json:"status"`
	PaidAt *time.Time      `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
