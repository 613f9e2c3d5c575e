package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
)

const DefaultMethod = MethodTransfer

type Status string

const (
	StatusPending  Status = "pending"
	StatusSettled  Status = "settled"
	StatusRejected Status = "rejected"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodCash, MethodTransfer, MethodCard:
		return m, nil
	case "":
		return DefaultMethod, nil
	}
	return "", httperr.ErrBusiness("invalid_payment_method")
}

// SettledForLoan registra um pagamento já liquidado de um empréstimo.
func SettledForLoan(loanID uint, amount decimal.Decimal, method Method, now time.Time) *models.Payment {
	return &models.Payment{
		EquipmentLoanID: &loanID,
		Amount:          amount,
		Method:          string(method),
		Status:          string(StatusSettled),
		PaidAt:          &now,
	}
}

// SettleReservation liquida o pagamento de uma reserva. p pode ser nil
// (primeiro pagamento) ou o registro já existente da reserva, que é
// reaproveitado; uma reserva nunca tem dois pagamentos.
func SettleReservation(p *models.Payment, reservationID uint, amount decimal.Decimal, method Method, now time.Time) *models.Payment {
	if p == nil {
		p = &models.Payment{}
	}
	p.ReservationID = &reservationID
	p.EquipmentLoanID = nil
	p.Amount = amount
	p.Method = string(method)
	p.Status = string(StatusSettled)
	p.PaidAt = &now
	return p
}

// IsSettled
func IsSettled(p *models.Payment) bool {
	return p != nil && p.Status == string(StatusSettled)
}

// Validate garante reserva XOR empréstimo.
func Validate(p *models.Payment) error {
	if (p.ReservationID == nil) == (p.EquipmentLoanID == nil) {
		return httperr.ErrBusiness("invalid_payment_owner")
	}
	if p.Amount.IsNegative() {
		return httperr.ErrBusiness("invalid_amount")
	}
	return nil
}
