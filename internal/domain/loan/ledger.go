package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// Invariante do estoque:
//   available + Σ(quantidade dos empréstimos ativos) == total

func ValidateQuantity(qty int) error {
	if qty <= 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}
	return nil
}

// Reserve baixa o estoque disponível. Nunca "corta" a quantidade: se
// faltar, devolve o disponível real no erro.
func Reserve(eq *models.Equipment, qty int) error {
	if qty > eq.AvailableStock {
		return httperr.ErrConflict("insufficient_stock", map[string]any{
			"available": eq.AvailableStock,
			"requested": qty,
		})
	}
	eq.AvailableStock -= qty
	return nil
}

func TotalAmount(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

func NewLoan(clientID uint, eq *models.Equipment, qty int, now time.Time) *models.EquipmentLoan {
	return &models.EquipmentLoan{
		ClientID:    clientID,
		EquipmentID: eq.ID,
		Quantity:    qty,
		Status:      string(StatusActive),
		TotalAmount: TotalAmount(eq.LoanPrice, qty),
		LoanedAt:    now,
	}
}

// ===============================
// Domain Actions
// ===============================

func Return(l *models.EquipmentLoan, eq *models.Equipment, now time.Time) error {
	if err := CanReturn(Status(l.Status)); err != nil {
		return err
	}

	eq.AvailableStock += l.Quantity
	if eq.AvailableStock > eq.TotalStock {
		return httperr.ErrConflict("stock_inconsistent", map[string]any{
			"available": eq.AvailableStock,
			"total":     eq.TotalStock,
		})
	}

	l.Status = string(StatusReturned)
	l.ReturnedAt = &now
	return nil
}

// MarkLost tira as unidades perdidas do inventário total; o disponível
// não muda porque elas já estavam fora.
func MarkLost(l *models.EquipmentLoan, eq *models.Equipment, now time.Time) error {
	if err := CanMarkLost(Status(l.Status)); err != nil {
		return err
	}

	eq.TotalStock -= l.Quantity
	if eq.TotalStock < eq.AvailableStock {
		return httperr.ErrConflict("stock_inconsistent", map[string]any{
			"available": eq.AvailableStock,
			"total":     eq.TotalStock,
		})
	}

	l.Status = string(StatusLost)
	l.LostAt = &now
	return nil
}
