package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// transition é a ação de domínio aplicada ao empréstimo + equipamento.
type transition func(l *models.EquipmentLoan, eq *models.Equipment, now time.Time) error

// settle trava empréstimo e equipamento, aplica a transição e persiste
// os dois na mesma transação.
func settle(
	ctx context.Context,
	repo domain.Repository,
	loanID uint,
	now time.Time,
	apply transition,
) (*models.EquipmentLoan, error) {

	var out *models.EquipmentLoan

	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		l, err := tx.LockLoan(ctx, loanID)
		if err != nil {
			return err
		}

		eq, err := tx.LockEquipment(ctx, l.EquipmentID)
		if err != nil {
			return err
		}

		if err := apply(l, eq, now); err != nil {
			return err
		}

		if err := tx.UpdateEquipmentStock(ctx, eq); err != nil {
			return err
		}
		if err := tx.UpdateLoan(ctx, l); err != nil {
			return err
		}

		l.Equipment = *eq
		out = l
		return nil
	})

	return out, err
}

// ======================================================
// RETURN
// ======================================================

type ReturnLoan struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewReturnLoan(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *ReturnLoan {
	return &ReturnLoan{repo: repo, notifier: notifier, audit: audit, clock: clock}
}

func (uc *ReturnLoan) Execute(
	ctx context.Context,
	by actor.Actor,
	loanID uint,
) (*models.EquipmentLoan, error) {

	if err := actor.Require(by, actor.RoleAdmin, actor.RoleManager, actor.RoleWorker); err != nil {
		return nil, err
	}

	l, err := settle(ctx, uc.repo, loanID, uc.clock.Now(), domain.Return)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "loan_returned",
		Entity:   "equipment_loan",
		EntityID: &l.ID,
		Metadata: map[string]any{"quantity": l.Quantity},
	})

	uc.notifier.Notify(ctx,
		notify.Users(l.ClientID),
		notify.Message{
			Title:      "Equipamento devolvido",
			Body:       fmt.Sprintf("Recebemos a devolução de %d × %s.", l.Quantity, l.Equipment.Name),
			Severity:   notify.SeveritySuccess,
			Attributes: map[string]any{"loan_id": l.ID},
		},
	)

	return l, nil
}

// ======================================================
// LOST
// ======================================================

type MarkLoanLost struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewMarkLoanLost(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *MarkLoanLost {
	return &MarkLoanLost{repo: repo, notifier: notifier, audit: audit, clock: clock}
}

func (uc *MarkLoanLost) Execute(
	ctx context.Context,
	by actor.Actor,
	loanID uint,
) (*models.EquipmentLoan, error) {

	if err := actor.Require(by, actor.RoleAdmin, actor.RoleManager); err != nil {
		return nil, err
	}

	l, err := settle(ctx, uc.repo, loanID, uc.clock.Now(), domain.MarkLost)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "loan_lost",
		Entity:   "equipment_loan",
		EntityID: &l.ID,
		Metadata: map[string]any{"quantity": l.Quantity},
	})

	uc.notifier.Notify(ctx,
		notify.Users(l.ClientID).And(notify.Roles(string(actor.RoleAdmin))),
		notify.Message{
			Title:      "Equipamento extraviado",
			Body:       fmt.Sprintf("%d × %s registrado(s) como perdido(s).", l.Quantity, l.Equipment.Name),
			Severity:   notify.SeverityWarning,
			Attributes: map[string]any{"loan_id": l.ID},
		},
	)

	return l, nil
}
