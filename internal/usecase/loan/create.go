package loan

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateLoanInput struct {
	Actor actor.Actor

	ClientID    uint
	EquipmentID uint
	Quantity    int

	// cash | transfer | card (padrão transfer)
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLoan struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewCreateLoan(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CreateLoan {
	return &CreateLoan{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		clock:    clock,
	}
}

// Execute baixa o estoque, grava o empréstimo e o pagamento numa única
// transação com a linha do equipamento travada.
func (uc *CreateLoan) Execute(
	ctx context.Context,
	in CreateLoanInput,
) (*models.EquipmentLoan, error) {

	clientID, err := resolveClient(in.Actor, in.ClientID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}

	method, err := payment.ParseMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var created *models.EquipmentLoan

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		client, err := tx.GetUser(ctx, clientID)
		if err != nil && !httperr.IsNotFound(err) {
			return err
		}
		if err != nil || actor.Role(client.Role) != actor.RoleClient {
			return httperr.ErrNotFound("client_not_found")
		}

		eq, err := tx.LockEquipment(ctx, in.EquipmentID)
		if err != nil {
			return err
		}

		if err := domain.Reserve(eq, in.Quantity); err != nil {
			return err
		}

		if err := tx.UpdateEquipmentStock(ctx, eq); err != nil {
			return err
		}

		l := domain.NewLoan(clientID, eq, in.Quantity, now)
		if err := tx.CreateLoan(ctx, l); err != nil {
			return err
		}

		if l.TotalAmount.IsPositive() {
			p := payment.SettledForLoan(l.ID, l.TotalAmount, method, now)
			if err := payment.Validate(p); err != nil {
				return err
			}
			if err := tx.CreatePayment(ctx, p); err != nil {
				return fmt.Errorf("create loan payment: %w", err)
			}
		}

		l.Equipment = *eq
		l.Client = *client
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "loan_created",
		Entity:   "equipment_loan",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"equipment_id": created.EquipmentID,
			"quantity":     created.Quantity,
			"amount":       created.TotalAmount.StringFixed(2),
		},
	})

	uc.notifier.Notify(ctx,
		notify.Users(created.ClientID).And(notify.Roles(string(actor.RoleAdmin), string(actor.RoleManager))),
		notify.Message{
			Title: "Novo empréstimo de equipamento",
			Body: fmt.Sprintf("%d × %s emprestado(s). Total: %s.",
				created.Quantity, created.Equipment.Name, created.TotalAmount.StringFixed(2)),
			Severity: notify.SeverityInfo,
			Attributes: map[string]any{
				"loan_id":      created.ID,
				"equipment_id": created.EquipmentID,
				"quantity":     created.Quantity,
			},
		},
	)

	return created, nil
}

func resolveClient(a actor.Actor, clientID uint) (uint, error) {
	switch {
	case a.Is(actor.RoleClient):
		if clientID != 0 && clientID != a.UserID {
			return 0, httperr.ErrForbidden("forbidden")
		}
		return a.UserID, nil
	case a.IsStaff():
		if clientID == 0 {
			return 0, httperr.ErrBusiness("client_not_found")
		}
		return clientID, nil
	}
	return 0, httperr.ErrForbidden("forbidden")
}
