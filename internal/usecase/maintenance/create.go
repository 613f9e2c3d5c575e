package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateMaintenanceInput struct {
	Actor actor.Actor

	CabinID     *uint
	EquipmentID *uint

	StartDate string
	EndDate   string

	Category      string
	Priority      string
	Description   string
	ExternalStaff string

	WorkerID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateMaintenance struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	cache    availability.CalendarCache
	clock    timezone.Clock

	// roda o aviso às reservas afetadas fora da requisição
	spawn func(func())
}

func NewCreateMaintenance(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	cache availability.CalendarCache,
	clock timezone.Clock,
) *CreateMaintenance {
	return &CreateMaintenance{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		cache:    cache,
		clock:    clock,
		spawn:    func(fn func()) { go fn() },
	}
}

// Execute NÃO verifica conflito: manutenção pode cair sobre uma reserva
// ativa. Nesse caso os clientes são avisados e nada é cancelado.
func (uc *CreateMaintenance) Execute(
	ctx context.Context,
	in CreateMaintenanceInput,
) (*models.MaintenanceWindow, error) {

	if err := actor.Require(in.Actor, actor.RoleAdmin, actor.RoleManager); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Validações (antes de qualquer escrita)
	// --------------------------------------------------
	target := domain.Target{CabinID: in.CabinID, EquipmentID: in.EquipmentID}
	ref, err := target.Resolve()
	if err != nil {
		return nil, err
	}

	period, err := dates.ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		if errors.Is(err, dates.ErrInvalidRange) {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		return nil, httperr.ErrBusiness("invalid_date")
	}

	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Janela + tarefa do trabalhador (atômico)
	// --------------------------------------------------
	var created *models.MaintenanceWindow
	var resourceName string

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		switch ref.Kind {
		case availability.KindCabin:
			cabin, err := tx.GetCabin(ctx, ref.ID)
			if err != nil {
				return err
			}
			resourceName = cabin.Name
		case availability.KindEquipment:
			eq, err := tx.GetEquipment(ctx, ref.ID)
			if err != nil {
				return err
			}
			resourceName = eq.Name
		}

		if in.WorkerID != nil {
			worker, err := tx.GetUser(ctx, *in.WorkerID)
			if err != nil || actor.Role(worker.Role) != actor.RoleWorker {
				return httperr.ErrNotFound("worker_not_found")
			}
		}

		w := &models.MaintenanceWindow{
			CabinID:       in.CabinID,
			EquipmentID:   in.EquipmentID,
			StartDate:     period.Start,
			EndDate:       period.End,
			Category:      string(category),
			Priority:      string(priority),
			Status:        string(domain.StatusScheduled),
			Description:   in.Description,
			ExternalStaff: in.ExternalStaff,
			WorkerID:      in.WorkerID,
			CreatedByID:   in.Actor.UserID,
		}

		if err := tx.CreateWindow(ctx, w); err != nil {
			return err
		}

		if in.WorkerID != nil {
			due := period.Start
			t := &models.WorkerTask{
				WorkerID:            *in.WorkerID,
				MaintenanceWindowID: &w.ID,
				Type:                string(task.TypeMaintenance),
				Title:               fmt.Sprintf("Manutenção %s: %s", category, resourceName),
				Description:         in.Description,
				Status:              string(task.StatusPending),
				DueDate:             &due,
				AssignedByID:        in.Actor.UserID,
			}
			if err := tx.CreateTask(ctx, t); err != nil {
				return err
			}
		}

		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Efeitos colaterais
	// --------------------------------------------------
	if ref.Kind == availability.KindCabin {
		uc.cache.Invalidate(ctx, period)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "maintenance_created",
		Entity:   "maintenance_window",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"resource_kind": string(ref.Kind),
			"resource_id":   ref.ID,
			"category":      created.Category,
			"priority":      created.Priority,
		},
	})

	if created.WorkerID != nil {
		uc.notifier.Notify(ctx, notify.Users(*created.WorkerID), notify.Message{
			Title:      "Nova tarefa de manutenção",
			Body:       fmt.Sprintf("Manutenção de %s entre %s e %s.", resourceName, dates.Format(period.Start), dates.Format(period.End)),
			Severity:   notify.SeverityInfo,
			Attributes: map[string]any{"maintenance_id": created.ID},
		})
	}

	if ref.Kind == availability.KindCabin {
		w := *created
		bg := context.WithoutCancel(ctx)
		uc.spawn(func() { uc.notifyAffected(bg, &w, resourceName) })
	}

	return created, nil
}

// notifyAffected avisa clientes com reservas ativas sobrepostas e os
// admins. Falhas só são logadas.
func (uc *CreateMaintenance) notifyAffected(
	ctx context.Context,
	w *models.MaintenanceWindow,
	cabinName string,
) {
	period := domain.Period(w)

	affected, err := uc.repo.ListActiveReservationsOverlapping(ctx, *w.CabinID, period)
	if err != nil {
		logger.WarnContext(ctx, "failed to load reservations affected by maintenance",
			"maintenance_id", w.ID,
			"error", err,
		)
		return
	}
	if len(affected) == 0 {
		return
	}

	ids := make([]uint, 0, len(affected))
	for _, r := range affected {
		ids = append(ids, r.ID)

		uc.notifier.Notify(ctx, notify.Users(r.ClientID), notify.Message{
			Title: "Manutenção programada na sua reserva",
			Body: fmt.Sprintf("A cabana %s terá manutenção entre %s e %s, durante a sua reserva #%d. Entraremos em contato.",
				cabinName, dates.Format(period.Start), dates.Format(period.End), r.ID),
			Severity: notify.SeverityWarning,
			Attributes: map[string]any{
				"maintenance_id": w.ID,
				"reservation_id": r.ID,
			},
		})
	}

	uc.notifier.Notify(ctx, notify.Roles(string(actor.RoleAdmin)), notify.Message{
		Title: "Manutenção sobre reservas ativas",
		Body: fmt.Sprintf("A manutenção #%d da cabana %s afeta %d reserva(s). Reagendamento manual necessário.",
			w.ID, cabinName, len(affected)),
		Severity: notify.SeverityError,
		Attributes: map[string]any{
			"maintenance_id":  w.ID,
			"reservation_ids": ids,
		},
	})
}
