package mq

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	loanuc "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/loan"
	maintenanceuc "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/maintenance"
	reservationuc "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/reservation"
)

// Commands são os use cases expostos pela fila.
type Commands struct {
	CreateReservation  *reservationuc.CreateReservation
	ConfirmReservation *reservationuc.ConfirmReservation
	CancelReservation  *reservationuc.CancelReservation

	CreateLoan *loanuc.CreateLoan
	ReturnLoan *loanuc.ReturnLoan

	CreateMaintenance *maintenanceuc.CreateMaintenance
	Maintenance       *maintenanceuc.Lifecycle
}

func (r *CommandRouter) RegisterCommands(c Commands) {

	// ===============================
	// Reservas
	// ===============================

	r.Register(CommandCreateReservation, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[CreateReservationPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.CreateReservation.Execute(ctx, reservationuc.CreateReservationInput{
			Actor:     by,
			ClientID:  p.ClientID,
			CabinID:   p.CabinID,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		})
	})

	r.Register(CommandConfirmReservation, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[ReservationRefPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.ConfirmReservation.Execute(ctx, by, p.ReservationID)
	})

	r.Register(CommandCancelReservation, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[ReservationRefPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.CancelReservation.Execute(ctx, by, p.ReservationID)
	})

	// ===============================
	// Empréstimos
	// ===============================

	r.Register(CommandCreateLoan, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[CreateLoanPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.CreateLoan.Execute(ctx, loanuc.CreateLoanInput{
			Actor:         by,
			ClientID:      p.ClientID,
			EquipmentID:   p.EquipmentID,
			Quantity:      p.Quantity,
			PaymentMethod: p.PaymentMethod,
		})
	})

	r.Register(CommandReturnLoan, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[LoanRefPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.ReturnLoan.Execute(ctx, by, p.LoanID)
	})

	// ===============================
	// Manutenção
	// ===============================

	r.Register(CommandCreateMaintenance, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[CreateMaintenancePayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.CreateMaintenance.Execute(ctx, maintenanceuc.CreateMaintenanceInput{
			Actor:         by,
			CabinID:       p.CabinID,
			EquipmentID:   p.EquipmentID,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			Category:      p.Category,
			Priority:      p.Priority,
			Description:   p.Description,
			ExternalStaff: p.ExternalStaff,
			WorkerID:      p.WorkerID,
		})
	})

	r.Register(CommandCompleteMaintenance, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		p, err := decode[MaintenanceRefPayload](r.validate, raw)
		if err != nil {
			return nil, err
		}
		return c.Maintenance.Complete(ctx, by, p.MaintenanceID)
	})
}
