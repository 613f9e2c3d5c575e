package maintenance

import (
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// Target aponta para uma cabana OU um equipamento.
type Target struct {
	CabinID     *uint
	EquipmentID *uint
}

// Resolve exige exatamente um dos dois.
func (t Target) Resolve() (availability.ResourceRef, error) {
	switch {
	case t.CabinID != nil && t.EquipmentID == nil:
		return availability.Cabin(*t.CabinID), nil
	case t.EquipmentID != nil && t.CabinID == nil:
		return availability.Equipment(*t.EquipmentID), nil
	}
	return availability.ResourceRef{}, httperr.ErrBusiness("invalid_target")
}

func TargetOf(w *models.MaintenanceWindow) Target {
	return Target{CabinID: w.CabinID, EquipmentID: w.EquipmentID}
}

func Period(w *models.MaintenanceWindow) dates.Range {
	return dates.Range{Start: dates.Day(w.StartDate), End: dates.Day(w.EndDate)}
}

// ===============================
// Domain Actions
// ===============================

func Start(w *models.MaintenanceWindow, now time.Time) error {
	if err := CanStart(Status(w.Status)); err != nil {
		return err
	}

	w.Status = string(StatusInProgress)
	w.StartedAt = &now
	return nil
}

func Complete(w *models.MaintenanceWindow, now time.Time) error {
	if err := CanComplete(Status(w.Status)); err != nil {
		return err
	}

	w.Status = string(StatusCompleted)
	w.CompletedAt = &now
	return nil
}

func Cancel(w *models.MaintenanceWindow, now time.Time) error {
	if err := CanCancel(Status(w.Status)); err != nil {
		return err
	}

	w.Status = string(StatusCancelled)
	w.CancelledAt = &now
	return nil
}
