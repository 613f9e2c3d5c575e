package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// Datas vão como 'YYYY-MM-DD' para o Postgres comparar date com date,
// sem conversão de fuso.

type intervalRow struct {
	ID          uint
	CabinID     *uint
	EquipmentID *uint
	StartDate   time.Time
	EndDate     time.Time
}

func (r intervalRow) toInterval(ref availability.ResourceRef, reason availability.Reason) availability.Interval {
	return availability.Interval{
		Resource: ref,
		Reason:   reason,
		SourceID: r.ID,
		Range:    dates.Range{Start: dates.Day(r.StartDate), End: dates.Day(r.EndDate)},
	}
}

// blockingReservations: reservas pending/confirmed que tocam a janela.
// cabinID nil = todas as cabanas.
func blockingReservations(db *gorm.DB, cabinID *uint, window dates.Range) ([]intervalRow, error) {
	q := db.Model(&models.Reservation{}).
		Select("id", "cabin_id", "start_date", "end_date").
		Where(
			"status IN ? AND start_date < ? AND end_date > ?",
			reservation.BlockingStatuses(),
			dates.Format(window.End),
			dates.Format(window.Start),
		)

	if cabinID != nil {
		q = q.Where("cabin_id = ?", *cabinID)
	}

	var rows []intervalRow
	if err := q.Order("start_date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func blockingMaintenance(db *gorm.DB, ref *availability.ResourceRef, window dates.Range) ([]intervalRow, error) {
	q := db.Model(&models.MaintenanceWindow{}).
		Select("id", "cabin_id", "equipment_id", "start_date", "end_date").
		Where(
			"status IN ? AND start_date < ? AND end_date > ?",
			maintenance.BlockingStatuses(),
			dates.Format(window.End),
			dates.Format(window.Start),
		)

	switch {
	case ref == nil:
		q = q.Where("cabin_id IS NOT NULL")
	case ref.Kind == availability.KindCabin:
		q = q.Where("cabin_id = ?", ref.ID)
	default:
		q = q.Where("equipment_id = ?", ref.ID)
	}

	var rows []intervalRow
	if err := q.Order("start_date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func listBlockingIntervals(
	db *gorm.DB,
	ref availability.ResourceRef,
	window dates.Range,
) ([]availability.Interval, error) {

	var out []availability.Interval

	if ref.Kind == availability.KindCabin {
		res, err := blockingReservations(db, &ref.ID, window)
		if err != nil {
			return nil, err
		}
		for _, r := range res {
			out = append(out, r.toInterval(ref, availability.ReasonReserved))
		}
	}

	mws, err := blockingMaintenance(db, &ref, window)
	if err != nil {
		return nil, err
	}
	for _, m := range mws {
		out = append(out, m.toInterval(ref, availability.ReasonMaintenance))
	}

	return out, nil
}
