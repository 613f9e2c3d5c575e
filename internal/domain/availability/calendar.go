package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
)

type CabinInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Occupancy struct {
	CabinID  uint   `json:"cabin_id"`
	Occupied bool   `json:"occupied"`
	Reason   Reason `json:"reason,omitempty"`
	SourceID *uint  `json:"source_id,omitempty"`
}

type Day struct {
	Date   string      `json:"date"`
	Cabins []Occupancy `json:"cabins"`
}

type Calendar struct {
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Cabins []CabinInfo `json:"cabins"`
	Days   []Day       `json:"days"`
}

// BuildCalendar monta a ocupação dia a dia de cada cabana. Os intervalos
// do mês já vêm carregados; nada é consultado por dia.
// Quando reserva e manutenção cobrem o mesmo dia, a manutenção prevalece.
func BuildCalendar(
	month dates.Range,
	cabins []CabinInfo,
	intervals []Interval,
) *Calendar {

	byCabin := make(map[uint][]Interval, len(cabins))
	for _, iv := range intervals {
		if iv.Resource.Kind != KindCabin {
			continue
		}
		byCabin[iv.Resource.ID] = append(byCabin[iv.Resource.ID], iv)
	}

	cal := &Calendar{
		Year:   month.Start.Year(),
		Month:  int(month.Start.Month()),
		Cabins: cabins,
	}

	for _, day := range month.Days() {
		d := Day{
			Date:   dates.Format(day),
			Cabins: make([]Occupancy, 0, len(cabins)),
		}

		for _, cabin := range cabins {
			d.Cabins = append(d.Cabins, occupancyOn(cabin.ID, day, byCabin[cabin.ID]))
		}

		cal.Days = append(cal.Days, d)
	}

	return cal
}

func occupancyOn(cabinID uint, day time.Time, intervals []Interval) Occupancy {
	occ := Occupancy{CabinID: cabinID}

	for _, iv := range intervals {
		if !iv.Range.Contains(day) {
			continue
		}
		if occ.Occupied && occ.Reason == ReasonMaintenance {
			break
		}

		id := iv.SourceID
		occ.Occupied = true
		occ.Reason = iv.Reason
		occ.SourceID = &id
	}

	return occ
}

// Public remove os ids de reservas/manutenções (visão do cliente).
func (c *Calendar) Public() *Calendar {
	out := &Calendar{
		Year:   c.Year,
		Month:  c.Month,
		Cabins: c.Cabins,
		Days:   make([]Day, 0, len(c.Days)),
	}

	for _, d := range c.Days {
		pd := Day{Date: d.Date, Cabins: make([]Occupancy, 0, len(d.Cabins))}
		for _, occ := range d.Cabins {
			occ.SourceID = nil
			pd.Cabins = append(pd.Cabins, occ)
		}
		out.Days = append(out.Days, pd)
	}

	return out
}

// ===============================
// Cache
// ===============================

type CalendarCache interface {
	Get(ctx context.Context, year, month int) (*Calendar, bool)
	Set(ctx context.Context, cal *Calendar)
	// Invalidate descarta os meses tocados por r
	Invalidate(ctx context.Context, r dates.Range)
	InvalidateAll(ctx context.Context)
}

type NopCache struct{}

func (NopCache) Get(context.Context, int, int) (*Calendar, bool) { return nil, false }
func (NopCache) Set(context.Context, *Calendar)                  {}
func (NopCache) Invalidate(context.Context, dates.Range)         {}
func (NopCache) InvalidateAll(context.Context)                   {}
