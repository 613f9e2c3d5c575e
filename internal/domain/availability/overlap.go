package availability

import "github.com/BruksfildServices01/cabin-scheduler/internal/dates"

// FirstConflict devolve o primeiro intervalo que se sobrepõe a r.
func FirstConflict(intervals []Interval, r dates.Range) (Interval, bool) {
	for _, iv := range intervals {
		if iv.Range.Overlaps(r) {
			return iv, true
		}
	}
	return Interval{}, false
}
