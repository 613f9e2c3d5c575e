// Package dates trata datas de calendário (sem hora nem fuso).
// Todas as datas são normalizadas para meia-noite UTC, o que torna
// comparações e subtrações exatas.
package dates

import (
	"errors"
	"regexp"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid_date")
	ErrInvalidRange = errors.New("invalid_date_range")

	layoutRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Parse aceita somente YYYY-MM-DD.
func Parse(s string) (time.Time, error) {
	if !layoutRe.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Day trunca t para a data de calendário no fuso de t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysBetween conta dias inteiros de a até b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// ===============================
// Range [Start, End)
// ===============================

type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	r := Range{Start: Day(start), End: Day(end)}
	if !r.Start.Before(r.End) {
		return Range{}, ErrInvalidRange
	}
	return r, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

// Overlaps: s1 < e2 && s2 < e1. Intervalos que apenas se tocam
// (checkout == checkin) não se sobrepõem.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.Start) && d.Before(r.End)
}

func (r Range) Nights() int {
	return DaysBetween(r.Start, r.End)
}

// Days lista cada data de calendário do intervalo.
func (r Range) Days() []time.Time {
	out := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func Month(year int, month time.Month) (Range, error) {
	if year < 1 || month < time.January || month > time.December {
		return Range{}, ErrInvalidDate
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
}
