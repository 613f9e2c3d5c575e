package reservation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

// ======================================================
// Repositório em memória
// ======================================================

// memRepo serializa as transações num mutex, o mesmo efeito do lock
// da linha da cabana no Postgres.
type memRepo struct {
	txMu sync.Mutex

	cabins       map[uint]*models.Cabin
	users        map[uint]*models.User
	reservations map[uint]*models.Reservation
	maintenance  []availability.Interval
	preparations []*models.Preparation
	payments     map[uint]*models.Payment

	nextID    uint
	createErr error
	userErr   error
}

func newMemRepo() *memRepo {
	return &memRepo{
		cabins:       map[uint]*models.Cabin{},
		users:        map[uint]*models.User{},
		reservations: map[uint]*models.Reservation{},
		payments:     map[uint]*models.Payment{},
	}
}

func (m *memRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

func (m *memRepo) GetCabin(_ context.Context, id uint) (*models.Cabin, error) {
	c, ok := m.cabins[id]
	if !ok {
		return nil, httperr.ErrNotFound("cabin_not_found")
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) LockCabin(ctx context.Context, id uint) (*models.Cabin, error) {
	return m.GetCabin(ctx, id)
}

func (m *memRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) ListBlockingIntervals(
	_ context.Context,
	ref availability.ResourceRef,
	window dates.Range,
) ([]availability.Interval, error) {

	var out []availability.Interval

	if ref.Kind == availability.KindCabin {
		for _, r := range m.sortedReservations() {
			if r.CabinID != ref.ID || !isBlocking(r.Status) {
				continue
			}
			p := domain.Period(r)
			if p.Overlaps(window) {
				out = append(out, availability.Interval{
					Resource: ref,
					Reason:   availability.ReasonReserved,
					SourceID: r.ID,
					Range:    p,
				})
			}
		}
	}

	for _, iv := range m.maintenance {
		if iv.Resource == ref && iv.Range.Overlaps(window) {
			out = append(out, iv)
		}
	}

	return out, nil
}

func isBlocking(status string) bool {
	for _, s := range domain.BlockingStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateReservation(_ context.Context, r *models.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.reservations[r.ID] = &cp
	return nil
}

func (m *memRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, httperr.ErrNotFound("reservation_not_found")
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) LockReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.GetReservation(ctx, id)
}

func (m *memRepo) UpdateReservation(_ context.Context, r *models.Reservation) error {
	cp := *r
	m.reservations[r.ID] = &cp
	return nil
}

func (m *memRepo) ListReservations(_ context.Context, f domain.ListFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.sortedReservations() {
		if f.ClientID != nil && r.ClientID != *f.ClientID {
			continue
		}
		if f.CabinID != nil && r.CabinID != *f.CabinID {
			continue
		}
		if f.Status != nil && r.Status != string(*f.Status) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRepo) CompletePastConfirmed(_ context.Context, today, now time.Time) (int64, error) {
	var n int64
	for _, r := range m.reservations {
		if domain.IsPastDue(r, today) {
			r.Status = string(domain.StatusCompleted)
			r.CompletedAt = &now
			n++
		}
	}
	return n, nil
}

func (m *memRepo) ListPendingStartingOn(_ context.Context, day time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.sortedReservations() {
		if r.Status == string(domain.StatusPending) && dates.Day(r.StartDate).Equal(dates.Day(day)) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRepo) FindReservationPayment(_ context.Context, reservationID uint) (*models.Payment, error) {
	for _, p := range m.payments {
		if p.ReservationID != nil && *p.ReservationID == reservationID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) SavePayment(_ context.Context, p *models.Payment) error {
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	}
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *memRepo) CreatePreparation(_ context.Context, p *models.Preparation) error {
	m.preparations = append(m.preparations, p)
	return nil
}

func (m *memRepo) sortedReservations() []*models.Reservation {
	out := make([]*models.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ======================================================
// Notificações e cache
// ======================================================

type sent struct {
	to  notify.Recipients
	msg notify.Message
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (n *recordingNotifier) Notify(_ context.Context, to notify.Recipients, msg notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sent{to: to, msg: msg})
}

func (n *recordingNotifier) all() []sent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sent(nil), n.sent...)
}

type recordingCache struct {
	availability.NopCache

	mu          sync.Mutex
	invalidated []dates.Range
	all         int
}

func (c *recordingCache) Invalidate(_ context.Context, r dates.Range) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, r)
}

func (c *recordingCache) InvalidateAll(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all++
}
