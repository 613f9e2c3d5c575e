package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// ======================================================
// Repositório em memória (com rollback)
// ======================================================

type memRepo struct {
	users     map[uint]models.User
	equipment map[uint]models.Equipment
	loans     map[uint]models.EquipmentLoan
	payments  []models.Payment

	nextID     uint
	paymentErr error
	userErr    error
}

func newMemRepo() *memRepo {
	return &memRepo{
		users: map[uint]models.User{
			1:  {ID: 1, Role: string(actor.RoleAdmin)},
			10: {ID: 10, Role: string(actor.RoleClient)},
			11: {ID: 11, Role: string(actor.RoleClient)},
		},
		equipment: map[uint]models.Equipment{
			3: {ID: 3, Name: "Kayak", TotalStock: 3, AvailableStock: 3, LoanPrice: decimal.NewFromInt(15000)},
			4: {ID: 4, Name: "Mapa", TotalStock: 5, AvailableStock: 5},
		},
		loans: map[uint]models.EquipmentLoan{},
	}
}

func (m *memRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	eq := make(map[uint]models.Equipment, len(m.equipment))
	for k, v := range m.equipment {
		eq[k] = v
	}
	loans := make(map[uint]models.EquipmentLoan, len(m.loans))
	for k, v := range m.loans {
		loans[k] = v
	}
	payments := len(m.payments)

	if err := fn(m); err != nil {
		m.equipment, m.loans, m.payments = eq, loans, m.payments[:payments]
		return err
	}
	return nil
}

func (m *memRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return &u, nil
}

func (m *memRepo) GetEquipment(_ context.Context, id uint) (*models.Equipment, error) {
	eq, ok := m.equipment[id]
	if !ok {
		return nil, httperr.ErrNotFound("equipment_not_found")
	}
	return &eq, nil
}

func (m *memRepo) LockEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	return m.GetEquipment(ctx, id)
}

func (m *memRepo) UpdateEquipmentStock(_ context.Context, eq *models.Equipment) error {
	m.equipment[eq.ID] = *eq
	return nil
}

func (m *memRepo) CreateLoan(_ context.Context, l *models.EquipmentLoan) error {
	m.nextID++
	l.ID = m.nextID
	m.loans[l.ID] = *l
	return nil
}

func (m *memRepo) GetLoan(_ context.Context, id uint) (*models.EquipmentLoan, error) {
	l, ok := m.loans[id]
	if !ok {
		return nil, httperr.ErrNotFound("loan_not_found")
	}
	return &l, nil
}

func (m *memRepo) LockLoan(ctx context.Context, id uint) (*models.EquipmentLoan, error) {
	return m.GetLoan(ctx, id)
}

func (m *memRepo) UpdateLoan(_ context.Context, l *models.EquipmentLoan) error {
	m.loans[l.ID] = *l
	return nil
}

func (m *memRepo) ListLoans(_ context.Context, f domain.ListFilter) ([]models.EquipmentLoan, error) {
	var out []models.EquipmentLoan
	for id := uint(1); id <= m.nextID; id++ {
		l, ok := m.loans[id]
		if !ok {
			continue
		}
		if f.ClientID != nil && l.ClientID != *f.ClientID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *memRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	if m.paymentErr != nil {
		return m.paymentErr
	}
	m.payments = append(m.payments, *p)
	return nil
}

// ======================================================
// Fixture
// ======================================================

var (
	admin   = actor.Actor{UserID: 1, Role: actor.RoleAdmin}
	manager = actor.Actor{UserID: 2, Role: actor.RoleManager}
	worker  = actor.Actor{UserID: 3, Role: actor.RoleWorker}
	client  = actor.Actor{UserID: 10, Role: actor.RoleClient}
	other   = actor.Actor{UserID: 11, Role: actor.RoleClient}
)

type fixture struct {
	repo   *memRepo
	create *CreateLoan
	ret    *ReturnLoan
	lost   *MarkLoanLost
	list   *ListLoans
}

func newFixture() *fixture {
	repo := newMemRepo()
	clock := timezone.FixedClock{At: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	ad := audit.NewDispatcher(audit.Discard)
	n := notify.Discard{}

	return &fixture{
		repo:   repo,
		create: NewCreateLoan(repo, n, ad, clock),
		ret:    NewReturnLoan(repo, n, ad, clock),
		lost:   NewMarkLoanLost(repo, n, ad, clock),
		list:   NewListLoans(repo),
	}
}

func (f *fixture) stock(id uint) (available, total int) {
	eq := f.repo.equipment[id]
	return eq.AvailableStock, eq.TotalStock
}

// ======================================================
// Tests
// ======================================================

func TestLoan_StockLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l, err := f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), l.Status)

	available, _ := f.stock(3)
	assert.Equal(t, 1, available)

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: other, EquipmentID: 3, Quantity: 2})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "insufficient_stock", be.Code)
	assert.Equal(t, httperr.KindConflict, be.Kind)
	assert.Equal(t, 1, be.Meta["available"])

	available, _ = f.stock(3)
	assert.Equal(t, 1, available, "rejeição não mexe no estoque")

	returned, err := f.ret.Execute(ctx, worker, l.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusReturned), returned.Status)

	available, total := f.stock(3)
	assert.Equal(t, 3, available)
	assert.Equal(t, 3, total)

	_, err = f.ret.Execute(ctx, worker, l.ID)
	be, _ = httperr.AsBusiness(err)
	assert.Equal(t, "invalid_state", be.Code)
	assert.Equal(t, "returned", be.Meta["current_status"])
}

func TestLoan_PaymentRecorded(t *testing.T) {
	f := newFixture()

	l, err := f.create.Execute(context.Background(), CreateLoanInput{
		Actor: manager, ClientID: 10, EquipmentID: 3, Quantity: 2, PaymentMethod: "cash",
	})
	require.NoError(t, err)

	require.Len(t, f.repo.payments, 1)
	p := f.repo.payments[0]
	assert.Equal(t, l.ID, *p.EquipmentLoanID)
	assert.Equal(t, "cash", p.Method)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(30000)))
}

func TestLoan_DefaultMethodAndFreeEquipment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, f.repo.payments, 1)
	assert.Equal(t, "transfer", f.repo.payments[0].Method)

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 4, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, f.repo.payments, 1, "item gratuito não gera pagamento")
}

func TestLoan_PaymentFailureRollsBackStock(t *testing.T) {
	f := newFixture()
	f.repo.paymentErr = errors.New("insert failed")

	_, err := f.create.Execute(context.Background(), CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 2})
	require.Error(t, err)

	available, _ := f.stock(3)
	assert.Equal(t, 3, available)
	assert.Empty(t, f.repo.loans)
}

func TestLoan_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 0})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 1, PaymentMethod: "pix"})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 99, Quantity: 1})
	assert.True(t, httperr.IsBusiness(err, "equipment_not_found"))

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: client, ClientID: 11, EquipmentID: 3, Quantity: 1})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: admin, ClientID: 1, EquipmentID: 3, Quantity: 1})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}

func TestLoan_UserLookupFailureIsNotClientNotFound(t *testing.T) {
	f := newFixture()
	f.repo.userErr = errors.New("conn reset")

	_, err := f.create.Execute(context.Background(), CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 1})
	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, "client_not_found"))
	assert.EqualError(t, err, "conn reset")

	available, _ := f.stock(3)
	assert.Equal(t, 3, available)
}

func TestLoan_MarkLost(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l, err := f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 1})
	require.NoError(t, err)

	_, err = f.lost.Execute(ctx, worker, l.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	lost, err := f.lost.Execute(ctx, manager, l.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusLost), lost.Status)

	available, total := f.stock(3)
	assert.Equal(t, 2, available)
	assert.Equal(t, 2, total)

	_, err = f.ret.Execute(ctx, admin, l.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestLoan_ReturnRequiresStaff(t *testing.T) {
	f := newFixture()

	l, err := f.create.Execute(context.Background(), CreateLoanInput{Actor: client, EquipmentID: 3, Quantity: 1})
	require.NoError(t, err)

	_, err = f.ret.Execute(context.Background(), client, l.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestListLoans_ClientSeesOwn(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateLoanInput{Actor: client, EquipmentID: 4, Quantity: 1})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateLoanInput{Actor: other, EquipmentID: 4, Quantity: 1})
	require.NoError(t, err)

	mine, err := f.list.Execute(ctx, client, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(10), mine[0].ClientID)

	all, err := f.list.Execute(ctx, worker, domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
