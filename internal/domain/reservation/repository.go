package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListFilter struct {
	ClientID *uint
	CabinID  *uint
	Status   *Status
	// reservas que tocam a janela
	Window *dates.Range
}

type Repository interface {
	// Transaction executa fn com um repositório ligado à transação.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Cabin / User --------
	GetCabin(ctx context.Context, id uint) (*models.Cabin, error)

	// LockCabin trava a linha da cabana (SELECT ... FOR UPDATE) até o
	// fim da transação; serializa verificação + inserção.
	LockCabin(ctx context.Context, id uint) (*models.Cabin, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Overlap --------
	availability.IntervalSource

	// -------- Reservation --------
	CreateReservation(ctx context.Context, r *models.Reservation) error
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	LockReservation(ctx context.Context, id uint) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, r *models.Reservation) error
	ListReservations(ctx context.Context, f ListFilter) ([]models.Reservation, error)

	// CompletePastConfirmed promove confirmed → completed quando
	// end_date < today. Devolve quantas linhas mudaram.
	CompletePastConfirmed(ctx context.Context, today time.Time, now time.Time) (int64, error)

	ListPendingStartingOn(ctx context.Context, day time.Time) ([]models.Reservation, error)

	// -------- Payment --------
	// FindReservationPayment devolve (nil, nil) quando ainda não há
	// pagamento para a reserva.
	FindReservationPayment(ctx context.Context, reservationID uint) (*models.Payment, error)
	SavePayment(ctx context.Context, p *models.Payment) error

	// -------- Preparation --------
	CreatePreparation(ctx context.Context, p *models.Preparation) error
}
