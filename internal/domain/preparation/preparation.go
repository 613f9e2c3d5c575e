package preparation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
)

var DefaultItems = []string{
	"Limpeza geral",
	"Troca de roupa de cama e toalhas",
	"Reposição de insumos",
	"Inspeção final",
}

// New cria o checklist padrão de uma reserva recém-confirmada.
func New(reservationID uint) *models.Preparation {
	p := &models.Preparation{
		ReservationID: reservationID,
		Status:        string(StatusPending),
	}
	for _, name := range DefaultItems {
		p.Items = append(p.Items, models.PreparationItem{Name: name})
	}
	return p
}

// CompleteItem marca o item e, se for o último, deixa a cabana pronta.
func CompleteItem(p *models.Preparation, itemID uint, by uint, now time.Time) (*models.PreparationItem, error) {
	var item *models.PreparationItem
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			item = &p.Items[i]
			break
		}
	}
	if item == nil {
		return nil, httperr.ErrNotFound("preparation_item_not_found")
	}

	if !item.Done {
		item.Done = true
		item.DoneByID = &by
		item.DoneAt = &now
	}

	if allDone(p) && Status(p.Status) != StatusReady {
		p.Status = string(StatusReady)
		p.ReadyAt = &now
	}

	return item, nil
}

func allDone(p *models.Preparation) bool {
	for _, it := range p.Items {
		if !it.Done {
			return false
		}
	}
	return len(p.Items) > 0
}

type Repository interface {
	GetByReservation(ctx context.Context, reservationID uint) (*models.Preparation, error)
	Save(ctx context.Context, p *models.Preparation, item *models.PreparationItem) error
}
