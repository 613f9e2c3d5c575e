package reservation

import (
	"fmt"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

func staffRoles(roles ...actor.Role) notify.Recipients {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return notify.Roles(out...)
}

func attrs(r *models.Reservation) map[string]any {
	return map[string]any{
		"reservation_id": r.ID,
		"cabin_id":       r.CabinID,
		"start_date":     dates.Format(r.StartDate),
		"end_date":       dates.Format(r.EndDate),
	}
}

func createdMessage(r *models.Reservation) notify.Message {
	return notify.Message{
		Title: "Nova reserva",
		Body: fmt.Sprintf("Reserva #%d da cabana %s de %s a %s aguardando confirmação.",
			r.ID, r.Cabin.Name, dates.Format(r.StartDate), dates.Format(r.EndDate)),
		Severity:   notify.SeverityInfo,
		Attributes: attrs(r),
	}
}

func confirmedMessage(r *models.Reservation) notify.Message {
	return notify.Message{
		Title: "Reserva confirmada",
		Body: fmt.Sprintf("A reserva #%d de %s a %s foi confirmada.",
			r.ID, dates.Format(r.StartDate), dates.Format(r.EndDate)),
		Severity:   notify.SeveritySuccess,
		Attributes: attrs(r),
	}
}

func cancelledMessage(r *models.Reservation) notify.Message {
	return notify.Message{
		Title: "Reserva cancelada",
		Body: fmt.Sprintf("A reserva #%d de %s a %s foi cancelada.",
			r.ID, dates.Format(r.StartDate), dates.Format(r.EndDate)),
		Severity:   notify.SeverityWarning,
		Attributes: attrs(r),
	}
}

func paidStaffMessage(r *models.Reservation, p *models.Payment) notify.Message {
	a := attrs(r)
	a["payment_id"] = p.ID
	a["amount"] = p.Amount.StringFixed(2)
	a["method"] = p.Method

	return notify.Message{
		Title: "Pagamento recebido",
		Body: fmt.Sprintf("A reserva #%d foi paga: %s via %s. Início em %s.",
			r.ID, p.Amount.StringFixed(2), p.Method, dates.Format(r.StartDate)),
		Severity:   notify.SeveritySuccess,
		Attributes: a,
	}
}

func paidClientMessage(r *models.Reservation, p *models.Payment) notify.Message {
	a := attrs(r)
	a["payment_id"] = p.ID

	return notify.Message{
		Title: "Pagamento confirmado",
		Body: fmt.Sprintf("Seu pagamento de %s para a reserva #%d foi confirmado.",
			p.Amount.StringFixed(2), r.ID),
		Severity:   notify.SeveritySuccess,
		Attributes: a,
	}
}

func upcomingPendingMessage(r *models.Reservation, days int, sev notify.Severity) notify.Message {
	a := attrs(r)
	a["days_until_start"] = days

	return notify.Message{
		Title: "Reserva pendente próxima",
		Body: fmt.Sprintf("A reserva #%d começa em %d dias e ainda está pendente.",
			r.ID, days),
		Severity:   sev,
		Attributes: a,
	}
}
