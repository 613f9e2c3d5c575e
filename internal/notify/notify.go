package notify

import "context"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Message struct {
	Title      string
	Body       string
	Severity   Severity
	Attributes map[string]any
}

// Recipients junta usuários explícitos e papéis (resolvidos no envio).
type Recipients struct {
	UserIDs []uint
	Roles   []string
}

func Users(ids ...uint) Recipients {
	return Recipients{UserIDs: ids}
}

func Roles(roles ...string) Recipients {
	return Recipients{Roles: roles}
}

func (r Recipients) And(o Recipients) Recipients {
	return Recipients{
		UserIDs: append(append([]uint{}, r.UserIDs...), o.UserIDs...),
		Roles:   append(append([]string{}, r.Roles...), o.Roles...),
	}
}

// Notifier é fire-and-forget: não devolve erro e nunca bloqueia a
// operação principal.
type Notifier interface {
	Notify(ctx context.Context, to Recipients, msg Message)
}

// Sink entrega uma mensagem para um usuário (tabela, fila, ...).
type Sink interface {
	Name() string
	Deliver(ctx context.Context, userID uint, msg Message) error
}

type Directory interface {
	UserIDsByRole(ctx context.Context, roles ...string) ([]uint, error)
}

type Discard struct{}

func (Discard) Notify(context.Context, Recipients, Message) {}
