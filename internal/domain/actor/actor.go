package actor

import "github.com/BruksfildServices01/cabin-scheduler/internal/httperr"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager" // encarregado
	RoleWorker  Role = "worker"
	RoleClient  Role = "client"

	// jobs agendados
	RoleSystem Role = "system"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleWorker, RoleClient, RoleSystem:
		return r, true
	}
	return "", false
}

// Actor é quem executa a operação. Cada transporte (HTTP, fila, testes)
// monta o seu e passa explicitamente para os use cases.
type Actor struct {
	UserID uint
	Role   Role
}

func System() Actor {
	return Actor{Role: RoleSystem}
}

func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

func (a Actor) IsStaff() bool {
	return a.Is(RoleAdmin, RoleManager)
}

func (a Actor) Owns(userID uint) bool {
	return a.UserID != 0 && a.UserID == userID
}

func Require(a Actor, roles ...Role) error {
	if !a.Is(roles...) {
		return httperr.ErrForbidden("forbidden")
	}
	return nil
}
