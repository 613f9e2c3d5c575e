package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind separa erros de negócio recuperáveis (validação / conflito de
// estado) dos demais. Qualquer erro que não seja BusinessError é infra.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindForbidden
)

type BusinessError struct {
	Code string
	Kind Kind
	Meta map[string]any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Kind: KindValidation}
}

func ErrBusinessWith(code string, meta map[string]any) error {
	return BusinessError{Code: code, Kind: KindValidation, Meta: meta}
}

// ErrConflict reporta uma transição inválida junto com o estado atual
// (ex.: {"current_status": "cancelled"} ou {"available": 1}).
func ErrConflict(code string, meta map[string]any) error {
	return BusinessError{Code: code, Kind: KindConflict, Meta: meta}
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrForbidden(code string) error {
	return BusinessError{Code: code, Kind: KindForbidden}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsNotFound(err error) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == KindNotFound
}

// exclusion_violation
const pgExclusionViolation = "23P01"

// IsExclusionConflict detecta a constraint EXCLUDE de reservas.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
