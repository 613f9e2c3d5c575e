package mq

import "encoding/json"

// Tipo de comando recebido via RabbitMQ
type CommandType string

const (
	CommandCreateReservation  CommandType = "reservation.create"
	CommandConfirmReservation CommandType = "reservation.confirm"
	CommandCancelReservation  CommandType = "reservation.cancel"

	CommandCreateLoan CommandType = "loan.create"
	CommandReturnLoan CommandType = "loan.return"

	CommandCreateMaintenance   CommandType = "maintenance.create"
	CommandCompleteMaintenance CommandType = "maintenance.complete"
)

// Quem publica o comando declara em nome de quem age; a fila é interna.
type ActorClaims struct {
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin manager worker client"`
}

// Envelope genérico de comando
type CommandEnvelope struct {
	Type    CommandType     `json:"type" validate:"required"`
	Actor   ActorClaims     `json:"actor"`
	Payload json.RawMessage `json:"payload"`
}

// -------- Payloads --------

type CreateReservationPayload struct {
	ClientID  uint   `json:"client_id"`
	CabinID   uint   `json:"cabin_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type ReservationRefPayload struct {
	ReservationID uint `json:"reservation_id" validate:"required"`
}

type CreateLoanPayload struct {
	ClientID      uint   `json:"client_id"`
	EquipmentID   uint   `json:"equipment_id" validate:"required"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash transfer card"`
}

type LoanRefPayload struct {
	LoanID uint `json:"loan_id" validate:"required"`
}

type CreateMaintenancePayload struct {
	CabinID       *uint  `json:"cabin_id"`
	EquipmentID   *uint  `json:"equipment_id"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Priority      string `json:"priority"`
	Description   string `json:"description" validate:"max=2000"`
	ExternalStaff string `json:"external_staff"`
	WorkerID      *uint  `json:"worker_id"`
}

type MaintenanceRefPayload struct {
	MaintenanceID uint `json:"maintenance_id" validate:"required"`
}

// -------- Resposta --------

type Response struct {
	OK        bool            `json:"ok"`
	Type      string          `json:"type"`
	ErrorCode string          `json:"error_code,omitempty"`
	Error     string          `json:"error,omitempty"`
	Details   map[string]any  `json:"details,omitempty"`
	Payload   json.RawMessage `json:"data,omitempty"`
}
