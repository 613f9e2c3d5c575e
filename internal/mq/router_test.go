package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
)

func envelope(t *testing.T, typ CommandType, role string, payload any) []byte {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(CommandEnvelope{
		Type:    typ,
		Actor:   ActorClaims{UserID: 7, Role: role},
		Payload: raw,
	})
	require.NoError(t, err)
	return body
}

func TestRouter_DispatchesWithActor(t *testing.T) {
	r := NewCommandRouter(0)

	var got actor.Actor
	var payload ReservationRefPayload
	r.Register(CommandConfirmReservation, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		got = by
		p, err := decode[ReservationRefPayload](r.validate, raw)
		payload = p
		return map[string]string{"status": "confirmed"}, err
	})

	resp := r.Handle(context.Background(),
		envelope(t, CommandConfirmReservation, "admin", ReservationRefPayload{ReservationID: 3}))

	require.True(t, resp.OK)
	assert.Equal(t, string(CommandConfirmReservation), resp.Type)
	assert.JSONEq(t, `{"status":"confirmed"}`, string(resp.Payload))
	assert.Equal(t, actor.Actor{UserID: 7, Role: actor.RoleAdmin}, got)
	assert.Equal(t, uint(3), payload.ReservationID)
}

func TestRouter_InvalidJSON(t *testing.T) {
	resp := NewCommandRouter(0).Handle(context.Background(), []byte("{"))

	assert.False(t, resp.OK)
	assert.Equal(t, "invalid_request", resp.ErrorCode)
}

func TestRouter_InvalidActorRole(t *testing.T) {
	r := NewCommandRouter(0)
	r.Register(CommandCancelReservation, func(context.Context, actor.Actor, json.RawMessage) (any, error) {
		t.Fatal("handler must not run")
		return nil, nil
	})

	resp := r.Handle(context.Background(),
		envelope(t, CommandCancelReservation, "root", ReservationRefPayload{ReservationID: 1}))

	assert.False(t, resp.OK)
	assert.Equal(t, "invalid_request", resp.ErrorCode)
}

func TestRouter_UnknownCommand(t *testing.T) {
	resp := NewCommandRouter(0).Handle(context.Background(),
		envelope(t, CommandType("cabin.paint"), "admin", map[string]any{}))

	assert.False(t, resp.OK)
	assert.Equal(t, "unknown_command", resp.ErrorCode)
	assert.Equal(t, "cabin.paint", resp.Details["type"])
}

func TestRouter_PayloadValidation(t *testing.T) {
	r := NewCommandRouter(0)
	r.Register(CommandCreateLoan, func(ctx context.Context, by actor.Actor, raw json.RawMessage) (any, error) {
		_, err := decode[CreateLoanPayload](r.validate, raw)
		return nil, err
	})

	resp := r.Handle(context.Background(),
		envelope(t, CommandCreateLoan, "client", CreateLoanPayload{Quantity: 1, PaymentMethod: "bitcoin"}))

	assert.False(t, resp.OK)
	assert.Equal(t, "invalid_request", resp.ErrorCode)
	assert.ElementsMatch(t,
		[]string{"CreateLoanPayload.EquipmentID", "CreateLoanPayload.PaymentMethod"},
		resp.Details["fields"],
	)
}

func TestRouter_BusinessErrorKeepsCodeAndMeta(t *testing.T) {
	r := NewCommandRouter(0)
	r.Register(CommandCreateLoan, func(context.Context, actor.Actor, json.RawMessage) (any, error) {
		return nil, httperr.ErrConflict("insufficient_stock", map[string]any{"available": 1})
	})

	resp := r.Handle(context.Background(), envelope(t, CommandCreateLoan, "client", map[string]any{}))

	assert.False(t, resp.OK)
	assert.Equal(t, "insufficient_stock", resp.ErrorCode)
	assert.Equal(t, "Estoque insuficiente.", resp.Error)
	assert.Equal(t, 1, resp.Details["available"])
}

func TestRouter_UnexpectedErrorIsInternal(t *testing.T) {
	r := NewCommandRouter(0)
	r.Register(CommandReturnLoan, func(context.Context, actor.Actor, json.RawMessage) (any, error) {
		return nil, errors.New("connection reset")
	})

	resp := r.Handle(context.Background(), envelope(t, CommandReturnLoan, "worker", LoanRefPayload{LoanID: 1}))

	assert.False(t, resp.OK)
	assert.Equal(t, "internal_error", resp.ErrorCode)
}
