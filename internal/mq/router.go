package mq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

type HandlerFunc func(ctx context.Context, by actor.Actor, payload json.RawMessage) (any, error)

// CommandRouter traduz envelopes em chamadas de use case. Não conhece
// AMQP: recebe bytes e devolve a resposta.
type CommandRouter struct {
	handlers map[CommandType]HandlerFunc
	validate *validator.Validate
	timeout  time.Duration
}

func NewCommandRouter(timeout time.Duration) *CommandRouter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CommandRouter{
		handlers: make(map[CommandType]HandlerFunc),
		validate: validator.New(),
		timeout:  timeout,
	}
}

func (r *CommandRouter) Register(t CommandType, h HandlerFunc) {
	r.handlers[t] = h
}

func (r *CommandRouter) Handle(parent context.Context, body []byte) Response {
	var env CommandEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errorResponse(httperr.ErrBusiness("invalid_request"))
	}
	if err := r.validate.Struct(env); err != nil {
		return errorResponse(validationError(err))
	}

	h, ok := r.handlers[env.Type]
	if !ok {
		logger.Warn("unknown command type", "type", env.Type)
		return errorResponse(httperr.ErrBusinessWith("unknown_command", map[string]any{
			"type": string(env.Type),
		}))
	}

	role, _ := actor.ParseRole(env.Actor.Role)
	by := actor.Actor{UserID: env.Actor.UserID, Role: role}

	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	result, err := h(ctx, by, env.Payload)
	if err != nil {
		if _, ok := httperr.AsBusiness(err); !ok {
			logger.Error("command failed", "type", env.Type, "error", err)
		}
		return errorResponse(err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		logger.Error("failed to marshal command result", "type", env.Type, "error", err)
		return errorResponse(err)
	}

	return Response{
		OK:      true,
		Type:    string(env.Type),
		Payload: raw,
	}
}

// decode lê e valida o payload de um comando.
func decode[T any](v *validator.Validate, raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, httperr.ErrBusiness("invalid_request")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, httperr.ErrBusiness("invalid_request")
	}
	if err := v.Struct(out); err != nil {
		return out, validationError(err)
	}
	return out, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.ErrBusiness("invalid_request")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
	}
	return httperr.ErrBusinessWith("invalid_request", map[string]any{
		"fields": fields,
	})
}

func errorResponse(err error) Response {
	if be, ok := httperr.AsBusiness(err); ok {
		return Response{
			OK:        false,
			Type:      "Error",
			ErrorCode: be.Code,
			Error:     httperr.Message(be.Code),
			Details:   be.Meta,
		}
	}
	return Response{
		OK:        false,
		Type:      "Error",
		ErrorCode: "internal_error",
		Error:     "Erro interno.",
	}
}
