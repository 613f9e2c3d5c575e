package audit

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			logger.Warn("audit error", "action", ev.Action, "error", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Discard é usado quando não há onde gravar (testes, ferramentas).
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(context.Context, Event) error { return nil }
