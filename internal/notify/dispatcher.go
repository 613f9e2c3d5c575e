package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

const queueSize = 100

type job struct {
	ctx context.Context
	to  Recipients
	msg Message
}

type guardedSink struct {
	sink Sink
	cb   *gobreaker.CircuitBreaker
}

type Dispatcher struct {
	dir   Directory
	sinks []guardedSink
	queue chan job

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(dir Directory, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		dir:   dir,
		queue: make(chan job, queueSize),
		done:  make(chan struct{}),
	}

	for _, s := range sinks {
		d.sinks = append(d.sinks, guardedSink{sink: s, cb: CircuitBreaker(s.Name())})
	}

	go d.worker()
	return d
}

// CircuitBreaker abre após 3 falhas seguidas e tenta de novo em 10s.
func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("notification circuit breaker changed state",
					"sink", name,
					"from", from.String(),
					"to", to.String(),
				)
			},
		},
	)
}

func (d *Dispatcher) Notify(ctx context.Context, to Recipients, msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Warn("notification dispatcher closed, dropping message", "title", msg.Title)
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), to: to, msg: msg}:
	default:
		// fila cheia → descarta (nunca quebrar a operação principal)
		logger.Warn("notification queue full, dropping message", "title", msg.Title)
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for j := range d.queue {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification delivery panicked", "panic", r)
		}
	}()

	userIDs := d.resolve(j.ctx, j.to)

	for _, gs := range d.sinks {
		for _, uid := range userIDs {
			_, err := gs.cb.Execute(func() (interface{}, error) {
				return nil, gs.sink.Deliver(j.ctx, uid, j.msg)
			})
			if err != nil {
				logger.Warn("notification delivery failed",
					"sink", gs.sink.Name(),
					"user_id", uid,
					"title", j.msg.Title,
					"error", err,
				)
			}
		}
	}
}

func (d *Dispatcher) resolve(ctx context.Context, to Recipients) []uint {
	seen := make(map[uint]struct{}, len(to.UserIDs))
	out := make([]uint, 0, len(to.UserIDs))

	add := func(id uint) {
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range to.UserIDs {
		add(id)
	}

	if len(to.Roles) > 0 && d.dir != nil {
		ids, err := d.dir.UserIDsByRole(ctx, to.Roles...)
		if err != nil {
			logger.Warn("failed to resolve notification roles", "roles", to.Roles, "error", err)
		}
		for _, id := range ids {
			add(id)
		}
	}

	return out
}
