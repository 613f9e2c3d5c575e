package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	name string
	err  error

	mu        sync.Mutex
	calls     int
	delivered []uint
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, userID uint, _ Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, userID)
	return nil
}

type staticDirectory map[string][]uint

func (d staticDirectory) UserIDsByRole(_ context.Context, roles ...string) ([]uint, error) {
	var out []uint
	for _, r := range roles {
		out = append(out, d[r]...)
	}
	return out, nil
}

func TestDispatcher_ResolvesRolesAndDeduplicates(t *testing.T) {
	sink := &recordingSink{name: "memory"}
	d := NewDispatcher(staticDirectory{"admin": {1, 2}, "manager": {2, 3}}, sink)

	d.Notify(context.Background(), Users(0, 1, 10).And(Roles("admin", "manager")), Message{Title: "x"})
	d.Close()

	assert.ElementsMatch(t, []uint{1, 2, 3, 10}, sink.delivered)
}

func TestDispatcher_FailingSinkDoesNotAffectOthers(t *testing.T) {
	broken := &recordingSink{name: "broken", err: errors.New("broker down")}
	healthy := &recordingSink{name: "healthy"}
	d := NewDispatcher(nil, broken, healthy)

	for i := 0; i < 5; i++ {
		d.Notify(context.Background(), Users(7), Message{Title: "x"})
	}
	d.Close()

	assert.Len(t, healthy.delivered, 5)
	// circuito abre após a terceira falha seguida
	assert.Equal(t, 3, broken.calls)
}

func TestDispatcher_NotifyAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{name: "memory"}
	d := NewDispatcher(nil, sink)
	d.Close()

	assert.NotPanics(t, func() {
		d.Notify(context.Background(), Users(1), Message{Title: "late"})
	})
	assert.Empty(t, sink.delivered)

	// Close é idempotente
	d.Close()
}
