package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCompleter struct {
	calls int
	err   error
	panic bool
}

func (f *fakeCompleter) Execute(context.Context) (int64, error) {
	f.calls++
	if f.panic {
		panic("boom")
	}
	return 2, f.err
}

type fakeAlerter struct{ calls int }

func (f *fakeAlerter) Execute(context.Context) (int, error) {
	f.calls++
	return 1, nil
}

func TestJobRunner_RunAll(t *testing.T) {
	c, a := &fakeCompleter{}, &fakeAlerter{}
	NewJobRunner(c, a).RunAll()

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, 1, a.calls)
}

func TestJobRunner_PanicDoesNotStopOtherJobs(t *testing.T) {
	c, a := &fakeCompleter{panic: true}, &fakeAlerter{}

	assert.NotPanics(t, func() { NewJobRunner(c, a).RunAll() })
	assert.Equal(t, 1, a.calls)
}

func TestJobRunner_ErrorIsLogged(t *testing.T) {
	c := &fakeCompleter{err: errors.New("db down")}

	assert.NotPanics(t, func() { NewJobRunner(c, &fakeAlerter{}).CompletePastReservations() })
	assert.Equal(t, 1, c.calls)
}
