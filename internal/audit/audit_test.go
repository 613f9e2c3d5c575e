package audit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type chanSink chan Event

func (s chanSink) Log(_ context.Context, ev Event) error {
	s <- ev
	return nil
}

func TestDispatcher_DeliversAsync(t *testing.T) {
	sink := make(chanSink, 1)
	d := NewDispatcher(sink)

	id := uint(4)
	d.Dispatch(Event{Action: "loan_returned", Entity: "equipment_loan", EntityID: &id})

	select {
	case ev := <-sink:
		assert.Equal(t, "loan_returned", ev.Action)
		assert.Equal(t, uint(4), *ev.EntityID)
	case <-time.After(time.Second):
		t.Fatal("evento não entregue")
	}
}

func TestLogger_WritesMetadataAsJSON(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WithArgs(sqlmock.AnyArg(), "reservation_created", "reservation", sqlmock.AnyArg(), `{"cabin_id":1}`, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id := uint(7)
	err = New(db).Log(context.Background(), Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &id,
		Metadata: map[string]any{"cabin_id": 1},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
