package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func auditRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/audit-logs", NewAuditLogsHandler(db).List)
	return r, mock
}

func TestAuditLogs_FiltersAndPaging(t *testing.T) {
	r, mock := auditRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1 AND entity_id = \$2`).
		WithArgs("reservation_confirmed", 9, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE .* ORDER BY created_at DESC, id DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity", "created_at"}).
			AddRow(12, "reservation_confirmed", "reservation", time.Now()))

	w := get(r, "/audit-logs?action=reservation_confirmed&entity_id=9&from=2026-03-01&to=2026-03-31&page=2&limit=2")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body auditPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 2, body.Limit)
	assert.Equal(t, int64(3), body.Total)
	require.Len(t, body.Logs, 1)
	assert.Equal(t, uint(12), body.Logs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogs_InvalidFilters(t *testing.T) {
	r, mock := auditRouter(t)

	w := get(r, "/audit-logs?user_id=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/audit-logs?from=2026-03-31&to=2026-03-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date_range", errorCode(t, w))

	assert.NoError(t, mock.ExpectationsWereMet())
}
