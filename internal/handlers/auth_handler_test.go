package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
)

type stubEmails bool

func (s stubEmails) IsValid(context.Context, string) bool { return bool(s) }

func newAuthHandler(t *testing.T, validDomain bool) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1

	h := NewAuthHandler(db, cfg)
	h.emails = stubEmails(validDomain)
	return h, mock
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["error_code"].(string)
	return code
}

var newClient = RegisterRequest{
	Name:     " Ana Pérez ",
	Email:    "Ana@Example.com",
	Password: "segredo1",
}

func TestRegister_CreatesClient(t *testing.T) {
	h, mock := newAuthHandler(t, true)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	w := postJSON(authRouter(h), "/register", newClient)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "client", body.User["role"])
	assert.Equal(t, "ana@example.com", body.User["email"])
	assert.Equal(t, "Ana Pérez", body.User["name"])
	assert.NotEmpty(t, body.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Rejections(t *testing.T) {
	t.Run("domínio sem MX", func(t *testing.T) {
		h, mock := newAuthHandler(t, false)

		w := postJSON(authRouter(h), "/register", newClient)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_email_domain", errorCode(t, w))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("e-mail repetido", func(t *testing.T) {
		h, mock := newAuthHandler(t, true)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		w := postJSON(authRouter(h), "/register", newClient)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "email_already_exists", errorCode(t, w))
	})

	t.Run("senha curta", func(t *testing.T) {
		h, _ := newAuthHandler(t, true)

		w := postJSON(authRouter(h), "/register", RegisterRequest{Name: "x", Email: "x@example.com", Password: "1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", errorCode(t, w))
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(5, "Ana", "ana@example.com", string(hash), "client")
	}

	t.Run("ok", func(t *testing.T) {
		h, mock := newAuthHandler(t, true)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(userRows())

		w := postJSON(authRouter(h), "/login", LoginRequest{Email: "ANA@example.com", Password: "segredo1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("senha errada", func(t *testing.T) {
		h, mock := newAuthHandler(t, true)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows())

		w := postJSON(authRouter(h), "/login", LoginRequest{Email: "ana@example.com", Password: "outra"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", errorCode(t, w))
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		h, mock := newAuthHandler(t, true)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(gorm.ErrRecordNotFound)

		w := postJSON(authRouter(h), "/login", LoginRequest{Email: "ninguem@example.com", Password: "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
