package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/validators"
)

// emailChecker valida o domínio do e-mail no cadastro (DNS).
type emailChecker interface {
	IsValid(ctx context.Context, email string) bool
}

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	emails emailChecker
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		emails: validators.NewEmailDomainValidator(nil),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateStaffRequest: admin cadastra encarregados, trabalhadores e outros admins.
type CreateStaffRequest struct {
	RegisterRequest
	Role string `json:"role" binding:"required,oneof=admin manager worker"`
}

// --------- Handlers ---------

// Register é o auto-cadastro público: sempre cria um cliente.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, ok := h.createUser(c, req, actor.RoleClient)
	if !ok {
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userView(user),
		"token": token,
	})
}

func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	user, ok := h.createUser(c, req.RegisterRequest, actor.Role(req.Role))
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": userView(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userView(&user),
		"token": token,
	})
}

func (h *AuthHandler) createUser(c *gin.Context, req RegisterRequest, role actor.Role) (*models.User, bool) {
	email := validators.NormalizeEmail(req.Email)

	if !h.emails.IsValid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", httperr.Message("invalid_email_domain"))
		return nil, false
	}

	var count int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count)
	if count > 0 {
		httperr.FromError(c, httperr.ErrConflict("email_already_exists", nil))
		return nil, false
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return nil, false
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         string(role),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return nil, false
	}

	return &user, true
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	ttl := time.Duration(h.config.JWT.TTLHours) * time.Hour

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWT.Secret))
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"phone": u.Phone,
		"role":  u.Role,
	}
}
