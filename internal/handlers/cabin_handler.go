package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// estado físico inicial; "reservada" nunca é gravado, vem das datas
const cabinAvailable = "available"

type CabinHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	// o calendário mensal lista as cabanas pelo nome
	cache availability.CalendarCache
}

func NewCabinHandler(db *gorm.DB, audit *audit.Dispatcher, cache availability.CalendarCache) *CabinHandler {
	return &CabinHandler{db: db, audit: audit, cache: cache}
}

// --------- Requests ---------

type CreateCabinRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Capacity     int             `json:"capacity" binding:"required,min=1"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
}

type UpdateCabinRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Capacity     *int             `json:"capacity,omitempty"`
	NightlyPrice *decimal.Decimal `json:"nightly_price,omitempty"`
}

// --------- Handlers ---------

func (h *CabinHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var cabins []models.Cabin
	if err := q.Order("id ASC").Find(&cabins).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cabins", "Erro ao listar cabanas.")
		return
	}

	c.JSON(http.StatusOK, cabins)
}

func (h *CabinHandler) Create(c *gin.Context) {
	var req CreateCabinRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.NightlyPrice.IsNegative() {
		httperr.FromError(c, httperr.ErrBusiness("invalid_amount"))
		return
	}

	cabin := models.Cabin{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Capacity:     req.Capacity,
		NightlyPrice: req.NightlyPrice,
		Status:       cabinAvailable,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&cabin).Error; err != nil {
		httperr.Internal(c, "failed_to_create_cabin", "Erro ao criar cabana.")
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	writeAudit(h.audit, c, "cabin_created", "cabin", cabin.ID, gin.H{"name": cabin.Name})
	c.JSON(http.StatusCreated, cabin)
}

func (h *CabinHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var cabin models.Cabin
	if err := h.db.WithContext(c.Request.Context()).First(&cabin, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "cabin_not_found", httperr.Message("cabin_not_found"))
			return
		}
		httperr.Internal(c, "failed_to_get_cabin", "Erro ao buscar cabana.")
		return
	}

	var req UpdateCabinRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Name != nil {
		cabin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		cabin.Description = *req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			httperr.FromError(c, httperr.ErrBusiness("invalid_request"))
			return
		}
		cabin.Capacity = *req.Capacity
	}
	if req.NightlyPrice != nil {
		if req.NightlyPrice.IsNegative() {
			httperr.FromError(c, httperr.ErrBusiness("invalid_amount"))
			return
		}
		cabin.NightlyPrice = *req.NightlyPrice
	}

	// status físico só muda pelo ciclo de manutenção
	if err := h.db.WithContext(c.Request.Context()).
		Model(&cabin).
		Select("name", "description", "capacity", "nightly_price").
		Updates(&cabin).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cabin", "Erro ao atualizar cabana.")
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	writeAudit(h.audit, c, "cabin_updated", "cabin", cabin.ID, nil)
	c.JSON(http.StatusOK, cabin)
}
