package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type EquipmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEquipmentHandler(db *gorm.DB, audit *audit.Dispatcher) *EquipmentHandler {
	return &EquipmentHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateEquipmentRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	TotalStock  int             `json:"total_stock" binding:"min=0"`
	LoanPrice   decimal.Decimal `json:"loan_price"`
}

// RestockRequest soma (ou retira, se negativo) unidades do inventário.
type RestockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --------- Handlers ---------

func (h *EquipmentHandler) List(c *gin.Context) {
	var list []models.Equipment
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipment", "Erro ao listar equipamentos.")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.LoanPrice.IsNegative() {
		httperr.FromError(c, httperr.ErrBusiness("invalid_amount"))
		return
	}

	eq := models.Equipment{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		TotalStock:     req.TotalStock,
		AvailableStock: req.TotalStock,
		LoanPrice:      req.LoanPrice,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&eq).Error; err != nil {
		httperr.Internal(c, "failed_to_create_equipment", "Erro ao criar equipamento.")
		return
	}

	writeAudit(h.audit, c, "equipment_created", "equipment", eq.ID, gin.H{"total_stock": eq.TotalStock})
	c.JSON(http.StatusCreated, eq)
}

// Restock mexe em total e disponível juntos, sob lock, para manter
// disponível + emprestado = total.
func (h *EquipmentHandler) Restock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req RestockRequest
	if !bindJSON(c, &req) {
		return
	}

	var eq models.Equipment
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&eq, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return httperr.ErrNotFound("equipment_not_found")
			}
			return err
		}

		if eq.AvailableStock+req.Delta < 0 {
			return httperr.ErrConflict("insufficient_stock", map[string]any{
				"available": eq.AvailableStock,
				"requested": -req.Delta,
			})
		}

		eq.TotalStock += req.Delta
		eq.AvailableStock += req.Delta

		return tx.Model(&eq).Updates(map[string]any{
			"total_stock":     eq.TotalStock,
			"available_stock": eq.AvailableStock,
		}).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	writeAudit(h.audit, c, "equipment_restocked", "equipment", eq.ID, gin.H{"delta": req.Delta})
	c.JSON(http.StatusOK, eq)
}
