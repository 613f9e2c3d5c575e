package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List (admin): filtros action, entity, entity_id, user_id, from, to
// (datas, fim exclusivo) e paginação page/limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	entityID, ok := optionalUint(c, "entity_id")
	if !ok {
		return
	}
	if entityID != nil {
		q = q.Where("entity_id = ?", *entityID)
	}

	userID, ok := optionalUint(c, "user_id")
	if !ok {
		return
	}
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		window, err := dates.ParseRange(from, to)
		if err != nil {
			httperr.FromError(c, httperr.ErrBusiness("invalid_date_range"))
			return
		}
		q = q.Where("created_at >= ? AND created_at < ?", window.Start, window.End)
	}

	out := auditPage{Page: page, Limit: limit, Logs: []models.AuditLog{}}

	if err := q.Count(&out.Total).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out.Logs).Error; err != nil {

		httperr.FromError(c, err)
		return
	}

	c.JSON(200, out)
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(auditDefaultLimit)))
	if limit <= 0 || limit > auditMaxLimit {
		limit = auditDefaultLimit
	}
	return page, limit
}
