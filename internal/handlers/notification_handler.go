package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// NotificationHandler lê a caixa de entrada gravada pelo StoreSink.
type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// ListMine: ?unread=true para só as não lidas.
func (h *NotificationHandler) ListMine(c *gin.Context) {
	by := middleware.ActorFrom(c)

	q := h.db.WithContext(c.Request.Context()).Where("user_id = ?", by.UserID)
	if c.Query("unread") == "true" {
		q = q.Where("read = ?", false)
	}

	var list []models.Notification
	if err := q.Order("created_at DESC").Limit(200).Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	by := middleware.ActorFrom(c)
	now := time.Now()

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, by.UserID).
		Updates(map[string]any{"read": true, "read_at": now})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Erro ao atualizar notificação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", httperr.Message("notification_not_found"))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	by := middleware.ActorFrom(c)

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", by.UserID, false).
		Updates(map[string]any{"read": true, "read_at": time.Now()})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_notification", "Erro ao atualizar notificação.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": res.RowsAffected})
}
