package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	by := middleware.ActorFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, by.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}
