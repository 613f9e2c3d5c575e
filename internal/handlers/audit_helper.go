package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
)

// writeAudit registra operações feitas direto pelo handler (cadastros).
// Os use cases auditam por conta própria.
func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID uint,
	meta any,
) {
	if d == nil {
		return
	}

	by := middleware.ActorFrom(c)

	var userID *uint
	if by.UserID != 0 {
		uid := by.UserID
		userID = &uid
	}

	d.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
		Metadata: meta,
	})
}
