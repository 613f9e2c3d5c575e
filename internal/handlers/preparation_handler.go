package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	ucPreparation "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/preparation"
)

type PreparationHandler struct {
	getUC      *ucPreparation.GetPreparation
	completeUC *ucPreparation.CompleteItem
}

func NewPreparationHandler(
	getUC *ucPreparation.GetPreparation,
	completeUC *ucPreparation.CompleteItem,
) *PreparationHandler {
	return &PreparationHandler{getUC: getUC, completeUC: completeUC}
}

func (h *PreparationHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PreparationHandler) CompleteItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}

	p, err := h.completeUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id, itemID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}
