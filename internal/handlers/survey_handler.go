package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	ucSurvey "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/survey"
)

type SurveyHandler struct {
	submitUC *ucSurvey.SubmitSurvey
}

func NewSurveyHandler(submitUC *ucSurvey.SubmitSurvey) *SurveyHandler {
	return &SurveyHandler{submitUC: submitUC}
}

type SubmitSurveyRequest struct {
	General        int    `json:"general" binding:"required"`
	Cleanliness    *int   `json:"cleanliness"`
	Service        *int   `json:"service"`
	Value          *int   `json:"value"`
	Comments       string `json:"comments"`
	WouldRecommend bool   `json:"would_recommend"`
}

func (h *SurveyHandler) Submit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SubmitSurveyRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.submitUC.Execute(c.Request.Context(), ucSurvey.SubmitSurveyInput{
		Actor:          middleware.ActorFrom(c),
		ReservationID:  id,
		General:        req.General,
		Cleanliness:    req.Cleanliness,
		Service:        req.Service,
		Value:          req.Value,
		Comments:       req.Comments,
		WouldRecommend: req.WouldRecommend,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, s)
}
