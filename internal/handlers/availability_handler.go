package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	checkUC *ucAvailability.CheckAvailability
	monthUC *ucAvailability.MonthAvailability
	clock   timezone.Clock
}

func NewAvailabilityHandler(
	checkUC *ucAvailability.CheckAvailability,
	monthUC *ucAvailability.MonthAvailability,
	clock timezone.Clock,
) *AvailabilityHandler {
	return &AvailabilityHandler{checkUC: checkUC, monthUC: monthUC, clock: clock}
}

// Check: GET ?cabin_id=&start_date=&end_date=
func (h *AvailabilityHandler) Check(c *gin.Context) {
	cabinID, err := strconv.ParseUint(c.Query("cabin_id"), 10, 64)
	if err != nil || cabinID == 0 {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	res, err := h.checkUC.Execute(
		c.Request.Context(),
		uint(cabinID),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// PublicCalendar devolve só ocupado/livre, sem ids.
func (h *AvailabilityHandler) PublicCalendar(c *gin.Context) {
	h.calendar(c, false)
}

// StaffCalendar inclui o id da reserva/manutenção de cada dia ocupado.
func (h *AvailabilityHandler) StaffCalendar(c *gin.Context) {
	h.calendar(c, true)
}

func (h *AvailabilityHandler) calendar(c *gin.Context, withIDs bool) {
	now := h.clock.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_month"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_month"))
		return
	}

	cal, err := h.monthUC.Execute(c.Request.Context(), year, month, withIDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, cal)
}
