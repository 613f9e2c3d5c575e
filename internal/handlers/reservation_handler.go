package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	ucReservation "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC  *ucReservation.CreateReservation
	confirmUC *ucReservation.ConfirmReservation
	cancelUC  *ucReservation.CancelReservation
	payUC     *ucReservation.PayReservation
	listUC    *ucReservation.ListReservations
	getUC     *ucReservation.GetReservation
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	payUC *ucReservation.PayReservation,
	listUC *ucReservation.ListReservations,
	getUC *ucReservation.GetReservation,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:  createUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		payUC:     payUC,
		listUC:    listUC,
		getUC:     getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	// só staff informa; cliente reserva para si
	ClientID  uint   `json:"client_id"`
	CabinID   uint   `json:"cabin_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// corpo opcional; sem método vale transferência
type PayReservationRequest struct {
	Method string `json:"method"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Actor:     middleware.ActorFrom(c),
		ClientID:  req.ClientID,
		CabinID:   req.CabinID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.confirmUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.cancelUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, r)
}

// ======================================================
// PAY
// ======================================================

func (h *ReservationHandler) Pay(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PayReservationRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	p, err := h.payUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Method)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// READ
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.getUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, r)
}

// List: staff filtra à vontade; cliente sempre vê só as suas.
// Filtros: client_id, cabin_id, status, from, to.
func (h *ReservationHandler) List(c *gin.Context) {
	var f reservation.ListFilter

	var ok bool
	if f.ClientID, ok = optionalUint(c, "client_id"); !ok {
		return
	}
	if f.CabinID, ok = optionalUint(c, "cabin_id"); !ok {
		return
	}

	if s := c.Query("status"); s != "" {
		st := reservation.Status(s)
		switch st {
		case reservation.StatusPending, reservation.StatusConfirmed,
			reservation.StatusCancelled, reservation.StatusCompleted:
			f.Status = &st
		default:
			httperr.FromError(c, httperr.ErrBusiness("invalid_status"))
			return
		}
	}

	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		window, err := dates.ParseRange(from, to)
		if err != nil {
			httperr.FromError(c, httperr.ErrBusiness("invalid_date_range"))
			return
		}
		f.Window = &window
	}

	list, err := h.listUC.Execute(c.Request.Context(), middleware.ActorFrom(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ListMine é o atalho do cliente para as próprias reservas.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	by := middleware.ActorFrom(c)

	list, err := h.listUC.Execute(c.Request.Context(), by, reservation.ListFilter{
		ClientID: &by.UserID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
