package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	ucLoan "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/loan"
)

type LoanHandler struct {
	createUC   *ucLoan.CreateLoan
	returnUC   *ucLoan.ReturnLoan
	markLostUC *ucLoan.MarkLoanLost
	listUC     *ucLoan.ListLoans
}

func NewLoanHandler(
	createUC *ucLoan.CreateLoan,
	returnUC *ucLoan.ReturnLoan,
	markLostUC *ucLoan.MarkLoanLost,
	listUC *ucLoan.ListLoans,
) *LoanHandler {
	return &LoanHandler{
		createUC:   createUC,
		returnUC:   returnUC,
		markLostUC: markLostUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type CreateLoanRequest struct {
	ClientID      uint   `json:"client_id"`
	EquipmentID   uint   `json:"equipment_id" binding:"required"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
}

// --------- Handlers ---------

func (h *LoanHandler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.createUC.Execute(c.Request.Context(), ucLoan.CreateLoanInput{
		Actor:         middleware.ActorFrom(c),
		ClientID:      req.ClientID,
		EquipmentID:   req.EquipmentID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, l)
}

func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	l, err := h.returnUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, l)
}

func (h *LoanHandler) MarkLost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	l, err := h.markLostUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, l)
}

func (h *LoanHandler) List(c *gin.Context) {
	var f loan.ListFilter

	var ok bool
	if f.ClientID, ok = optionalUint(c, "client_id"); !ok {
		return
	}
	if f.EquipmentID, ok = optionalUint(c, "equipment_id"); !ok {
		return
	}

	if s := c.Query("status"); s != "" {
		st := loan.Status(s)
		switch st {
		case loan.StatusActive, loan.StatusReturned, loan.StatusLost:
			f.Status = &st
		default:
			httperr.FromError(c, httperr.ErrBusiness("invalid_status"))
			return
		}
	}

	list, err := h.listUC.Execute(c.Request.Context(), middleware.ActorFrom(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
