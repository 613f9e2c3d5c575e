package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	ucMaintenance "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/maintenance"
)

type MaintenanceHandler struct {
	createUC  *ucMaintenance.CreateMaintenance
	lifecycle *ucMaintenance.Lifecycle
	listUC    *ucMaintenance.ListMaintenance
}

func NewMaintenanceHandler(
	createUC *ucMaintenance.CreateMaintenance,
	lifecycle *ucMaintenance.Lifecycle,
	listUC *ucMaintenance.ListMaintenance,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		createUC:  createUC,
		lifecycle: lifecycle,
		listUC:    listUC,
	}
}

// --------- Requests ---------

type CreateMaintenanceRequest struct {
	CabinID       *uint  `json:"cabin_id"`
	EquipmentID   *uint  `json:"equipment_id"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Priority      string `json:"priority"`
	Description   string `json:"description"`
	ExternalStaff string `json:"external_staff"`
	WorkerID      *uint  `json:"worker_id"`
}

// --------- Handlers ---------

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req CreateMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.createUC.Execute(c.Request.Context(), ucMaintenance.CreateMaintenanceInput{
		Actor:         middleware.ActorFrom(c),
		CabinID:       req.CabinID,
		EquipmentID:   req.EquipmentID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Category:      req.Category,
		Priority:      req.Priority,
		Description:   req.Description,
		ExternalStaff: req.ExternalStaff,
		WorkerID:      req.WorkerID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, w)
}

// Start / Complete / Cancel só mudam o estado; o use case decide quem pode.

func (h *MaintenanceHandler) Start(c *gin.Context) {
	h.transition(c, h.lifecycle.Start)
}

func (h *MaintenanceHandler) Complete(c *gin.Context) {
	h.transition(c, h.lifecycle.Complete)
}

func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	h.transition(c, h.lifecycle.Cancel)
}

func (h *MaintenanceHandler) transition(
	c *gin.Context,
	step func(ctx context.Context, by actor.Actor, id uint) (*models.MaintenanceWindow, error),
) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	w, err := step(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, w)
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	var f maintenance.ListFilter

	var ok bool
	if f.CabinID, ok = optionalUint(c, "cabin_id"); !ok {
		return
	}
	if f.EquipmentID, ok = optionalUint(c, "equipment_id"); !ok {
		return
	}
	if f.WorkerID, ok = optionalUint(c, "worker_id"); !ok {
		return
	}

	if s := c.Query("status"); s != "" {
		st := maintenance.Status(s)
		switch st {
		case maintenance.StatusScheduled, maintenance.StatusInProgress,
			maintenance.StatusCompleted, maintenance.StatusCancelled:
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
