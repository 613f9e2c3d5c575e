package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/cabin-scheduler/internal/middleware"
	ucTask "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/task"
)

type TaskHandler struct {
	listUC   *ucTask.ListTasks
	updateUC *ucTask.UpdateTaskStatus
}

func NewTaskHandler(listUC *ucTask.ListTasks, updateUC *ucTask.UpdateTaskStatus) *TaskHandler {
	return &TaskHandler{listUC: listUC, updateUC: updateUC}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List: ?worker_id= (staff) &status=
func (h *TaskHandler) List(c *gin.Context) {
	workerID, ok := optionalUint(c, "worker_id")
	if !ok {
		return
	}

	var wid uint
	if workerID != nil {
		wid = *workerID
	}

	var status *task.Status
	if s := c.Query("status"); s != "" {
		st, err := task.ParseStatus(s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		status = &st
	}

	list, err := h.listUC.Execute(c.Request.Context(), middleware.ActorFrom(c), wid, status)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.updateUC.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, t)
}
