package http

import (
	"github.com/gin-gonic/gin"

	"taskkeep/internal/task"
	"taskkeep/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a new task; the store assigns the next id.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Filters, searches and sorts the collection.
// @Tags        Tasks
// @Produce     json
// @Param       status   query string false "Filter by status (open/done)"
// @Param       priority query string false "Filter by priority (low/medium/high)"
// @Param       tag      query string false "Filter by tag membership"
// @Param       overdue  query bool   false "Only open tasks due before today"
// @Param       today    query bool   false "Only tasks due today"
// @Param       week     query bool   false "Only tasks due within 7 days"
// @Param       q        query string false "Substring search over title, notes, tags"
// @Param       sort     query string false "Sort key (due/priority/title/created/updated)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Unknown filter or sort key"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Edit godoc
// @Summary     Edit a task
// @Description Sparse update: only supplied fields change. Tag changes use
// @Description tag_mode set/add/remove, one mode per call.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body editReq true "Fields to change"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Done godoc
// @Summary     Complete a task
// @Description Marks an open task done. A recurring task spawns its
// @Description follow-up with the due date advanced by one period.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} doneResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already done"
// @Router      /api/v1/tasks/{id}/done [POST]
func (h *handler) Done(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Done(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Done: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDoneResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. Recurrence children stand alone.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Bulk godoc
// @Summary     Bulk operation
// @Description Applies one action (delete/tag-add/tag-remove/set-priority)
// @Description to every task matching the filter.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body bulkReq true "Filter and action"
// @Success     200 {object} bulkResp
// @Failure     400 {object} response.Resp "Invalid action definition"
// @Failure     500 {object} bulkResp "Aborted mid-batch; data names the committed tasks"
// @Router      /api/v1/tasks/bulk [POST]
func (h *handler) Bulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Bulk(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Bulk: %v", err)
		if output.Affected > 0 {
			// Aborted mid-batch: report the tasks already changed.
			response.ErrorWithData(c, h.mapError(err), bulkResp{Affected: output.Affected, CommittedIDs: output.CommittedIDs})
			return
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, bulkResp{Affected: output.Affected, CommittedIDs: output.CommittedIDs})
}

// Stats godoc
// @Summary     Aggregate statistics
// @Description Counts, completion rate, due-date buckets and tag histogram,
// @Description recomputed from the current collection.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(output))
}

// Tags godoc
// @Summary     Tag usage histogram
// @Tags        Stats
// @Produce     json
// @Success     200 {array} tagCountResp
// @Router      /api/v1/tasks/tags [GET]
func (h *handler) Tags(c *gin.Context) {
	ctx := c.Request.Context()

	tags, err := h.uc.Tags(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Tags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out := make([]tagCountResp, 0, len(tags))
	for _, tc := range tags {
		out = append(out, tagCountResp{Tag: tc.Tag, Count: tc.Count})
	}
	response.OK(c, out)
}

// ImportV1 godoc
// @Summary     Import a legacy v1 file
// @Description One-time upgrade of the old flat format; ids are assigned
// @Description from the same counter as Create so they never collide.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Path to the legacy file"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Missing path"
// @Failure     500 {object} response.Resp "Unreadable legacy file"
// @Router      /api/v1/tasks/import/v1 [POST]
func (h *handler) ImportV1(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportV1(ctx, task.ImportV1Input{Path: req.Path})
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportV1: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newImportResp(output))
}
