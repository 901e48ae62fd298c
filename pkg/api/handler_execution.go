package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/pkg/models"
)

// listExecutions handles GET /api/v1/executions with optional
// ?workflow_id=, ?status=, ?limit= and ?offset=
func (s *Server) listExecutions(c *gin.Context) {
	filters := models.ExecutionFilters{Limit: 25}

	if v := c.Query("workflow_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			respondBadRequest(c, "workflow_id must be a positive integer")
			return
		}
		filters.WorkflowID = id
	}
	if v := c.Query("status"); v != "" {
		if err := workflowexecution.StatusValidator(workflowexecution.Status(v)); err != nil {
			respondBadRequest(c, "invalid status: "+v)
			return
		}
		filters.Status = v
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 && limit <= 100 {
			filters.Limit = limit
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			filters.Offset = offset
		}
	}

	listing, err := s.executions.ListExecutions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", listing)
}

// getExecution handles GET /api/v1/executions/:id
func (s *Server) getExecution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	loaded, err := s.executions.GetExecution(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", loaded)
}

// cancelExecution handles POST /api/v1/executions/:id/cancel
func (s *Server) cancelExecution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.executions.CancelExecution(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "execution cancelled", nil)
}

// listAgentExecutions handles GET /api/v1/executions/:id/agent-executions
func (s *Server) listAgentExecutions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := s.agentExecutions.ListByWorkflowExecution(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", rows)
}
