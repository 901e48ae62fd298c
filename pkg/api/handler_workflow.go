package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/pkg/models"
)

// ExecutionOutcome is the response body of a synchronous workflow run
type ExecutionOutcome struct {
	ExecutionID int                    `json:"execution_id"`
	Status      string                 `json:"status"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// listWorkflows handles GET /api/v1/workflows
func (s *Server) listWorkflows(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	workflows, err := s.workflows.ListWorkflows(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", workflows)
}

// getWorkflow handles GET /api/v1/workflows/:id
func (s *Server) getWorkflow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	loaded, err := s.workflows.GetWorkflow(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", loaded)
}

// createWorkflow handles POST /api/v1/workflows
func (s *Server) createWorkflow(c *gin.Context) {
	var req models.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.workflows.CreateWorkflow(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "workflow created", created)
}

// updateWorkflow handles PUT /api/v1/workflows/:id
func (s *Server) updateWorkflow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.workflows.UpdateWorkflow(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "workflow updated", updated)
}

// deleteWorkflow handles DELETE /api/v1/workflows/:id
func (s *Server) deleteWorkflow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.workflows.DeleteWorkflow(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "workflow deleted", nil)
}

// setWorkflowActive handles POST /api/v1/workflows/:id/activate and
// /deactivate
func (s *Server) setWorkflowActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		updated, err := s.workflows.SetWorkflowActive(c.Request.Context(), id, active)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "workflow deactivated"
		if active {
			message = "workflow activated"
		}
		respond(c, http.StatusOK, message, updated)
	}
}

// listSteps handles GET /api/v1/workflows/:id/steps
func (s *Server) listSteps(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	steps, err := s.workflows.ListSteps(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", steps)
}

// addStep handles POST /api/v1/workflows/:id/steps
func (s *Server) addStep(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.workflows.AddStep(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "step added", created)
}

// updateStep handles PUT /api/v1/workflows/:id/steps/:stepId
func (s *Server) updateStep(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	stepID, ok := pathID(c, "stepId")
	if !ok {
		return
	}
	var req models.UpdateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.workflows.UpdateStep(c.Request.Context(), stepID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "step updated", updated)
}

// deleteStep handles DELETE /api/v1/workflows/:id/steps/:stepId
func (s *Server) deleteStep(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	stepID, ok := pathID(c, "stepId")
	if !ok {
		return
	}
	if err := s.workflows.DeleteStep(c.Request.Context(), stepID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "step deleted", nil)
}

// reorderSteps handles POST /api/v1/workflows/:id/steps/reorder
func (s *Server) reorderSteps(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var items []models.StepReorder
	if err := c.ShouldBindJSON(&items); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	steps, err := s.workflows.ReorderSteps(c.Request.Context(), id, items)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "steps reordered", steps)
}

// executeWorkflow handles POST /api/v1/workflows/:id/execute. Workflows in
// sync mode run inline and return the outcome; async workflows are enqueued
// for the run queue and return the pending execution
func (s *Server) executeWorkflow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ExecuteWorkflowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	wf, err := s.workflows.GetWorkflow(c.Request.Context(), id, false)
	if err != nil {
		respondError(c, err)
		return
	}

	if wf.ExecutionMode == workflow.ExecutionModeAsync {
		exec, err := s.orchestrator.Enqueue(c.Request.Context(), id, req.TriggerData)
		if err != nil {
			respondError(c, err)
			return
		}
		if s.pool != nil {
			s.pool.Notify()
		}
		respond(c, http.StatusAccepted, "execution enqueued", ExecutionOutcome{
			ExecutionID: exec.ID,
			Status:      string(exec.Status),
		})
		return
	}

	outcome, err := s.orchestrator.Start(c.Request.Context(), id, req.TriggerData)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", ExecutionOutcome{
		ExecutionID: outcome.ExecutionID,
		Status:      string(outcome.Status),
		Context:     outcome.Context,
		Error:       outcome.Error,
	})
}

// listWorkflowSchedules handles GET /api/v1/workflows/:id/schedules
func (s *Server) listWorkflowSchedules(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	schedules, err := s.schedules.ListByWorkflow(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", schedules)
}
