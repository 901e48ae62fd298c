package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/models"
)

// listTools handles GET /api/v1/tools with optional ?type= and ?active=
func (s *Server) listTools(c *gin.Context) {
	filters := models.ToolFilters{
		ToolType:   c.Query("type"),
		ActiveOnly: c.Query("active") == "true",
	}
	tools, err := s.tools.ListTools(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", tools)
}

// getTool handles GET /api/v1/tools/:id
func (s *Server) getTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	loaded, err := s.tools.GetTool(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", loaded)
}

// createTool handles POST /api/v1/tools
func (s *Server) createTool(c *gin.Context) {
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.tools.CreateTool(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "tool created", created)
}

// updateTool handles PUT /api/v1/tools/:id
func (s *Server) updateTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.tools.UpdateTool(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tool updated", updated)
}

// deleteTool handles DELETE /api/v1/tools/:id
func (s *Server) deleteTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.tools.DeleteTool(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tool deleted", nil)
}

// setToolActive handles POST /api/v1/tools/:id/activate and /deactivate
func (s *Server) setToolActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		updated, err := s.tools.SetToolActive(c.Request.Context(), id, active)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "tool deactivated"
		if active {
			message = "tool activated"
		}
		respond(c, http.StatusOK, message, updated)
	}
}
