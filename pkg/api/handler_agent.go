package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/models"
)

// pathID parses the named integer path parameter; 0 with false means the
// handler already wrote a 400
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondBadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// listAgents handles GET /api/v1/agents
func (s *Server) listAgents(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	agents, err := s.agents.ListAgents(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", agents)
}

// getAgent handles GET /api/v1/agents/:id
func (s *Server) getAgent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	loaded, err := s.agents.GetAgent(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", loaded)
}

// createAgent handles POST /api/v1/agents
func (s *Server) createAgent(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.agents.CreateAgent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "agent created", created)
}

// updateAgent handles PUT /api/v1/agents/:id
func (s *Server) updateAgent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.agents.UpdateAgent(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "agent updated", updated)
}

// deleteAgent handles DELETE /api/v1/agents/:id
func (s *Server) deleteAgent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.agents.DeleteAgent(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "agent deleted", nil)
}

// setAgentActive handles POST /api/v1/agents/:id/activate and /deactivate
func (s *Server) setAgentActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		updated, err := s.agents.SetAgentActive(c.Request.Context(), id, active)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "agent deactivated"
		if active {
			message = "agent activated"
		}
		respond(c, http.StatusOK, message, updated)
	}
}

// listAgentTools handles GET /api/v1/agents/:id/tools
func (s *Server) listAgentTools(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	links, err := s.agents.ListAgentTools(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", links)
}

// assignTool handles POST /api/v1/agents/:id/tools
func (s *Server) assignTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.AssignToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	link, err := s.agents.AssignTool(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "tool assigned", link)
}

// removeTool handles DELETE /api/v1/agents/:id/tools/:toolId
func (s *Server) removeTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	toolID, ok := pathID(c, "toolId")
	if !ok {
		return
	}
	if err := s.agents.RemoveTool(c.Request.Context(), id, toolID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tool removed", nil)
}
