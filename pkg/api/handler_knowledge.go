package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/models"
)

// listKnowledge handles GET /api/v1/knowledge with optional ?category= and
// ?active=
func (s *Server) listKnowledge(c *gin.Context) {
	entries, err := s.knowledge.ListEntries(c.Request.Context(), c.Query("category"), c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", entries)
}

// getKnowledge handles GET /api/v1/knowledge/:id
func (s *Server) getKnowledge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := s.knowledge.GetEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", entry)
}

// createKnowledge handles POST /api/v1/knowledge
func (s *Server) createKnowledge(c *gin.Context) {
	var req models.CreateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.knowledge.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "entry created", created)
}

// updateKnowledge handles PUT /api/v1/knowledge/:id
func (s *Server) updateKnowledge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.knowledge.UpdateEntry(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "entry updated", updated)
}

// deleteKnowledge handles DELETE /api/v1/knowledge/:id
func (s *Server) deleteKnowledge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.knowledge.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "entry deleted", nil)
}
