package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/models"
)

// listSchedules handles GET /api/v1/schedules with optional ?active=
func (s *Server) listSchedules(c *gin.Context) {
	enabledOnly := c.Query("active") == "true"
	schedules, err := s.schedules.ListSchedules(c.Request.Context(), enabledOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", schedules)
}

// getSchedule handles GET /api/v1/schedules/:id
func (s *Server) getSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	loaded, err := s.schedules.GetSchedule(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", loaded)
}

// createSchedule handles POST /api/v1/schedules
func (s *Server) createSchedule(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.schedules.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "schedule created", created)
}

// updateSchedule handles PUT /api/v1/schedules/:id, covering both cron and
// trigger-data updates
func (s *Server) updateSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := s.schedules.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "schedule updated", updated)
}

// deleteSchedule handles DELETE /api/v1/schedules/:id
func (s *Server) deleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.schedules.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "schedule deleted", nil)
}

// setScheduleEnabled handles POST /api/v1/schedules/:id/cancel and
// /reactivate
func (s *Server) setScheduleEnabled(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		updated, err := s.schedules.SetScheduleEnabled(c.Request.Context(), id, enabled)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "schedule cancelled"
		if enabled {
			message = "schedule reactivated"
		}
		respond(c, http.StatusOK, message, updated)
	}
}
