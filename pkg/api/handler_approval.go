package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// approvalDecisionBody is the request body of approve and reject calls
type approvalDecisionBody struct {
	Approver string `json:"approver"`
	Comments string `json:"comments"`
	Reason   string `json:"reason"`
}

// listPendingApprovals handles GET /api/v1/approvals/pending with optional
// ?role=
func (s *Server) listPendingApprovals(c *gin.Context) {
	pending, err := s.approvals.ListPendingApprovals(c.Request.Context(), c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pending)
}

// countPendingApprovals handles GET /api/v1/approvals/pending/count
func (s *Server) countPendingApprovals(c *gin.Context) {
	count, err := s.approvals.CountPendingApprovals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"count": count})
}

// listApprovalsByExecution handles GET /api/v1/approvals/execution/:id
func (s *Server) listApprovalsByExecution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	requests, err := s.approvals.ListByExecution(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", requests)
}

// approveRequest handles POST /api/v1/approvals/:id/approve
func (s *Server) approveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body approvalDecisionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	decided, err := s.coordinator.Approve(c.Request.Context(), id, body.Approver, body.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "approval granted", decided)
}

// rejectRequest handles POST /api/v1/approvals/:id/reject
func (s *Server) rejectRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body approvalDecisionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	reason := body.Reason
	if reason == "" {
		reason = body.Comments
	}
	decided, err := s.coordinator.Reject(c.Request.Context(), id, body.Approver, reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "approval rejected", decided)
}
