package models

// ApprovalDecisionRequest records a human decision on a pending approval
type ApprovalDecisionRequest struct {
	Approver string `json:"approver"`
	Comments string `json:"comments"`
}
