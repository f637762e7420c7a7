package leaveapproval

import "hris-portal/internal/leave"

type Filter struct {
	Status   string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
	Type     string `form:"type" binding:"omitempty,oneof=all sick annual casual"`
	Year     int    `form:"year"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Refresh  bool   `form:"refresh"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest is the body of update-leave-status.
type UpdateStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// UpdateStatusResult carries either the full refreshed list or the single
// updated record, depending on the server.
type UpdateStatusResult struct {
	Leaves []leave.Record `json:"leaves"`
	Leave  *leave.Record  `json:"leave"`
}

type Counts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type ListView struct {
	Status string         `json:"status"`
	Error  string         `json:"error,omitempty"`
	Leaves []leave.Record `json:"leaves"`
	Counts Counts         `json:"counts"`
}
