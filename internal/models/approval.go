package models

// Approval request statuses shared by loans, benefit requests and bookings
const (
	ApprovalStatusPending  = "Pending"
	ApprovalStatusApproved = "Approved"
	ApprovalStatusRejected = "Rejected"
)

// Approval levels run from first HR review up to the president
const (
	ApprovalLevelMin = 1
	ApprovalLevelMax = 4
)
