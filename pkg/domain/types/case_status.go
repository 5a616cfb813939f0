package types

import "fmt"

// CaseStatus represents the lifecycle status of a case
type CaseStatus string

const (
	CaseStatusOpen              CaseStatus = "open"
	CaseStatusInProgress        CaseStatus = "in_progress"
	CaseStatusPending           CaseStatus = "pending"
	CaseStatusAccepted          CaseStatus = "accepted"
	CaseStatusScheduled         CaseStatus = "scheduled"
	CaseStatusCompleted         CaseStatus = "completed"
	CaseStatusRejected          CaseStatus = "rejected"
	CaseStatusDismissed         CaseStatus = "dismissed"
	CaseStatusRevisionRequested CaseStatus = "revision_requested"
	CaseStatusRevisionCompleted CaseStatus = "revision_completed"
	CaseStatusPleaDealAccepted  CaseStatus = "plea_deal_accepted"
	CaseStatusPleaDealRejected  CaseStatus = "plea_deal_rejected"
	CaseStatusReopened          CaseStatus = "reopened"
)

// AllCaseStatuses returns all valid case statuses
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusOpen,
		CaseStatusInProgress,
		CaseStatusPending,
		CaseStatusAccepted,
		CaseStatusScheduled,
		CaseStatusCompleted,
		CaseStatusRejected,
		CaseStatusDismissed,
		CaseStatusRevisionRequested,
		CaseStatusRevisionCompleted,
		CaseStatusPleaDealAccepted,
		CaseStatusPleaDealRejected,
		CaseStatusReopened,
	}
}

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	for _, v := range AllCaseStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// IsRevision reports whether the status belongs to the revision phase.
// Explicit set membership, not substring matching.
func (s CaseStatus) IsRevision() bool {
	return s == CaseStatusRevisionRequested || s == CaseStatusRevisionCompleted
}

// Normalize returns the status, treating empty as CaseStatusOpen for backward compatibility.
func (s CaseStatus) Normalize() CaseStatus {
	if s == "" {
		return CaseStatusOpen
	}
	return s
}

// String returns the string representation of the case status
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
