package types

import "fmt"

// IndictmentStatus mirrors the subset of case statuses an indictment moves through
type IndictmentStatus string

const (
	IndictmentStatusPending   IndictmentStatus = "pending"
	IndictmentStatusAccepted  IndictmentStatus = "accepted"
	IndictmentStatusScheduled IndictmentStatus = "scheduled"
	IndictmentStatusCompleted IndictmentStatus = "completed"
	IndictmentStatusRejected  IndictmentStatus = "rejected"
)

// AllIndictmentStatuses returns all valid indictment statuses
func AllIndictmentStatuses() []IndictmentStatus {
	return []IndictmentStatus{
		IndictmentStatusPending,
		IndictmentStatusAccepted,
		IndictmentStatusScheduled,
		IndictmentStatusCompleted,
		IndictmentStatusRejected,
	}
}

// IsValid checks if the indictment status is valid
func (s IndictmentStatus) IsValid() bool {
	for _, v := range AllIndictmentStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// IsOpen reports whether the indictment still awaits a disposition.
// An indictment in accepted or scheduled state is picked up by the
// verdict cascade; pending is still open as well.
func (s IndictmentStatus) IsOpen() bool {
	switch s {
	case IndictmentStatusPending, IndictmentStatusAccepted, IndictmentStatusScheduled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the indictment status
func (s IndictmentStatus) String() string {
	return string(s)
}

// ParseIndictmentStatus parses a string into an IndictmentStatus
func ParseIndictmentStatus(s string) (IndictmentStatus, error) {
	status := IndictmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid indictment status: %s", s)
	}
	return status, nil
}
