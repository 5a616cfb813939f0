package types

import "fmt"

// PleaDealResponse is the decision recorded when a plea deal is processed
type PleaDealResponse string

const (
	PleaDealAccepted PleaDealResponse = "accepted"
	PleaDealRejected PleaDealResponse = "rejected"
)

// IsValid checks if the plea deal response is valid
func (r PleaDealResponse) IsValid() bool {
	return r == PleaDealAccepted || r == PleaDealRejected
}

// String returns the string representation of the plea deal response
func (r PleaDealResponse) String() string {
	return string(r)
}

// ParsePleaDealResponse parses a string into a PleaDealResponse
func ParsePleaDealResponse(s string) (PleaDealResponse, error) {
	resp := PleaDealResponse(s)
	if !resp.IsValid() {
		return "", fmt.Errorf("invalid plea deal response: %s", s)
	}
	return resp, nil
}

// CaseStatus returns the case status resulting from the response
func (r PleaDealResponse) CaseStatus() CaseStatus {
	if r == PleaDealAccepted {
		return CaseStatusPleaDealAccepted
	}
	return CaseStatusPleaDealRejected
}
