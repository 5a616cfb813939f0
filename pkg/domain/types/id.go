package types

import (
	"fmt"

	"github.com/google/uuid"
)

// CaseID is the externally visible case number. It is caller-assigned and
// mutable through the dedicated rename operation, so it is a plain string
// rather than a generated identifier.
type CaseID string

// Validate checks that the case ID is usable as a record key
func (id CaseID) Validate() error {
	if id == "" {
		return fmt.Errorf("case ID must not be empty")
	}
	return nil
}

// String returns the string representation of the case ID
func (id CaseID) String() string {
	return string(id)
}

// IndictmentID identifies an indictment record
type IndictmentID string

// NewIndictmentID generates a new random indictment ID
func NewIndictmentID() IndictmentID {
	return IndictmentID(uuid.New().String())
}

// String returns the string representation of the indictment ID
func (id IndictmentID) String() string {
	return string(id)
}
