package usecase

import "github.com/m-mizutani/goerr/v2"

// Error kinds of the lifecycle orchestrator. Every action returns either
// the updated records or an error wrapping exactly one of these, so
// callers can map the failure to a specific message. All of them except
// ErrPartialMigration are detected before any write and leave state
// untouched.
var (
	// ErrValidation marks a missing or empty required field
	ErrValidation = goerr.New("validation failed")

	// ErrNotFound marks an unresolved case, indictment, or sub-record
	ErrNotFound = goerr.New("record not found")

	// ErrIncompleteCase marks an indictment submission against a case
	// lacking defendant, charge, or incident date
	ErrIncompleteCase = goerr.New("case is incomplete for indictment")

	// ErrConflict marks a duplicate case number, a second indictment,
	// or an action whose status precondition does not hold
	ErrConflict = goerr.New("conflicting state")

	// ErrForbidden marks a role guard failure
	ErrForbidden = goerr.New("action not permitted for caller roles")

	// ErrPartialMigration marks a case number migration that failed
	// after partial effect; the two collections may disagree until a
	// human or repair job reconciles them
	ErrPartialMigration = goerr.New("case number migration partially applied")

	// ErrPersistence marks an underlying store write failure
	ErrPersistence = goerr.New("persistence failed")
)

// Context keys for error values
const (
	CaseIDKey     = "case_id"
	NewCaseIDKey  = "new_case_id"
	ActionKey     = "action"
	FieldKey      = "field"
	StatusKey     = "status"
	IndictmentKey = "indictment_id"
	StepKey       = "migration_step"
)
