package interfaces

import (
	"context"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// CaseRepository defines the interface for Case data access. Reads and
// writes are whole-record: the store has no field-level update, so callers
// must serialize read-modify-write cycles per case ID themselves.
type CaseRepository interface {
	// Insert stores a new case under its ID. It fails (ErrAlreadyExists
	// of the backend) when the ID is already in use.
	Insert(ctx context.Context, c *model.Case) error

	// Get retrieves a case by ID
	Get(ctx context.Context, id types.CaseID) (*model.Case, error)

	// List retrieves cases with optional filtering, newest first
	List(ctx context.Context, opts ...ListCaseOption) ([]*model.Case, error)

	// Update overwrites an existing case
	Update(ctx context.Context, c *model.Case) (*model.Case, error)

	// Delete removes a case by ID. Used only by the ID migration; cases
	// are otherwise never deleted by this core.
	Delete(ctx context.Context, id types.CaseID) error
}
