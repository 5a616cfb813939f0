package interfaces

import (
	"context"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// IndictmentRepository defines the interface for Indictment data access.
// The one-indictment-per-case invariant is enforced by the orchestrator,
// not by the store, so lookups by case ID may in principle return several
// records and ListByCaseID exists for the verdict cascade.
type IndictmentRepository interface {
	// Insert stores a new indictment
	Insert(ctx context.Context, ind *model.Indictment) error

	// Get retrieves an indictment by ID
	Get(ctx context.Context, id types.IndictmentID) (*model.Indictment, error)

	// GetByCaseID retrieves the indictment referencing the given case.
	// Returns nil, nil when no indictment exists for the case.
	GetByCaseID(ctx context.Context, caseID types.CaseID) (*model.Indictment, error)

	// ListByCaseID retrieves all indictments referencing the given case,
	// oldest first
	ListByCaseID(ctx context.Context, caseID types.CaseID) ([]*model.Indictment, error)

	// Update overwrites an existing indictment
	Update(ctx context.Context, ind *model.Indictment) (*model.Indictment, error)
}
