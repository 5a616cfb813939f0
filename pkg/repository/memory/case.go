package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type caseRepository struct {
	mu    sync.RWMutex
	cases map[types.CaseID]*model.Case
}

func newCaseRepository() *caseRepository {
	return &caseRepository{
		cases: make(map[types.CaseID]*model.Case),
	}
}

// copyCase creates a deep copy so callers never share slices with the store
func copyCase(c *model.Case) *model.Case {
	copied := *c

	if c.Notes != nil {
		copied.Notes = make([]model.Note, len(c.Notes))
		for i, n := range c.Notes {
			copied.Notes[i] = n
			if n.Metadata != nil {
				md := make(map[string]string, len(n.Metadata))
				for k, v := range n.Metadata {
					md[k] = v
				}
				copied.Notes[i].Metadata = md
			}
		}
	}

	if c.PleaDeal != nil {
		pd := *c.PleaDeal
		copied.PleaDeal = &pd
	}

	return &copied
}

func (r *caseRepository) Insert(ctx context.Context, c *model.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[c.ID]; exists {
		return goerr.Wrap(ErrAlreadyExists, "case already exists", goerr.V("id", c.ID))
	}

	stored := copyCase(c)
	now := time.Now().UTC()
	if stored.DateCreated.IsZero() {
		stored.DateCreated = now
	}
	stored.DateUpdated = now

	r.cases[c.ID] = stored
	return nil
}

func (r *caseRepository) Get(ctx context.Context, id types.CaseID) (*model.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cases[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}

	return copyCase(c), nil
}

func (r *caseRepository) List(ctx context.Context, opts ...interfaces.ListCaseOption) ([]*model.Case, error) {
	o := interfaces.NewListCaseOptions(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Case, 0, len(r.cases))
	for _, c := range r.cases {
		if o.Status != nil && c.Status != *o.Status {
			continue
		}
		if o.Closed != nil && c.IsClosed != *o.Closed {
			continue
		}
		result = append(result, copyCase(c))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DateUpdated.After(result[j].DateUpdated)
	})

	return result, nil
}

func (r *caseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.cases[c.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", c.ID))
	}

	stored := copyCase(c)
	stored.DateCreated = existing.DateCreated
	stored.DateUpdated = time.Now().UTC()

	r.cases[c.ID] = stored
	return copyCase(stored), nil
}

func (r *caseRepository) Delete(ctx context.Context, id types.CaseID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[id]; !exists {
		return goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}

	delete(r.cases, id)
	return nil
}
