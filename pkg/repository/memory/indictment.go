package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type indictmentRepository struct {
	mu          sync.RWMutex
	indictments map[types.IndictmentID]*model.Indictment
}

func newIndictmentRepository() *indictmentRepository {
	return &indictmentRepository{
		indictments: make(map[types.IndictmentID]*model.Indictment),
	}
}

func copyIndictment(ind *model.Indictment) *model.Indictment {
	copied := *ind
	return &copied
}

func (r *indictmentRepository) Insert(ctx context.Context, ind *model.Indictment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indictments[ind.ID]; exists {
		return goerr.Wrap(ErrAlreadyExists, "indictment already exists", goerr.V("id", ind.ID))
	}

	stored := copyIndictment(ind)
	if stored.DateCreated.IsZero() {
		stored.DateCreated = time.Now().UTC()
	}

	r.indictments[ind.ID] = stored
	return nil
}

func (r *indictmentRepository) Get(ctx context.Context, id types.IndictmentID) (*model.Indictment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ind, exists := r.indictments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "indictment not found", goerr.V("id", id))
	}

	return copyIndictment(ind), nil
}

func (r *indictmentRepository) GetByCaseID(ctx context.Context, caseID types.CaseID) (*model.Indictment, error) {
	list, err := r.ListByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *indictmentRepository) ListByCaseID(ctx context.Context, caseID types.CaseID) ([]*model.Indictment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Indictment, 0, 1)
	for _, ind := range r.indictments {
		if ind.CaseID == caseID {
			result = append(result, copyIndictment(ind))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DateCreated.Before(result[j].DateCreated)
	})

	return result, nil
}

func (r *indictmentRepository) Update(ctx context.Context, ind *model.Indictment) (*model.Indictment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.indictments[ind.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "indictment not found", goerr.V("id", ind.ID))
	}

	stored := copyIndictment(ind)
	stored.DateCreated = existing.DateCreated

	r.indictments[ind.ID] = stored
	return copyIndictment(stored), nil
}
