package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// CreateCaseInput carries the intake fields for a new case
type CreateCaseInput struct {
	ID           types.CaseID
	Defendant    string
	Charge       string
	IncidentDate time.Time
	District     string
}

// UpdateCaseInput carries the editable fields of a case
type UpdateCaseInput struct {
	Defendant    string
	Charge       string
	IncidentDate time.Time
	District     string
	Prosecutor   string
	Judge        string
	BailAmount   string
	Witnesses    string
	Victims      string
	NewNote      string
}

// loadCase fetches a case, mapping a repository miss to ErrNotFound
func (uc *UseCases) loadCase(ctx context.Context, id types.CaseID) (*model.Case, error) {
	c, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V(CaseIDKey, id))
	}
	return c, nil
}

// storeCase persists a modified case, mapping write failures to
// ErrPersistence. The in-memory mutation is discarded with the error; the
// prior persisted state stays authoritative.
func (uc *UseCases) storeCase(ctx context.Context, c *model.Case) (*model.Case, error) {
	updated, err := uc.repo.Case().Update(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(ErrPersistence, "failed to persist case",
			goerr.V(CaseIDKey, c.ID), goerr.V("cause", err.Error()))
	}
	return updated, nil
}

// CreateCase files a new case in status open. Lifecycle logic happens
// exclusively in the named actions; intake only records the filing.
func (uc *UseCases) CreateCase(ctx context.Context, input CreateCaseInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionCreateCase)
	if err != nil {
		return nil, err
	}

	if err := input.ID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "case number is required", goerr.V(FieldKey, "id"))
	}
	if input.Defendant == "" || input.Charge == "" || input.District == "" || input.IncidentDate.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "defendant, charge, incident date and district are required",
			goerr.V(CaseIDKey, input.ID))
	}

	unlock := uc.locker.Lock(input.ID)
	defer unlock()

	if _, err := uc.repo.Case().Get(ctx, input.ID); err == nil {
		return nil, goerr.Wrap(ErrConflict, "case number already in use", goerr.V(CaseIDKey, input.ID))
	}

	c := &model.Case{
		ID:             input.ID,
		Defendant:      input.Defendant,
		Charge:         input.Charge,
		IncidentDate:   input.IncidentDate,
		District:       input.District,
		ExpirationDate: model.ExpirationFrom(input.IncidentDate),
		Status:         types.CaseStatusOpen,
	}
	uc.appendNote(c, caller, types.ActionCreateCase, fmt.Sprintf("case filed against %s", input.Defendant), nil)

	if err := uc.repo.Case().Insert(ctx, c); err != nil {
		return nil, goerr.Wrap(ErrPersistence, "failed to insert case",
			goerr.V(CaseIDKey, input.ID), goerr.V("cause", err.Error()))
	}

	created, err := uc.loadCase(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, created, created.Notes[0])
	return created, nil
}

// GetCase retrieves a single case
func (uc *UseCases) GetCase(ctx context.Context, id types.CaseID) (*model.Case, error) {
	return uc.loadCase(ctx, id)
}

// ListCases retrieves cases with optional filtering
func (uc *UseCases) ListCases(ctx context.Context, opts ...interfaces.ListCaseOption) ([]*model.Case, error) {
	cases, err := uc.repo.Case().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases")
	}
	return cases, nil
}

// UpdateCase overwrites the descriptive fields of a case and recomputes
// the statute-of-limitations baseline. The status is not touched. A note
// is appended only when new note text is supplied.
func (uc *UseCases) UpdateCase(ctx context.Context, id types.CaseID, input UpdateCaseInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionUpdateCase)
	if err != nil {
		return nil, err
	}

	if input.Defendant == "" || input.Charge == "" || input.District == "" || input.IncidentDate.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "defendant, charge, incident date and district are required",
			goerr.V(CaseIDKey, id))
	}

	unlock := uc.locker.Lock(id)
	defer unlock()

	c, err := uc.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Defendant = input.Defendant
	c.Charge = input.Charge
	c.IncidentDate = input.IncidentDate
	c.District = input.District
	c.Prosecutor = input.Prosecutor
	c.Judge = input.Judge
	c.BailAmount = input.BailAmount
	c.Witnesses = input.Witnesses
	c.Victims = input.Victims
	c.ExpirationDate = model.ExpirationFrom(input.IncidentDate)

	if input.NewNote != "" {
		uc.appendNote(c, caller, types.ActionUpdateCase, input.NewNote, nil)
	}

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, err
	}

	if input.NewNote != "" {
		uc.notify(ctx, updated, updated.Notes[0])
	}
	return updated, nil
}

// UpdateCaseID migrates a case to a new case number and repoints the
// linked indictment. The store has no multi-record transaction, so the
// writes happen in a fixed order: insert the copy under the new number,
// repoint the indictment, delete the old record. A failure after the
// first write returns ErrPartialMigration naming the completed step so a
// human or repair job can reconcile.
func (uc *UseCases) UpdateCaseID(ctx context.Context, id, newID types.CaseID) (*model.Case, error) {
	if _, err := uc.authorize(ctx, types.ActionUpdateCaseID); err != nil {
		return nil, err
	}

	if err := newID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "new case number is required", goerr.V(CaseIDKey, id))
	}
	// A rename onto the same number is a self-collision: the target
	// number is already in use by this very case.
	if newID == id {
		return nil, goerr.Wrap(ErrConflict, "new case number equals current one",
			goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID))
	}

	unlock := uc.locker.LockPair(id, newID)
	defer unlock()

	c, err := uc.loadCase(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.Case().Get(ctx, newID); err == nil {
		return nil, goerr.Wrap(ErrConflict, "new case number already in use",
			goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID))
	}

	renamed := *c
	renamed.ID = newID
	if err := uc.repo.Case().Insert(ctx, &renamed); err != nil {
		// Nothing visible changed yet; report as a plain write failure.
		return nil, goerr.Wrap(ErrPersistence, "failed to insert renamed case",
			goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID), goerr.V("cause", err.Error()))
	}

	// Repoint the indictment before the old case disappears, so no
	// reader resolves the new number without its indictment.
	ind, err := uc.repo.Indictment().GetByCaseID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrPartialMigration, "failed to look up indictment after case copy",
			goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID), goerr.V(StepKey, "case_inserted"))
	}
	if ind != nil {
		ind.CaseID = newID
		if _, err := uc.repo.Indictment().Update(ctx, ind); err != nil {
			return nil, goerr.Wrap(ErrPartialMigration, "failed to repoint indictment",
				goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID),
				goerr.V(IndictmentKey, ind.ID), goerr.V(StepKey, "case_inserted"))
		}
	}

	if err := uc.repo.Case().Delete(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrPartialMigration, "failed to delete old case record",
			goerr.V(CaseIDKey, id), goerr.V(NewCaseIDKey, newID), goerr.V(StepKey, "indictment_repointed"))
	}

	return uc.loadCase(ctx, newID)
}
