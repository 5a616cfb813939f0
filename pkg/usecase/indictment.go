package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/service/signature"
	"github.com/m-mizutani/goerr/v2"
)

// SubmitIndictmentInput carries the indictment submission payload
type SubmitIndictmentInput struct {
	Text string
}

// AddVerdictInput carries the verdict payload. Status defaults to
// completed when empty.
type AddVerdictInput struct {
	Text   string
	Date   time.Time
	Status types.CaseStatus
}

// GetIndictmentByCase retrieves the indictment linked to a case.
// Returns ErrNotFound when the case has no indictment.
func (uc *UseCases) GetIndictmentByCase(ctx context.Context, caseID types.CaseID) (*model.Indictment, error) {
	ind, err := uc.repo.Indictment().GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up indictment", goerr.V(CaseIDKey, caseID))
	}
	if ind == nil {
		return nil, goerr.Wrap(ErrNotFound, "case has no indictment", goerr.V(CaseIDKey, caseID))
	}
	return ind, nil
}

// SubmitIndictment creates the single indictment of a case. It resolves
// the signature placeholder in the text, moves the case to pending, and
// records the submitter as prosecutor. This is the only creator of an
// indictment; a second submission fails with ErrConflict.
func (uc *UseCases) SubmitIndictment(ctx context.Context, caseID types.CaseID, input SubmitIndictmentInput) (*model.Case, *model.Indictment, error) {
	caller, err := uc.authorize(ctx, types.ActionSubmitIndictment)
	if err != nil {
		return nil, nil, err
	}

	if input.Text == "" {
		return nil, nil, goerr.Wrap(ErrValidation, "indictment text is required", goerr.V(CaseIDKey, caseID))
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}

	if !c.HasCoreFields() {
		return nil, nil, goerr.Wrap(ErrIncompleteCase, "defendant, charge and incident date must be set before indictment",
			goerr.V(CaseIDKey, caseID))
	}

	existing, err := uc.repo.Indictment().GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to look up indictment", goerr.V(CaseIDKey, caseID))
	}
	if existing != nil {
		return nil, nil, goerr.Wrap(ErrConflict, "case already has an indictment",
			goerr.V(CaseIDKey, caseID), goerr.V(IndictmentKey, existing.ID))
	}

	now := uc.now()
	ind := &model.Indictment{
		ID:             types.NewIndictmentID(),
		CaseID:         caseID,
		Content:        signature.Apply(uc.signer, input.Text, caller),
		ProsecutorID:   caller.Sub,
		ProsecutorName: caller.DisplayName(),
		Status:         types.IndictmentStatusPending,
		DateCreated:    now,
	}

	if err := uc.repo.Indictment().Insert(ctx, ind); err != nil {
		return nil, nil, goerr.Wrap(ErrPersistence, "failed to insert indictment",
			goerr.V(CaseIDKey, caseID), goerr.V("cause", err.Error()))
	}

	c.Status = types.CaseStatusPending
	c.Prosecutor = caller.DisplayName()
	uc.appendNote(c, caller, types.ActionSubmitIndictment,
		fmt.Sprintf("indictment submitted by %s on %s", caller.DisplayName(), now.Format("2006-01-02")),
		map[string]string{"indictment_id": ind.ID.String()})

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		// The indictment is already persisted; surface the write
		// failure with its ID so the records can be reconciled.
		return nil, nil, goerr.Wrap(err, "indictment stored but case update failed",
			goerr.V(IndictmentKey, ind.ID))
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, ind, nil
}

// AddVerdict records the trial disposition on the case and cascades it
// to every indictment of the case still awaiting trial: indictments in
// accepted or scheduled state become completed and carry the verdict.
func (uc *UseCases) AddVerdict(ctx context.Context, caseID types.CaseID, input AddVerdictInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionAddVerdict)
	if err != nil {
		return nil, err
	}

	if input.Text == "" {
		return nil, goerr.Wrap(ErrValidation, "verdict text is required", goerr.V(CaseIDKey, caseID))
	}

	status := input.Status
	if status == "" {
		status = types.CaseStatusCompleted
	}
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid verdict status",
			goerr.V(CaseIDKey, caseID), goerr.V(StatusKey, input.Status))
	}

	verdictDate := input.Date
	if verdictDate.IsZero() {
		verdictDate = uc.now()
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	// Cascade to the indictments first: the case must never be observed
	// disposed while an indictment of it still shows an open status.
	indictments, err := uc.repo.Indictment().ListByCaseID(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list indictments", goerr.V(CaseIDKey, caseID))
	}
	for _, ind := range indictments {
		if ind.Status != types.IndictmentStatusAccepted && ind.Status != types.IndictmentStatusScheduled {
			continue
		}
		ind.Status = types.IndictmentStatusCompleted
		ind.Verdict = input.Text
		ind.VerdictDate = verdictDate
		if _, err := uc.repo.Indictment().Update(ctx, ind); err != nil {
			return nil, goerr.Wrap(ErrPersistence, "failed to cascade verdict to indictment",
				goerr.V(CaseIDKey, caseID), goerr.V(IndictmentKey, ind.ID), goerr.V("cause", err.Error()))
		}
	}

	c.Status = status
	c.Verdict = input.Text
	c.VerdictDate = verdictDate
	c.VerdictBy = caller.DisplayName()
	uc.appendNote(c, caller, types.ActionAddVerdict,
		fmt.Sprintf("verdict recorded by %s, case status now %s", caller.DisplayName(), status),
		map[string]string{"verdict_status": status.String()})

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, nil
}
