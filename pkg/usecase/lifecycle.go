package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SettlementReason is the closing reason recorded for out-of-court settlements
const SettlementReason = "out-of-court settlement"

// RequestRevisionInput carries the revision request payload
type RequestRevisionInput struct {
	Reason string
}

// AddRevisionVerdictInput carries the revision verdict payload. Status
// defaults to revision_completed when empty.
type AddRevisionVerdictInput struct {
	Text   string
	Date   time.Time
	Status types.CaseStatus
}

// CloseCaseInput carries the closing payload
type CloseCaseInput struct {
	Reason string
}

// SettlementInput carries the settlement payload. Details fall back to
// the plea deal terms when empty.
type SettlementInput struct {
	Details string
}

// ProcessPleaDealInput carries the plea deal decision
type ProcessPleaDealInput struct {
	Response types.PleaDealResponse
}

// RequestRevision moves a disposed case into the revision phase. Only
// completed or rejected cases can be appealed; the status is re-checked
// here rather than trusting the caller.
func (uc *UseCases) RequestRevision(ctx context.Context, caseID types.CaseID, input RequestRevisionInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionRequestRevision)
	if err != nil {
		return nil, err
	}

	if input.Reason == "" {
		return nil, goerr.Wrap(ErrValidation, "revision reason is required", goerr.V(CaseIDKey, caseID))
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if c.Status != types.CaseStatusCompleted && c.Status != types.CaseStatusRejected {
		return nil, goerr.Wrap(ErrConflict, "only completed or rejected cases can enter revision",
			goerr.V(CaseIDKey, caseID), goerr.V(StatusKey, c.Status))
	}

	c.Status = types.CaseStatusRevisionRequested
	c.RevisionRequestedBy = caller.DisplayName()
	c.RevisionRequestedDate = uc.now()
	c.RevisionReason = input.Reason
	uc.appendNote(c, caller, types.ActionRequestRevision,
		fmt.Sprintf("revision requested by %s: %s", caller.DisplayName(), input.Reason), nil)

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, nil
}

// AddRevisionVerdict records the outcome of a revision. The case must be
// in the revision phase; the resulting status is one of
// revision_completed, completed, or reopened.
func (uc *UseCases) AddRevisionVerdict(ctx context.Context, caseID types.CaseID, input AddRevisionVerdictInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionAddRevisionVerdict)
	if err != nil {
		return nil, err
	}

	if input.Text == "" {
		return nil, goerr.Wrap(ErrValidation, "revision verdict text is required", goerr.V(CaseIDKey, caseID))
	}

	status := input.Status
	if status == "" {
		status = types.CaseStatusRevisionCompleted
	}
	switch status {
	case types.CaseStatusRevisionCompleted, types.CaseStatusCompleted, types.CaseStatusReopened:
	default:
		return nil, goerr.Wrap(ErrValidation, "invalid revision verdict status",
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

	if !c.Status.IsRevision() {
		return nil, goerr.Wrap(ErrConflict, "case is not in revision",
			goerr.V(CaseIDKey, caseID), goerr.V(StatusKey, c.Status))
	}

	c.Status = status
	c.RevisionVerdict = input.Text
	c.RevisionVerdictDate = verdictDate
	c.RevisionVerdictBy = caller.DisplayName()
	c.RevisionCompletedDate = uc.now()
	uc.appendNote(c, caller, types.ActionAddRevisionVerdict,
		fmt.Sprintf("revision verdict recorded by %s, case status now %s", caller.DisplayName(), status),
		map[string]string{"revision_verdict_status": status.String()})

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, nil
}

// closeIndictment mirrors a terminal case disposition onto the linked
// indictment. It runs before the case write so the two records are never
// observed with the case closed but the indictment open.
func (uc *UseCases) closeIndictment(ctx context.Context, caseID types.CaseID, closedDate time.Time, reason string, settle *SettlementMirror) (*model.Indictment, error) {
	ind, err := uc.repo.Indictment().GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up indictment", goerr.V(CaseIDKey, caseID))
	}
	if ind == nil {
		return nil, nil
	}

	ind.Status = types.IndictmentStatusCompleted
	ind.CaseClosed = true
	ind.CaseClosedDate = closedDate
	ind.CaseClosedReason = reason
	if settle != nil {
		ind.Settlement = true
		ind.SettlementDetails = settle.Details
		ind.SettlementDate = closedDate
		ind.SettlementBy = settle.By
	}

	updated, err := uc.repo.Indictment().Update(ctx, ind)
	if err != nil {
		return nil, goerr.Wrap(ErrPersistence, "failed to mirror disposition onto indictment",
			goerr.V(CaseIDKey, caseID), goerr.V(IndictmentKey, ind.ID), goerr.V("cause", err.Error()))
	}
	return updated, nil
}

// SettlementMirror carries the settlement fields mirrored onto the indictment
type SettlementMirror struct {
	Details string
	By      string
}

// CloseCase disposes a case outside of trial. Already completed or
// dismissed cases cannot be closed again.
func (uc *UseCases) CloseCase(ctx context.Context, caseID types.CaseID, input CloseCaseInput) (*model.Case, *model.Indictment, error) {
	caller, err := uc.authorize(ctx, types.ActionCloseCase)
	if err != nil {
		return nil, nil, err
	}

	if input.Reason == "" {
		return nil, nil, goerr.Wrap(ErrValidation, "closing reason is required", goerr.V(CaseIDKey, caseID))
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}

	if c.Status == types.CaseStatusCompleted || c.Status == types.CaseStatusDismissed {
		return nil, nil, goerr.Wrap(ErrConflict, "case is already disposed",
			goerr.V(CaseIDKey, caseID), goerr.V(StatusKey, c.Status))
	}

	now := uc.now()
	ind, err := uc.closeIndictment(ctx, caseID, now, input.Reason, nil)
	if err != nil {
		return nil, nil, err
	}

	uc.applyClosing(c, caller, now, input.Reason)
	uc.appendNote(c, caller, types.ActionCloseCase,
		fmt.Sprintf("case closed by %s: %s", caller.DisplayName(), input.Reason), nil)

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, ind, nil
}

// Settle disposes a case through an out-of-court settlement. The case
// must still be in an early stage (open, in progress, or pending). When
// no details are supplied, the terms of an existing plea deal serve as
// the settlement details.
func (uc *UseCases) Settle(ctx context.Context, caseID types.CaseID, input SettlementInput) (*model.Case, *model.Indictment, error) {
	caller, err := uc.authorize(ctx, types.ActionSettlement)
	if err != nil {
		return nil, nil, err
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}

	details := input.Details
	if details == "" && c.PleaDeal != nil {
		details = c.PleaDeal.Terms
	}
	if details == "" {
		return nil, nil, goerr.Wrap(ErrValidation, "settlement details are required", goerr.V(CaseIDKey, caseID))
	}

	switch c.Status {
	case types.CaseStatusOpen, types.CaseStatusInProgress, types.CaseStatusPending:
	default:
		return nil, nil, goerr.Wrap(ErrConflict, "case can no longer be settled",
			goerr.V(CaseIDKey, caseID), goerr.V(StatusKey, c.Status))
	}

	now := uc.now()
	ind, err := uc.closeIndictment(ctx, caseID, now, SettlementReason, &SettlementMirror{
		Details: details,
		By:      caller.DisplayName(),
	})
	if err != nil {
		return nil, nil, err
	}

	uc.applyClosing(c, caller, now, SettlementReason)
	c.SettlementDetails = details
	uc.appendNote(c, caller, types.ActionSettlement,
		fmt.Sprintf("case settled out of court by %s", caller.DisplayName()),
		map[string]string{"settlement_details": details})

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, ind, nil
}

// applyClosing sets the shared terminal disposition fields on a case
func (uc *UseCases) applyClosing(c *model.Case, caller *auth.Caller, closedDate time.Time, reason string) {
	c.Status = types.CaseStatusCompleted
	c.IsClosed = true
	c.ClosedDate = closedDate
	c.ClosedReason = reason
	c.ClosedBy = caller.DisplayName()
}

// ProcessPleaDeal records the decision on a pending plea deal and moves
// the case status accordingly.
func (uc *UseCases) ProcessPleaDeal(ctx context.Context, caseID types.CaseID, input ProcessPleaDealInput) (*model.Case, error) {
	caller, err := uc.authorize(ctx, types.ActionProcessPleaDeal)
	if err != nil {
		return nil, err
	}

	if !input.Response.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "plea deal response must be accepted or rejected",
			goerr.V(CaseIDKey, caseID), goerr.V("response", input.Response))
	}

	unlock := uc.locker.Lock(caseID)
	defer unlock()

	c, err := uc.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if c.PleaDeal == nil {
		return nil, goerr.Wrap(ErrNotFound, "case has no plea deal", goerr.V(CaseIDKey, caseID))
	}

	now := uc.now()
	c.PleaDeal.Status = input.Response
	c.PleaDeal.DateProcessed = now
	c.PleaDeal.ProcessedBy = caller.DisplayName()
	c.PleaDeal.ProcessedByID = caller.Sub
	c.Status = input.Response.CaseStatus()
	uc.appendNote(c, caller, types.ActionProcessPleaDeal,
		fmt.Sprintf("plea deal %s by %s", input.Response, caller.DisplayName()),
		map[string]string{"plea_deal_response": input.Response.String()})

	updated, err := uc.storeCase(ctx, c)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, updated, updated.Notes[0])
	return updated, nil
}
