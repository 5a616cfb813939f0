package model

import (
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// Note is a single immutable entry in a case's audit trail. The free-text
// Note field is for human display; Action and Metadata carry the same
// information in queryable form.
type Note struct {
	Date     time.Time         `firestore:"date" json:"date"`
	User     string            `firestore:"user" json:"user"`
	Action   types.Action      `firestore:"action" json:"action"`
	Metadata map[string]string `firestore:"metadata,omitempty" json:"metadata,omitempty"`
	Note     string            `firestore:"note" json:"note"`
}

// PleaDeal is an optional sub-record representing an out-of-court offer
// awaiting acceptance or rejection.
type PleaDeal struct {
	Terms         string                 `firestore:"terms" json:"terms"`
	Status        types.PleaDealResponse `firestore:"status,omitempty" json:"status,omitempty"`
	DateProcessed time.Time              `firestore:"date_processed,omitempty" json:"date_processed,omitempty"`
	ProcessedBy   string                 `firestore:"processed_by,omitempty" json:"processed_by,omitempty"`
	ProcessedByID string                 `firestore:"processed_by_id,omitempty" json:"processed_by_id,omitempty"`
}

// Case is the central record tracking a prosecution from filing to disposition
type Case struct {
	ID types.CaseID `firestore:"id" json:"id"`

	// Descriptive fields
	Defendant    string    `firestore:"defendant" json:"defendant"`
	Charge       string    `firestore:"charge" json:"charge"`
	IncidentDate time.Time `firestore:"incident_date" json:"incident_date"`
	District     string    `firestore:"district" json:"district"`
	Prosecutor   string    `firestore:"prosecutor,omitempty" json:"prosecutor,omitempty"`
	Judge        string    `firestore:"judge,omitempty" json:"judge,omitempty"`
	BailAmount   string    `firestore:"bail_amount,omitempty" json:"bail_amount,omitempty"`
	Witnesses    string    `firestore:"witnesses,omitempty" json:"witnesses,omitempty"`
	Victims      string    `firestore:"victims,omitempty" json:"victims,omitempty"`

	// Statute-of-limitations baseline, recomputed on every field edit
	ExpirationDate time.Time `firestore:"expiration_date,omitempty" json:"expiration_date,omitempty"`

	// Lifecycle fields
	Status       types.CaseStatus `firestore:"status" json:"status"`
	IsClosed     bool             `firestore:"is_closed" json:"is_closed"`
	ClosedDate   time.Time        `firestore:"closed_date,omitempty" json:"closed_date,omitempty"`
	ClosedReason string           `firestore:"closed_reason,omitempty" json:"closed_reason,omitempty"`
	ClosedBy     string           `firestore:"closed_by,omitempty" json:"closed_by,omitempty"`

	// Revision fields
	RevisionRequestedBy   string    `firestore:"revision_requested_by,omitempty" json:"revision_requested_by,omitempty"`
	RevisionRequestedDate time.Time `firestore:"revision_requested_date,omitempty" json:"revision_requested_date,omitempty"`
	RevisionReason        string    `firestore:"revision_reason,omitempty" json:"revision_reason,omitempty"`
	RevisionVerdict       string    `firestore:"revision_verdict,omitempty" json:"revision_verdict,omitempty"`
	RevisionVerdictDate   time.Time `firestore:"revision_verdict_date,omitempty" json:"revision_verdict_date,omitempty"`
	RevisionVerdictBy     string    `firestore:"revision_verdict_by,omitempty" json:"revision_verdict_by,omitempty"`
	RevisionCompletedDate time.Time `firestore:"revision_completed_date,omitempty" json:"revision_completed_date,omitempty"`

	// Disposition fields
	Verdict           string    `firestore:"verdict,omitempty" json:"verdict,omitempty"`
	VerdictDate       time.Time `firestore:"verdict_date,omitempty" json:"verdict_date,omitempty"`
	VerdictBy         string    `firestore:"verdict_by,omitempty" json:"verdict_by,omitempty"`
	SettlementDetails string    `firestore:"settlement_details,omitempty" json:"settlement_details,omitempty"`

	PleaDeal *PleaDeal `firestore:"plea_deal,omitempty" json:"plea_deal,omitempty"`

	// Audit trail, newest first. Append-only: entries are never edited
	// or removed once prepended.
	Notes []Note `firestore:"notes" json:"notes"`

	DateCreated time.Time `firestore:"date_created" json:"date_created"`
	DateUpdated time.Time `firestore:"date_updated" json:"date_updated"`
}

// PrependNote adds a note at index 0 without touching existing entries
func (c *Case) PrependNote(n Note) {
	c.Notes = append([]Note{n}, c.Notes...)
}

// HasCoreFields reports whether the case carries the fields an indictment
// submission requires: defendant, charge and incident date.
func (c *Case) HasCoreFields() bool {
	return c.Defendant != "" && c.Charge != "" && !c.IncidentDate.IsZero()
}

// ExpirationFrom computes the statute-of-limitations baseline for an
// incident date. The authoritative value may be overridden by the
// expiration-check run before editing begins.
func ExpirationFrom(incidentDate time.Time) time.Time {
	return incidentDate.AddDate(0, 0, 21)
}
