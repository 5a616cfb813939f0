package model

import (
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// Indictment is the formal charging document linked to at most one case.
// The disposition mirror fields are populated only when the case disposes,
// so the two records never disagree about whether the case is closed.
type Indictment struct {
	ID             types.IndictmentID     `firestore:"id" json:"id"`
	CaseID         types.CaseID           `firestore:"case_id" json:"case_id"`
	Content        string                 `firestore:"content" json:"content"`
	ProsecutorID   string                 `firestore:"prosecutor_id" json:"prosecutor_id"`
	ProsecutorName string                 `firestore:"prosecutor_name" json:"prosecutor_name"`
	Status         types.IndictmentStatus `firestore:"status" json:"status"`
	DateCreated    time.Time              `firestore:"date_created" json:"date_created"`

	// Disposition mirror fields
	Verdict           string    `firestore:"verdict,omitempty" json:"verdict,omitempty"`
	VerdictDate       time.Time `firestore:"verdict_date,omitempty" json:"verdict_date,omitempty"`
	CaseClosed        bool      `firestore:"case_closed" json:"case_closed"`
	CaseClosedDate    time.Time `firestore:"case_closed_date,omitempty" json:"case_closed_date,omitempty"`
	CaseClosedReason  string    `firestore:"case_closed_reason,omitempty" json:"case_closed_reason,omitempty"`
	Settlement        bool      `firestore:"settlement" json:"settlement"`
	SettlementDetails string    `firestore:"settlement_details,omitempty" json:"settlement_details,omitempty"`
	SettlementDate    time.Time `firestore:"settlement_date,omitempty" json:"settlement_date,omitempty"`
	SettlementBy      string    `firestore:"settlement_by,omitempty" json:"settlement_by,omitempty"`
}
