package types_test

import (
	"testing"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

func TestCaseStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.CaseStatus
		want   bool
	}{
		{"open", types.CaseStatusOpen, true},
		{"completed", types.CaseStatusCompleted, true},
		{"revision requested", types.CaseStatusRevisionRequested, true},
		{"plea deal accepted", types.CaseStatusPleaDealAccepted, true},
		{"empty", types.CaseStatus(""), false},
		{"unknown", types.CaseStatus("archived"), false},
		{"uppercase", types.CaseStatus("OPEN"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("CaseStatus.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaseStatus_IsRevision(t *testing.T) {
	tests := []struct {
		name   string
		status types.CaseStatus
		want   bool
	}{
		{"revision requested", types.CaseStatusRevisionRequested, true},
		{"revision completed", types.CaseStatusRevisionCompleted, true},
		{"completed", types.CaseStatusCompleted, false},
		{"open", types.CaseStatusOpen, false},
		// Membership check must not behave like substring matching.
		{"unknown revision-like value", types.CaseStatus("revision_pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsRevision(); got != tt.want {
				t.Errorf("CaseStatus.IsRevision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaseStatus_Normalize(t *testing.T) {
	if got := types.CaseStatus("").Normalize(); got != types.CaseStatusOpen {
		t.Errorf("Normalize() = %v, want %v", got, types.CaseStatusOpen)
	}
	if got := types.CaseStatusPending.Normalize(); got != types.CaseStatusPending {
		t.Errorf("Normalize() = %v, want %v", got, types.CaseStatusPending)
	}
}

func TestParseIndictmentStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"pending", "pending", false},
		{"scheduled", "scheduled", false},
		{"completed", "completed", false},
		{"empty", "", true},
		{"case-only status", "dismissed", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := types.ParseIndictmentStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseIndictmentStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestIndictmentStatus_IsOpen(t *testing.T) {
	tests := []struct {
		status types.IndictmentStatus
		want   bool
	}{
		{types.IndictmentStatusPending, true},
		{types.IndictmentStatusAccepted, true},
		{types.IndictmentStatusScheduled, true},
		{types.IndictmentStatusCompleted, false},
		{types.IndictmentStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsOpen(); got != tt.want {
				t.Errorf("IndictmentStatus.IsOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"prosecutor", "prosecutor", false},
		{"marshal", "marshal", false},
		{"administrator", "administrator", false},
		{"empty", "", true},
		{"unknown", "detective", true},
		{"uppercase", "Judge", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := types.ParseRole(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range types.AllActions() {
		parsed, err := types.ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q) unexpected error: %v", a, err)
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v", a, parsed)
		}
	}
	if _, err := types.ParseAction("delete_case"); err == nil {
		t.Error("ParseAction(delete_case) expected error")
	}
}

func TestPleaDealResponse_CaseStatus(t *testing.T) {
	if got := types.PleaDealAccepted.CaseStatus(); got != types.CaseStatusPleaDealAccepted {
		t.Errorf("CaseStatus() = %v", got)
	}
	if got := types.PleaDealRejected.CaseStatus(); got != types.CaseStatusPleaDealRejected {
		t.Errorf("CaseStatus() = %v", got)
	}
	if _, err := types.ParsePleaDealResponse("maybe"); err == nil {
		t.Error("ParsePleaDealResponse(maybe) expected error")
	}
}

func TestCaseID_Validate(t *testing.T) {
	if err := types.CaseID("C-100").Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := types.CaseID("").Validate(); err == nil {
		t.Error("Validate() expected error for empty ID")
	}
}

func TestNewIndictmentID(t *testing.T) {
	a := types.NewIndictmentID()
	b := types.NewIndictmentID()
	if a == "" || b == "" {
		t.Error("NewIndictmentID() returned empty ID")
	}
	if a == b {
		t.Error("NewIndictmentID() returned duplicate IDs")
	}
}
