package model_test

import (
	"testing"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCase_PrependNote(t *testing.T) {
	c := &model.Case{ID: "C-1"}

	first := model.Note{User: "alice", Action: types.ActionUpdateCase, Note: "first"}
	second := model.Note{User: "bob", Action: types.ActionCloseCase, Note: "second"}

	c.PrependNote(first)
	c.PrependNote(second)

	gt.Number(t, len(c.Notes)).Equal(2)
	gt.Value(t, c.Notes[0].Note).Equal("second")
	gt.Value(t, c.Notes[1].Note).Equal("first")
}

func TestCase_HasCoreFields(t *testing.T) {
	incident := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		c    model.Case
		want bool
	}{
		{"complete", model.Case{Defendant: "J. Doe", Charge: "robbery", IncidentDate: incident}, true},
		{"missing defendant", model.Case{Charge: "robbery", IncidentDate: incident}, false},
		{"missing charge", model.Case{Defendant: "J. Doe", IncidentDate: incident}, false},
		{"missing incident date", model.Case{Defendant: "J. Doe", Charge: "robbery"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.c.HasCoreFields()).Equal(tt.want)
		})
	}
}

func TestExpirationFrom(t *testing.T) {
	incident := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)
	gt.Bool(t, model.ExpirationFrom(incident).Equal(want)).True()
}
