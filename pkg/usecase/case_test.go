package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/repository/memory"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/usecase"
	"github.com/m-mizutani/gt"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newUseCases(opts ...usecase.Option) (*usecase.UseCases, *memory.Memory) {
	repo := memory.New()
	opts = append([]usecase.Option{
		usecase.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return usecase.New(repo, opts...), repo
}

func callerCtx(roles ...types.Role) context.Context {
	return auth.ContextWithCaller(context.Background(), &auth.Caller{
		Sub:   "U1234",
		Name:  "Jane Doe",
		Roles: roles,
	})
}

func seedCase(t *testing.T, uc *usecase.UseCases, id types.CaseID) {
	t.Helper()
	_, err := uc.CreateCase(callerCtx(types.RoleProsecutor), usecase.CreateCaseInput{
		ID:           id,
		Defendant:    "John Smith",
		Charge:       "grand larceny",
		IncidentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		District:     "eastern",
	})
	gt.NoError(t, err).Required()
}

func TestCreateCase(t *testing.T) {
	uc, _ := newUseCases()
	ctx := callerCtx(types.RoleProsecutor)

	c, err := uc.CreateCase(ctx, usecase.CreateCaseInput{
		ID:           "C-100",
		Defendant:    "John Smith",
		Charge:       "grand larceny",
		IncidentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		District:     "eastern",
	})
	gt.NoError(t, err).Required()

	gt.Value(t, c.ID).Equal("C-100")
	gt.Value(t, c.Status).Equal(types.CaseStatusOpen)
	gt.Value(t, c.ExpirationDate).Equal(time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC))
	gt.Array(t, c.Notes).Length(1)
	gt.Value(t, c.Notes[0].Note).Equal("case filed against John Smith")
	gt.Value(t, c.Notes[0].User).Equal("Jane Doe")

	t.Run("duplicate case number is rejected", func(t *testing.T) {
		_, err := uc.CreateCase(ctx, usecase.CreateCaseInput{
			ID:           "C-100",
			Defendant:    "Someone Else",
			Charge:       "fraud",
			IncidentDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			District:     "western",
		})
		gt.Error(t, err).Is(usecase.ErrConflict)
	})

	t.Run("missing required field is rejected", func(t *testing.T) {
		_, err := uc.CreateCase(ctx, usecase.CreateCaseInput{
			ID:           "C-101",
			Defendant:    "John Smith",
			IncidentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			District:     "eastern",
		})
		gt.Error(t, err).Is(usecase.ErrValidation)
	})
}

func TestUpdateCase(t *testing.T) {
	uc, _ := newUseCases()
	seedCase(t, uc, "C-100")
	ctx := callerCtx(types.RoleClerk)

	input := usecase.UpdateCaseInput{
		Defendant:    "John Smith",
		Charge:       "grand larceny, resisting arrest",
		IncidentDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		District:     "eastern",
		Judge:        "Hon. R. Vance",
		BailAmount:   "25000",
	}

	t.Run("fields are overwritten and expiration recomputed", func(t *testing.T) {
		c, err := uc.UpdateCase(ctx, "C-100", input)
		gt.NoError(t, err).Required()

		gt.Value(t, c.Charge).Equal("grand larceny, resisting arrest")
		gt.Value(t, c.Judge).Equal("Hon. R. Vance")
		gt.Value(t, c.ExpirationDate).Equal(time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC))
		gt.Value(t, c.Status).Equal(types.CaseStatusOpen)
	})

	t.Run("no note text means no new note", func(t *testing.T) {
		before, err := uc.GetCase(ctx, "C-100")
		gt.NoError(t, err).Required()

		c, err := uc.UpdateCase(ctx, "C-100", input)
		gt.NoError(t, err).Required()
		gt.Array(t, c.Notes).Length(len(before.Notes))
	})

	t.Run("note text prepends exactly one note", func(t *testing.T) {
		before, err := uc.GetCase(ctx, "C-100")
		gt.NoError(t, err).Required()

		withNote := input
		withNote.NewNote = "bail hearing moved to Friday"
		c, err := uc.UpdateCase(ctx, "C-100", withNote)
		gt.NoError(t, err).Required()

		gt.Array(t, c.Notes).Length(len(before.Notes) + 1)
		gt.Value(t, c.Notes[0].Note).Equal("bail hearing moved to Friday")
		// Existing entries keep their order below the new one
		gt.Value(t, c.Notes[1]).Equal(before.Notes[0])
	})

	t.Run("missing required field is rejected", func(t *testing.T) {
		bad := input
		bad.Defendant = ""
		_, err := uc.UpdateCase(ctx, "C-100", bad)
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("unknown case number", func(t *testing.T) {
		_, err := uc.UpdateCase(ctx, "C-999", input)
		gt.Error(t, err).Is(usecase.ErrNotFound)
	})
}

func TestUpdateCaseID(t *testing.T) {
	ctx := callerCtx(types.RoleAdministrator)

	t.Run("record moves to the new number unchanged", func(t *testing.T) {
		uc, _ := newUseCases()
		seedCase(t, uc, "C-100")
		before, err := uc.GetCase(ctx, "C-100")
		gt.NoError(t, err).Required()

		c, err := uc.UpdateCaseID(ctx, "C-100", "C-200")
		gt.NoError(t, err).Required()

		gt.Value(t, c.ID).Equal("C-200")
		gt.Value(t, c.Defendant).Equal(before.Defendant)
		gt.Value(t, c.Charge).Equal(before.Charge)
		gt.Value(t, c.Status).Equal(before.Status)
		gt.Array(t, c.Notes).Length(len(before.Notes))

		_, err = uc.GetCase(ctx, "C-100")
		gt.Error(t, err).Is(usecase.ErrNotFound)
	})

	t.Run("linked indictment is repointed", func(t *testing.T) {
		uc, _ := newUseCases()
		seedCase(t, uc, "C-100")
		_, ind, err := uc.SubmitIndictment(callerCtx(types.RoleProsecutor), "C-100", usecase.SubmitIndictmentInput{
			Text: "The State charges the defendant as follows.",
		})
		gt.NoError(t, err).Required()

		_, err = uc.UpdateCaseID(ctx, "C-100", "C-200")
		gt.NoError(t, err).Required()

		moved, err := uc.GetIndictmentByCase(ctx, "C-200")
		gt.NoError(t, err).Required()
		gt.Value(t, moved.ID).Equal(ind.ID)
		gt.Value(t, moved.CaseID).Equal(types.CaseID("C-200"))

		_, err = uc.GetIndictmentByCase(ctx, "C-100")
		gt.Error(t, err).Is(usecase.ErrNotFound)
	})

	t.Run("rename onto the same number is a conflict", func(t *testing.T) {
		uc, _ := newUseCases()
		seedCase(t, uc, "C-100")

		_, err := uc.UpdateCaseID(ctx, "C-100", "C-100")
		gt.Error(t, err).Is(usecase.ErrConflict)
	})

	t.Run("rename onto an existing number is a conflict", func(t *testing.T) {
		uc, _ := newUseCases()
		seedCase(t, uc, "C-100")
		seedCase(t, uc, "C-200")

		_, err := uc.UpdateCaseID(ctx, "C-100", "C-200")
		gt.Error(t, err).Is(usecase.ErrConflict)

		// Both records still resolve
		_, err = uc.GetCase(ctx, "C-100")
		gt.NoError(t, err)
		_, err = uc.GetCase(ctx, "C-200")
		gt.NoError(t, err)
	})

	t.Run("empty new number is rejected", func(t *testing.T) {
		uc, _ := newUseCases()
		seedCase(t, uc, "C-100")

		_, err := uc.UpdateCaseID(ctx, "C-100", "")
		gt.Error(t, err).Is(usecase.ErrValidation)
	})
}

func TestRoleGuards(t *testing.T) {
	uc, _ := newUseCases()
	seedCase(t, uc, "C-100")

	input := usecase.UpdateCaseInput{
		Defendant:    "John Smith",
		Charge:       "grand larceny",
		IncidentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		District:     "eastern",
	}

	t.Run("marshal may not edit a case", func(t *testing.T) {
		_, err := uc.UpdateCase(callerCtx(types.RoleMarshal), "C-100", input)
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("clerk may not rename a case", func(t *testing.T) {
		_, err := uc.UpdateCaseID(callerCtx(types.RoleClerk), "C-100", "C-200")
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("missing caller identity is forbidden", func(t *testing.T) {
		_, err := uc.UpdateCase(context.Background(), "C-100", input)
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})

	t.Run("guard runs before existence lookup", func(t *testing.T) {
		_, err := uc.UpdateCase(callerCtx(types.RoleMarshal), "C-999", input)
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})
}
