package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/repository/firestore"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newTestIndictment(caseID types.CaseID) *model.Indictment {
	return &model.Indictment{
		ID:             types.NewIndictmentID(),
		CaseID:         caseID,
		Content:        "The defendant is charged with armed robbery.",
		ProsecutorID:   "U100",
		ProsecutorName: "A. Vance",
		Status:         types.IndictmentStatusPending,
	}
}

func runIndictmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Insert stores indictment and Get retrieves it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ind := newTestIndictment(caseID(t, "ind"))
		gt.NoError(t, repo.Indictment().Insert(ctx, ind)).Required()

		retrieved, err := repo.Indictment().Get(ctx, ind.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.CaseID).Equal(ind.CaseID)
		gt.Value(t, retrieved.Content).Equal(ind.Content)
		gt.Value(t, retrieved.Status).Equal(types.IndictmentStatusPending)
		gt.Bool(t, retrieved.DateCreated.IsZero()).False()
	})

	t.Run("Get returns error for non-existent indictment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Indictment().Get(ctx, types.NewIndictmentID())
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("GetByCaseID returns nil when no indictment exists", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ind, err := repo.Indictment().GetByCaseID(ctx, caseID(t, "none"))
		gt.NoError(t, err).Required()
		gt.Value(t, ind).Nil()
	})

	t.Run("GetByCaseID finds indictment by foreign key", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		cid := caseID(t, "fk")
		ind := newTestIndictment(cid)
		gt.NoError(t, repo.Indictment().Insert(ctx, ind)).Required()

		found, err := repo.Indictment().GetByCaseID(ctx, cid)
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil()
		gt.Value(t, found.ID).Equal(ind.ID)
	})

	t.Run("ListByCaseID returns indictments oldest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		cid := caseID(t, "list")
		first := newTestIndictment(cid)
		first.DateCreated = time.Now().UTC().Add(-time.Hour)
		gt.NoError(t, repo.Indictment().Insert(ctx, first)).Required()

		second := newTestIndictment(cid)
		second.DateCreated = time.Now().UTC()
		gt.NoError(t, repo.Indictment().Insert(ctx, second)).Required()

		list, err := repo.Indictment().ListByCaseID(ctx, cid)
		gt.NoError(t, err).Required()
		gt.Number(t, len(list)).Equal(2)
		gt.Value(t, list[0].ID).Equal(first.ID)
		gt.Value(t, list[1].ID).Equal(second.ID)
	})

	t.Run("Update mirrors disposition fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ind := newTestIndictment(caseID(t, "mirror"))
		gt.NoError(t, repo.Indictment().Insert(ctx, ind)).Required()

		stored, err := repo.Indictment().Get(ctx, ind.ID)
		gt.NoError(t, err).Required()

		stored.Status = types.IndictmentStatusCompleted
		stored.CaseClosed = true
		stored.CaseClosedReason = "out-of-court settlement"
		stored.Settlement = true
		stored.SettlementDetails = "restitution paid"

		updated, err := repo.Indictment().Update(ctx, stored)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.IndictmentStatusCompleted)
		gt.Bool(t, updated.CaseClosed).True()
		gt.Bool(t, updated.Settlement).True()
		gt.Bool(t, updated.DateCreated.Equal(stored.DateCreated)).True()

		retrieved, err := repo.Indictment().Get(ctx, ind.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.SettlementDetails).Equal("restitution paid")
	})

	t.Run("Update fails for non-existent indictment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Indictment().Update(ctx, newTestIndictment(caseID(t, "ghost")))
		gt.Value(t, err).NotNil()
	})
}

func TestIndictmentRepository_Memory(t *testing.T) {
	runIndictmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestIndictmentRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	runIndictmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix(fmt.Sprintf("test_%d", time.Now().UnixNano())))
		gt.NoError(t, err).Required()
		return repo
	})
}
