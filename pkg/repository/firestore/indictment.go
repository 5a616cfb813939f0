package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type indictmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newIndictmentRepository(client *firestore.Client) *indictmentRepository {
	return &indictmentRepository{
		client: client,
	}
}

func (r *indictmentRepository) indictmentsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_indictments"
	}
	return "indictments"
}

func (r *indictmentRepository) Insert(ctx context.Context, ind *model.Indictment) error {
	stored := *ind
	if stored.DateCreated.IsZero() {
		stored.DateCreated = time.Now().UTC()
	}

	_, err := r.client.Collection(r.indictmentsCollection()).Doc(string(ind.ID)).Create(ctx, &stored)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(ErrAlreadyExists, "indictment already exists", goerr.V("id", ind.ID))
		}
		return goerr.Wrap(err, "failed to insert indictment", goerr.V("id", ind.ID))
	}

	return nil
}

func (r *indictmentRepository) Get(ctx context.Context, id types.IndictmentID) (*model.Indictment, error) {
	docSnap, err := r.client.Collection(r.indictmentsCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "indictment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get indictment", goerr.V("id", id))
	}

	var ind model.Indictment
	if err := docSnap.DataTo(&ind); err != nil {
		return nil, goerr.Wrap(err, "failed to decode indictment", goerr.V("id", id))
	}

	return &ind, nil
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
	iter := r.client.Collection(r.indictmentsCollection()).
		Where("case_id", "==", string(caseID)).
		OrderBy("date_created", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var result []*model.Indictment
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate indictments", goerr.V("case_id", caseID))
		}

		var ind model.Indictment
		if err := docSnap.DataTo(&ind); err != nil {
			return nil, goerr.Wrap(err, "failed to decode indictment", goerr.V("doc", docSnap.Ref.ID))
		}
		result = append(result, &ind)
	}

	if result == nil {
		result = []*model.Indictment{}
	}
	return result, nil
}

func (r *indictmentRepository) Update(ctx context.Context, ind *model.Indictment) (*model.Indictment, error) {
	docRef := r.client.Collection(r.indictmentsCollection()).Doc(string(ind.ID))

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "indictment not found", goerr.V("id", ind.ID))
		}
		return nil, goerr.Wrap(err, "failed to get indictment", goerr.V("id", ind.ID))
	}

	var prior model.Indictment
	if err := existing.DataTo(&prior); err != nil {
		return nil, goerr.Wrap(err, "failed to decode indictment", goerr.V("id", ind.ID))
	}

	stored := *ind
	stored.DateCreated = prior.DateCreated

	if _, err := docRef.Set(ctx, &stored); err != nil {
		return nil, goerr.Wrap(err, "failed to update indictment", goerr.V("id", ind.ID))
	}

	return &stored, nil
}
