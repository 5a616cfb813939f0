package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type caseRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCaseRepository(client *firestore.Client) *caseRepository {
	return &caseRepository{
		client: client,
	}
}

func (r *caseRepository) casesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_cases"
	}
	return "cases"
}

func (r *caseRepository) Insert(ctx context.Context, c *model.Case) error {
	stored := *c
	now := time.Now().UTC()
	if stored.DateCreated.IsZero() {
		stored.DateCreated = now
	}
	stored.DateUpdated = now

	// Doc.Create fails with AlreadyExists when the case number is taken,
	// which is the conflict signal the ID migration relies on.
	_, err := r.client.Collection(r.casesCollection()).Doc(string(c.ID)).Create(ctx, &stored)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(ErrAlreadyExists, "case already exists", goerr.V("id", c.ID))
		}
		return goerr.Wrap(err, "failed to insert case", goerr.V("id", c.ID))
	}

	return nil
}

func (r *caseRepository) Get(ctx context.Context, id types.CaseID) (*model.Case, error) {
	docSnap, err := r.client.Collection(r.casesCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get case", goerr.V("id", id))
	}

	var c model.Case
	if err := docSnap.DataTo(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode case", goerr.V("id", id))
	}

	return &c, nil
}

func (r *caseRepository) List(ctx context.Context, opts ...interfaces.ListCaseOption) ([]*model.Case, error) {
	o := interfaces.NewListCaseOptions(opts...)

	query := r.client.Collection(r.casesCollection()).Query
	if o.Status != nil {
		query = query.Where("status", "==", o.Status.String())
	}
	if o.Closed != nil {
		query = query.Where("is_closed", "==", *o.Closed)
	}
	query = query.OrderBy("date_updated", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var result []*model.Case
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cases")
		}

		var c model.Case
		if err := docSnap.DataTo(&c); err != nil {
			return nil, goerr.Wrap(err, "failed to decode case", goerr.V("doc", docSnap.Ref.ID))
		}
		result = append(result, &c)
	}

	if result == nil {
		result = []*model.Case{}
	}
	return result, nil
}

func (r *caseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	docRef := r.client.Collection(r.casesCollection()).Doc(string(c.ID))

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", c.ID))
		}
		return nil, goerr.Wrap(err, "failed to get case", goerr.V("id", c.ID))
	}

	var prior model.Case
	if err := existing.DataTo(&prior); err != nil {
		return nil, goerr.Wrap(err, "failed to decode case", goerr.V("id", c.ID))
	}

	stored := *c
	stored.DateCreated = prior.DateCreated
	stored.DateUpdated = time.Now().UTC()

	if _, err := docRef.Set(ctx, &stored); err != nil {
		return nil, goerr.Wrap(err, "failed to update case", goerr.V("id", c.ID))
	}

	return &stored, nil
}

func (r *caseRepository) Delete(ctx context.Context, id types.CaseID) error {
	docRef := r.client.Collection(r.casesCollection()).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get case", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete case", goerr.V("id", id))
	}

	return nil
}
