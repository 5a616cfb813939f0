package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors shared by all Firestore repositories
var (
	ErrNotFound      = goerr.New("record not found")
	ErrAlreadyExists = goerr.New("record already exists")
)

// Firestore is a Repository implementation backed by Google Cloud Firestore
type Firestore struct {
	client         *firestore.Client
	caseRepo       *caseRepository
	indictmentRepo *indictmentRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests
// sharing one Firestore database
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.caseRepo.collectionPrefix = prefix
		f.indictmentRepo.collectionPrefix = prefix
	}
}

// New creates a Firestore-backed repository
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:         client,
		caseRepo:       newCaseRepository(client),
		indictmentRepo: newIndictmentRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Case() interfaces.CaseRepository {
	return f.caseRepo
}

func (f *Firestore) Indictment() interfaces.IndictmentRepository {
	return f.indictmentRepo
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
