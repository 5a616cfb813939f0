package memory

import (
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors shared by all in-memory repositories
var (
	ErrNotFound      = goerr.New("record not found")
	ErrAlreadyExists = goerr.New("record already exists")
)

// Memory is an in-memory Repository implementation for development and tests
type Memory struct {
	caseRepo       *caseRepository
	indictmentRepo *indictmentRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		caseRepo:       newCaseRepository(),
		indictmentRepo: newIndictmentRepository(),
	}
}

func (m *Memory) Case() interfaces.CaseRepository {
	return m.caseRepo
}

func (m *Memory) Indictment() interfaces.IndictmentRepository {
	return m.indictmentRepo
}

func (m *Memory) Close() error {
	return nil
}
