package interfaces

import "github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"

// ListCaseOptions holds filtering options for listing cases
type ListCaseOptions struct {
	Status *types.CaseStatus
	Closed *bool
}

// ListCaseOption is a functional option for List
type ListCaseOption func(*ListCaseOptions)

// WithStatus filters cases by status
func WithStatus(status types.CaseStatus) ListCaseOption {
	return func(o *ListCaseOptions) {
		o.Status = &status
	}
}

// WithClosed filters cases by their closed flag
func WithClosed(closed bool) ListCaseOption {
	return func(o *ListCaseOptions) {
		o.Closed = &closed
	}
}

// NewListCaseOptions applies the given options
func NewListCaseOptions(opts ...ListCaseOption) *ListCaseOptions {
	o := &ListCaseOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
