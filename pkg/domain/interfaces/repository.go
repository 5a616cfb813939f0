package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Case() CaseRepository
	Indictment() IndictmentRepository

	// Close releases any resources held by the backend
	Close() error
}
