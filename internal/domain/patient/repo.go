package patient

import "context"

// Repository is the whole-collection document store: the entire keyed
// mapping is loaded before and rewritten after each mutating operation.
type Repository interface {
	Load(ctx context.Context) (map[string]StoredPatient, error)
	Save(ctx context.Context, records map[string]StoredPatient) error
}
