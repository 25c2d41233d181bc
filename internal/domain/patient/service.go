package patient

import (
	"context"
	"sort"
	"sync"

	"github.com/arogya/arogya/internal/platform/apperr"
	"github.com/arogya/arogya/internal/platform/validate"
)

// Sortable fields and orders for the Sort operation.
var sortFields = map[string]func(Patient) float64{
	"height": func(p Patient) float64 { return p.Height },
	"weight": func(p Patient) float64 { return p.Weight },
	"bmi":    func(p Patient) float64 { return p.BMI },
}

// Service orchestrates validation, derived-field computation and the
// document store.
//
// The store itself offers no isolation, so every load→mutate→save
// sequence runs under a single writer lock. This closes the last-write-
// wins race between concurrent mutations that the whole-file design
// otherwise permits.
type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full collection keyed by id, derived fields
// recomputed.
func (s *Service) List(ctx context.Context) (map[string]Patient, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Patient, len(records))
	for id, sp := range records {
		out[id] = sp.Record(id)
	}
	return out, nil
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id string) (Patient, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return Patient{}, err
	}

	sp, ok := records[id]
	if !ok {
		return Patient{}, apperr.NotFound("Patient not found")
	}
	return sp.Record(id), nil
}

// Sort returns every record ordered by the named numeric field.
// field must be one of height, weight, bmi; order asc or desc. The
// pre-sort sequence is ascending id order, and the sort is stable, so
// ties keep that sequence.
func (s *Service) Sort(ctx context.Context, field, order string) ([]Patient, error) {
	valuer, ok := sortFields[field]
	if !ok {
		return nil, apperr.InvalidArgument("invalid sort field, select from height, weight or bmi")
	}
	if order != "asc" && order != "desc" {
		return nil, apperr.InvalidArgument("invalid order, use asc or desc")
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	patients := make([]Patient, 0, len(ids))
	for _, id := range ids {
		patients = append(patients, records[id].Record(id))
	}

	sort.SliceStable(patients, func(i, j int) bool {
		if order == "desc" {
			return valuer(patients[i]) > valuer(patients[j])
		}
		return valuer(patients[i]) < valuer(patients[j])
	})
	return patients, nil
}

// Create validates and persists a new record. The id must not already
// exist.
func (s *Service) Create(ctx context.Context, p Patient) error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, exists := records[p.ID]; exists {
		return apperr.Conflict("Patient with this ID already exists")
	}

	records[p.ID] = p.Stored()
	return s.repo.Save(ctx, records)
}

// Update merges the present fields of u onto the stored record,
// re-validates the merged record as a whole and persists its primary
// fields. Derived fields are recomputed on the next read, never stored.
func (s *Service) Update(ctx context.Context, id string, u Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	existing, ok := records[id]
	if !ok {
		return apperr.NotFound("Patient not found")
	}

	merged := u.Apply(existing)
	full := merged.Record(id)
	if err := validate.Struct(full); err != nil {
		return err
	}

	records[id] = merged
	return s.repo.Save(ctx, records)
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return apperr.NotFound("Patient not found")
	}

	delete(records, id)
	return s.repo.Save(ctx, records)
}
