package patient

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arogya/arogya/internal/platform/apperr"
)

func newTestJSONRepo(t *testing.T) *JSONRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}
	return NewJSONRepo(path)
}

func TestJSONRepo_SaveThenLoad(t *testing.T) {
	repo := newTestJSONRepo(t)
	ctx := context.Background()

	in := map[string]StoredPatient{
		"P001": {Name: "John Doe", City: "Delhi", Age: 30, Gender: GenderMale, Height: 1.75, Weight: 70},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out["P001"] != in["P001"] {
		t.Errorf("round trip mismatch: %+v != %+v", out["P001"], in["P001"])
	}
}

func TestJSONRepo_LoadMissingFile(t *testing.T) {
	repo := NewJSONRepo(filepath.Join(t.TempDir(), "nope.json"))
	_, err := repo.Load(context.Background())
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindIO {
		t.Errorf("expected io error for missing store, got %v", err)
	}
}

func TestJSONRepo_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patients.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	_, err := NewJSONRepo(path).Load(context.Background())
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindIO {
		t.Errorf("expected io error for corrupt store, got %v", err)
	}
}

func TestJSONRepo_SaveOverwritesWholeCollection(t *testing.T) {
	repo := newTestJSONRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, map[string]StoredPatient{"P001": {Name: "A", City: "X", Age: 1, Gender: GenderMale, Height: 1, Weight: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, map[string]StoredPatient{"P002": {Name: "B", City: "Y", Age: 2, Gender: GenderFemale, Height: 1, Weight: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := out["P001"]; ok {
		t.Error("expected P001 to be gone after whole-collection rewrite")
	}
	if _, ok := out["P002"]; !ok {
		t.Error("expected P002 to be present")
	}
}

func TestJSONRepo_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patients.json")
	repo := NewJSONRepo(path)

	if err := repo.Save(context.Background(), map[string]StoredPatient{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "patients.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only patients.json in store dir, got %v", names)
	}
}
