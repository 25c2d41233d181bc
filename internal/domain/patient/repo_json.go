package patient

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/arogya/arogya/internal/platform/apperr"
)

// JSONRepo persists the collection as a single JSON object mapping id to
// record at a fixed path. A missing or unparseable file is an IO failure
// propagated to the caller, not recovered; the seed command creates the
// initial file.
type JSONRepo struct {
	path string
}

func NewJSONRepo(path string) *JSONRepo {
	return &JSONRepo{path: path}
}

func (r *JSONRepo) Load(_ context.Context) (map[string]StoredPatient, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperr.IO("load store", err)
	}

	records := make(map[string]StoredPatient)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperr.IO("decode store", err)
	}
	return records, nil
}

// Save rewrites the whole collection. The blob is written to a temp file
// in the store's directory and renamed into place so a crash mid-write
// never leaves a truncated store behind.
func (r *JSONRepo) Save(_ context.Context, records map[string]StoredPatient) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperr.IO("encode store", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return apperr.IO("create temp store", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.IO("write store", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.IO("close store", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return apperr.IO("replace store", err)
	}
	return nil
}
