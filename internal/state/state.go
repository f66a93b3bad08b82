package state

import (
	"encoding/json"
	"fmt"
	"os"
)

type record struct {
	Available bool `json:"available"`
}

// FileStore keeps the last observed availability for one monitored target in
// a small JSON file. A missing file means no availability has been seen yet,
// so the first successful check always starts from "unavailable".
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the availability recorded by the previous pass. A missing
// file is not an error and reads as unavailable. A file that exists but
// cannot be parsed also reads as unavailable, with the parse error returned
// so the caller can log it.
func (s *FileStore) Load() (bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read state file %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return false, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	return rec.Available, nil
}

// Save overwrites the state file with the current availability.
func (s *FileStore) Save(available bool) error {
	raw, err := json.Marshal(record{Available: available})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write state file %s: %w", s.path, err)
	}
	return nil
}
