package state

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
)

// FileStore keeps each document as an indented JSON object on disk.
// A missing or unreadable file is an empty document, never an error.
type FileStore struct {
	ingredientsPath string
	overridesPath   string
}

func NewFileStore(ingredientsPath, overridesPath string) *FileStore {
	return &FileStore{
		ingredientsPath: ingredientsPath,
		overridesPath:   overridesPath,
	}
}

func (s *FileStore) Ingredients(_ context.Context) (map[string]bool, error) {
	return loadDocument(s.ingredientsPath), nil
}

func (s *FileStore) SaveIngredients(_ context.Context, state map[string]bool) error {
	return saveDocument(s.ingredientsPath, state)
}

func (s *FileStore) Overrides(_ context.Context) (map[string]bool, error) {
	return loadDocument(s.overridesPath), nil
}

func (s *FileStore) SaveOverrides(_ context.Context, overrides map[string]bool) error {
	return saveDocument(s.overridesPath, overrides)
}

func loadDocument(path string) map[string]bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", path).Msg("state file unreadable, treating as empty")
		}
		return map[string]bool{}
	}

	doc := map[string]bool{}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("state file malformed, treating as empty")
		return map[string]bool{}
	}
	return doc
}

func saveDocument(path string, doc map[string]bool) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
