package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/bevuihoc/bevuihoc/internal/tracker"
)

// progressSchema guards the persisted blob: a record the app cannot
// make sense of is treated as absent rather than half-read.
const progressSchema = `{
	"type": "object",
	"required": ["version", "missedWords"],
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"missedWords": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "sound", "color"],
				"properties": {
					"id": {"type": "string"},
					"sound": {"type": "string", "minLength": 1},
					"color": {"type": "string"}
				}
			}
		},
		"lastStudyDate": {"type": "string"}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getProgressSchema compiles the progress schema once and caches it.
func getProgressSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(progressSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://progress.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://progress.json")
	})
	return compiledSchema, compileErr
}

// LoadProgress reads the persisted tracker state. A missing record, or
// one that fails schema validation, yields an empty Progress so a
// corrupt blob never blocks startup.
func (s *Store) LoadProgress() (tracker.Progress, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT value FROM progress WHERE key = ?", progressKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return tracker.Progress{}, nil
	}
	if err != nil {
		return tracker.Progress{}, fmt.Errorf("query progress: %w", err)
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return tracker.Progress{}, nil
	}
	schema, err := getProgressSchema()
	if err != nil {
		return tracker.Progress{}, fmt.Errorf("compile progress schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return tracker.Progress{}, nil
	}

	var p tracker.Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return tracker.Progress{}, nil
	}
	return p, nil
}

// SaveProgress replaces the persisted tracker state wholesale.
func (s *Store) SaveProgress(p tracker.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO progress (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		progressKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
