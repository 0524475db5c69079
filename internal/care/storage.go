package care

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is where pawpal keeps its state, relative to the working
// directory.
const DefaultDir = ".pawpal"

const stateFile = "state.json"

// State is the on-disk shape of a store. The owner record embeds its pets;
// tasks reference pets by ID only.
type State struct {
	Owner *Owner  `json:"owner"`
	Tasks []*Task `json:"tasks"`
}

// StatePath returns the state file path under dir.
func StatePath(dir string) string {
	return filepath.Join(dir, stateFile)
}

// Load reads and parses the state file under dir into a Store.
func Load(dir string) (*Store, error) {
	data, err := os.ReadFile(StatePath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no pawpal state found. Run 'pawpal init' first")
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Owner == nil {
		return nil, fmt.Errorf("state file has no owner")
	}

	// Reattach back-references; old state files may predate the field.
	for _, p := range state.Owner.Pets {
		p.Owner = state.Owner.Name
	}

	store := NewStore(state.Owner)
	store.tasks = state.Tasks
	return store, nil
}

// Save atomically writes the store's state under dir. Uses a temp file +
// rename so a crash never leaves a half-written state file.
func Save(dir string, store *Store) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	statePath := StatePath(dir)
	tmpPath := fmt.Sprintf("%s.tmp.%d", statePath, os.Getpid())

	state := State{Owner: store.owner, Tasks: store.tasks}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
