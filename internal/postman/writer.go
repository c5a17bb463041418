package postman

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteCollection serializes the collection as indented JSON to path,
// creating parent directories if needed.
func WriteCollection(col *Collection, path string) error {
	return writeJSON(col, path, "collection")
}

// WriteEnvironment serializes the environment as indented JSON to path.
func WriteEnvironment(env *Environment, path string) error {
	return writeJSON(env, path, "environment")
}

func writeJSON(v any, path, what string) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", what, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("writing %s %s: %w", what, path, err)
	}

	return nil
}
