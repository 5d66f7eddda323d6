// server/filesystem/fileops.go
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadJSON reads the file at path and unmarshals it into v. A missing file
// surfaces the underlying fs.ErrNotExist through the wrap; invalid JSON
// surfaces the unmarshal error.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// WriteJSON serializes v as indented JSON and writes it to path, creating
// parent directories as needed. The write goes to a temp file in the same
// directory and is renamed into place so a crash mid-write cannot leave a
// truncated record.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// MergeJSON reads the JSON object at path, shallow-merges the keys of
// partial over it, and writes the result back. Callers are responsible for
// serializing concurrent merges to the same path.
func MergeJSON(path string, partial map[string]any) error {
	existing := map[string]any{}
	if err := ReadJSON(path, &existing); err != nil {
		return err
	}
	for k, v := range partial {
		existing[k] = v
	}
	return WriteJSON(path, existing)
}

// List returns the file names in dir. A missing directory is created and
// reported as an empty listing rather than an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Remove deletes the file at path.
func Remove(path string) error {
	return os.Remove(path)
}

// RemoveTree deletes path and everything under it.
func RemoveTree(path string) error {
	return os.RemoveAll(path)
}
