// server/filesystem/fileops_test.go
package filesystem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theranotes/server/filesystem"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record.json")

	in := map[string]any{"first_name": "Ada", "last_name": "Lovelace"}
	require.NoError(t, filesystem.WriteJSON(path, in))

	out := map[string]any{}
	require.NoError(t, filesystem.ReadJSON(path, &out))
	require.Equal(t, in, out)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "record.json")

	require.NoError(t, filesystem.WriteJSON(path, map[string]any{"ok": true}))
	require.True(t, filesystem.Exists(path))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, filesystem.WriteJSON(filepath.Join(dir, "record.json"), map[string]any{"ok": true}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "record.json", entries[0].Name())
}

func TestReadMissingFile(t *testing.T) {
	err := filesystem.ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &map[string]any{})
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	err := filesystem.ReadJSON(path, &map[string]any{})
	require.Error(t, err)
	require.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestMergeShallow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, filesystem.WriteJSON(path, map[string]any{
		"session_type": "intake",
		"notes":        "initial visit",
	}))

	require.NoError(t, filesystem.MergeJSON(path, map[string]any{
		"ai_summary": "summary",
		"notes":      "updated",
	}))

	out := map[string]any{}
	require.NoError(t, filesystem.ReadJSON(path, &out))
	require.Equal(t, "intake", out["session_type"])
	require.Equal(t, "updated", out["notes"])
	require.Equal(t, "summary", out["ai_summary"])
}

func TestMergeMissingFile(t *testing.T) {
	err := filesystem.MergeJSON(filepath.Join(t.TempDir(), "absent.json"), map[string]any{"k": "v"})
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestListCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet")

	names, err := filesystem.List(dir)
	require.NoError(t, err)
	require.Empty(t, names)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestListSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))

	names, err := filesystem.List(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.json"}, names)
}

func TestRemoveTree(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, filesystem.WriteJSON(filepath.Join(sub, "a.json"), map[string]any{}))

	require.NoError(t, filesystem.RemoveTree(sub))
	require.False(t, filesystem.Exists(sub))
}
