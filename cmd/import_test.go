package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kalorie.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing import file failed: %v", err)
	}
	return path
}

func TestImportEntries(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	seedEntries(t, [2]string{"999", "will be replaced"})

	path := writeImportFile(t, `[
		{"id": 1, "name": "Lunch", "kcal": 600, "date": "2025-03-10"},
		{"id": 2, "kcal": 300, "date": "2025-03-09", "note": "snack"},
		{"id": 3, "name": "invalid, no kcal", "date": "2025-03-09"}
	]`)

	importEntries(path)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Imported 2 entries") {
		t.Errorf("expected import count, got: %s", stdout.String())
	}

	store, _ := deps.OpenStore()
	if store.Len() != 2 {
		t.Errorf("Len() = %d, expected whole-collection replacement", store.Len())
	}
}

func TestImportEntriesNotAList(t *testing.T) {
	d, _, stderr := testDeps(t)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	seedEntries(t, [2]string{"100", "keep me"})

	importEntries(writeImportFile(t, `{"id": 1, "kcal": 600, "date": "2025-03-10"}`))

	if !strings.Contains(stderr.String(), "does not contain a list") {
		t.Errorf("expected not-a-list error, got: %s", stderr.String())
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", exitCode)
	}

	store, _ := deps.OpenStore()
	if store.Len() != 1 {
		t.Errorf("Len() = %d, expected failed import to leave entries untouched", store.Len())
	}
}

func TestImportEntriesInvalidJSON(t *testing.T) {
	d, _, stderr := testDeps(t)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	importEntries(writeImportFile(t, `{broken`))

	if !strings.Contains(stderr.String(), "not valid JSON") {
		t.Errorf("expected parse error, got: %s", stderr.String())
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", exitCode)
	}
}

func TestImportEntriesMissingFile(t *testing.T) {
	d, _, stderr := testDeps(t)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	importEntries(filepath.Join(t.TempDir(), "nope.json"))

	if !strings.Contains(stderr.String(), "Failed to read") {
		t.Errorf("expected read error, got: %s", stderr.String())
	}
	if exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", exitCode)
	}
}
