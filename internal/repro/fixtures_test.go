// Package repro implements the skill path-mismatch reproduction harness.
package repro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reisepass/skillsctl/internal/skills"
)

func TestWriteFixtures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), skills.AppDirName, skills.SkillsDirName)

	paths, err := WriteFixtures(dir)
	if err != nil {
		t.Fatalf("WriteFixtures() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("WriteFixtures() wrote %d files, want 3", len(paths))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("fixture %s not on disk: %v", path, err)
		}
	}
}

func TestWriteFixturesParseBack(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteFixtures(dir); err != nil {
		t.Fatalf("WriteFixtures() error = %v", err)
	}

	loaded, err := skills.NewLoader(skills.SourceUser, dir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("Load() returned %d skills, want 3", len(loaded))
	}

	byName := make(map[string][]string)
	for _, sk := range loaded {
		byName[sk.Name] = sk.Triggers
	}
	for _, fx := range Fixtures() {
		got, ok := byName[fx.Name]
		if !ok {
			t.Errorf("fixture %q missing from loaded skills", fx.Name)
			continue
		}
		if len(got) != len(fx.Triggers) {
			t.Errorf("%s triggers = %v, want %v", fx.Name, got, fx.Triggers)
			continue
		}
		for i, trigger := range fx.Triggers {
			if got[i] != trigger {
				t.Errorf("%s triggers = %v, want %v", fx.Name, got, fx.Triggers)
				break
			}
		}
	}
}

func TestWriteFixturesIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteFixtures(dir)
	if err != nil {
		t.Fatalf("first WriteFixtures() error = %v", err)
	}
	before := readAll(t, first)

	second, err := WriteFixtures(dir)
	if err != nil {
		t.Fatalf("second WriteFixtures() error = %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("second run wrote %d files, want %d", len(second), len(first))
	}

	after := readAll(t, second)
	for path, content := range before {
		if after[path] != content {
			t.Errorf("fixture %s content changed on rewrite", path)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("directory holds %d files after rewrite, want 3 (overwrite, not duplication)", len(entries))
	}
}

func readAll(t *testing.T, paths []string) map[string]string {
	t.Helper()

	out := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", path, err)
		}
		out[path] = string(data)
	}
	return out
}
