package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reisepass/skillsctl/internal/skills"
)

func writeFixtureSkill(t *testing.T, dir, file, name string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	content := "---\nname: " + name + "\n---\n\n# " + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestCheckCandidateDirs(t *testing.T) {
	tmp := t.TempDir()
	populated := filepath.Join(tmp, "skills")
	writeFixtureSkill(t, populated, "eda.md", "eda")

	check := checkCandidateDirs([]string{populated, filepath.Join(tmp, "missing")})
	if check.Status != "ok" {
		t.Errorf("status = %q, want ok (message: %s)", check.Status, check.Message)
	}

	check = checkCandidateDirs([]string{filepath.Join(tmp, "missing")})
	if check.Status != "warning" {
		t.Errorf("status for missing dirs = %q, want warning", check.Status)
	}

	empty := filepath.Join(tmp, "empty")
	if err := os.MkdirAll(empty, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	check = checkCandidateDirs([]string{empty})
	if check.Status != "warning" {
		t.Errorf("status for empty dirs = %q, want warning", check.Status)
	}
}

func TestCheckMountMismatch(t *testing.T) {
	tmp := t.TempDir()
	mount := filepath.Join(tmp, skills.AppDirName, skills.SkillsDirName)
	writeFixtureSkill(t, mount, "deepsolve.md", "deepsolve")

	fakeHome := filepath.Join(tmp, "fake_root")
	if err := os.MkdirAll(fakeHome, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	// Mounted skills, empty candidates: the defect signature.
	check := checkMountMismatchAt(mount, skills.DefaultUserDirs(fakeHome))
	if check.Status != "error" {
		t.Errorf("status = %q, want error for mount mismatch (message: %s)", check.Status, check.Message)
	}

	// Candidates include the mount: healthy.
	check = checkMountMismatchAt(mount, []string{mount})
	if check.Status != "ok" {
		t.Errorf("status = %q, want ok when the loader scans the mount", check.Status)
	}

	// No mounted skills at all: nothing to flag.
	check = checkMountMismatchAt(filepath.Join(tmp, "no-mount"), skills.DefaultUserDirs(fakeHome))
	if check.Status != "ok" {
		t.Errorf("status = %q, want ok with no mounted skills", check.Status)
	}
}

func TestCheckSkillFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSkill(t, dir, "eda.md", "eda")

	check := checkSkillFiles([]string{dir})
	if check.Status != "ok" {
		t.Errorf("status = %q, want ok (message: %s)", check.Status, check.Message)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.md"), []byte("no frontmatter"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	check = checkSkillFiles([]string{dir})
	if check.Status != "error" {
		t.Errorf("status = %q, want error with an invalid file", check.Status)
	}
}

func TestCheckHomeResolution(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	check, resolved := checkHomeResolution()
	if check.Status != "ok" {
		t.Fatalf("status = %q, want ok", check.Status)
	}
	if resolved != home {
		t.Errorf("resolved home = %q, want %q", resolved, home)
	}
}
