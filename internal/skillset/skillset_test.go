// Package skillset aggregates skills across configured sources.
package skillset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reisepass/skillsctl/internal/catalog"
	"github.com/reisepass/skillsctl/internal/skills"
)

// writeSkill writes a minimal skill file into dir.
func writeSkill(t *testing.T, dir, file, name string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll(%s) error = %v", dir, err)
	}
	content := "---\nname: " + name + "\n---\n\n# " + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoadAllUserOnly(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, skills.AppDirName, skills.SkillsDirName)
	writeSkill(t, dir, "deepsolve.md", "deepsolve")
	writeSkill(t, dir, "eda.md", "eda")
	writeSkill(t, dir, "checkpoint.md", "checkpoint")

	result, err := LoadAll(LoadOptions{User: true, UserDirs: skills.DefaultUserDirs(home)})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if got := result.Count(skills.SourceUser); got != 3 {
		t.Errorf("user count = %d, want 3", got)
	}
	if _, ok := result.Sources[string(skills.SourcePublic)]; ok {
		t.Error("public source present in result, want absent when not requested")
	}
	if len(result.Skills) != 3 {
		t.Errorf("combined skills = %d, want 3", len(result.Skills))
	}
	for _, sk := range result.Skills {
		if sk.Source != skills.SourceUser {
			t.Errorf("skill %q source = %q, want user", sk.Name, sk.Source)
		}
	}
}

func TestLoadAllUserWithEmptyDirs(t *testing.T) {
	// The container shape: requested source exists but its candidate
	// directories hold nothing.
	fakeHome := t.TempDir()

	result, err := LoadAll(LoadOptions{User: true, UserDirs: skills.DefaultUserDirs(fakeHome)})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got := result.Count(skills.SourceUser); got != 0 {
		t.Errorf("user count = %d, want 0", got)
	}
	if len(result.Skills) != 0 {
		t.Errorf("combined skills = %d, want 0", len(result.Skills))
	}
}

func TestLoadAllPublicUsesEmbeddedCatalog(t *testing.T) {
	result, err := LoadAll(LoadOptions{Public: true})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got := result.Count(skills.SourcePublic); got != len(catalog.Names()) {
		t.Errorf("public count = %d, want %d", got, len(catalog.Names()))
	}
}

func TestLoadAllProject(t *testing.T) {
	project := t.TempDir()
	writeSkill(t, filepath.Join(project, skills.AppDirName, skills.SkillsDirName), "eda.md", "eda")

	result, err := LoadAll(LoadOptions{Project: true, ProjectDir: project})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got := result.Count(skills.SourceProject); got != 1 {
		t.Errorf("project count = %d, want 1", got)
	}
	if result.Skills[0].Source != skills.SourceProject {
		t.Errorf("source = %q, want project", result.Skills[0].Source)
	}
}

func TestLoadAllOrgReportsZeroWithoutSync(t *testing.T) {
	result, err := LoadAll(LoadOptions{Org: true, OrgRepoURL: "https://example.com/org/skills.git", OrgName: "acme"})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got, ok := result.Sources[string(skills.SourceOrg)]; !ok || got != 0 {
		t.Errorf("org count = %d (present=%v), want 0 and present", got, ok)
	}
}

func TestLoadAllCombinedOrder(t *testing.T) {
	home := t.TempDir()
	writeSkill(t, filepath.Join(home, skills.AppDirName, skills.SkillsDirName), "zz-user.md", "zz-user")

	result, err := LoadAll(LoadOptions{
		Public:   true,
		User:     true,
		UserDirs: skills.DefaultUserDirs(home),
	})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	// Public records come before user records.
	if result.Skills[0].Source != skills.SourcePublic {
		t.Errorf("first record source = %q, want public", result.Skills[0].Source)
	}
	last := result.Skills[len(result.Skills)-1]
	if last.Source != skills.SourceUser || last.Name != "zz-user" {
		t.Errorf("last record = %q/%q, want user/zz-user", last.Name, last.Source)
	}
}
