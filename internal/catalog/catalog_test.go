// Package catalog exposes the starter skills embedded in the binary.
package catalog

import (
	"testing"

	"github.com/reisepass/skillsctl/internal/skills"
)

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	if len(first) == 0 {
		t.Fatal("All() returned no starter skills")
	}

	first[0].Name = "mutated"
	if second := All(); second[0].Name == "mutated" {
		t.Error("All() returned shared backing array, want copy")
	}
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		sk, ok := Get(name)
		if !ok {
			t.Fatalf("Get(%q) not found", name)
		}
		if sk.Content == "" {
			t.Errorf("Get(%q) has empty content", name)
		}
	}

	if _, ok := Get("no-such-skill"); ok {
		t.Error("Get() found a skill that does not exist")
	}
}

func TestRecordsParseCleanly(t *testing.T) {
	records := Records()
	if len(records) != len(Names()) {
		t.Fatalf("Records() = %d records, want %d (embedded content must parse)", len(records), len(Names()))
	}

	for _, sk := range records {
		if sk.Source != skills.SourcePublic {
			t.Errorf("record %q source = %q, want %q", sk.Name, sk.Source, skills.SourcePublic)
		}
		if result := skills.ValidateContent("---\nname: " + sk.Name + "\n---\n\n" + sk.Content + "\n"); !result.Valid {
			t.Errorf("record %q failed validation: %v", sk.Name, result.Errors)
		}
	}
}

func TestCatalogNamesMatchFrontmatter(t *testing.T) {
	for _, entry := range All() {
		sk, err := skills.Parse(entry.Content, skills.SourcePublic)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", entry.Name, err)
		}
		if sk.Name != entry.Name {
			t.Errorf("catalog entry %q declares frontmatter name %q", entry.Name, sk.Name)
		}
	}
}
