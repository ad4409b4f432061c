package skills

import (
	_ "embed"
)

const (
	SkillAuthoringName  = "skill-authoring"
	RepoExplorationName = "repo-exploration"
	CommitHygieneName   = "commit-hygiene"
)

//go:embed skill-authoring/SKILL.md
var SkillAuthoringContent string

//go:embed repo-exploration/SKILL.md
var RepoExplorationContent string

//go:embed commit-hygiene/SKILL.md
var CommitHygieneContent string
