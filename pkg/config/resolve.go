package config

import (
	"strings"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// Resolve turns answers into a validated generation config. The artifact
// id defaults to the project name and an empty database means none.
func (a Answers) Resolve() (types.GenerationConfig, error) {
	artifactID := strings.TrimSpace(a.ArtifactID)
	if artifactID == "" {
		artifactID = strings.TrimSpace(a.ProjectName)
	}
	database := types.Database(strings.ToLower(a.Database))
	if database == "" {
		database = types.DatabaseNone
	}

	cfg := types.GenerationConfig{
		ProjectName:       strings.TrimSpace(a.ProjectName),
		Frontend:          types.Frontend(strings.ToLower(a.Frontend)),
		Language:          types.Language(strings.ToLower(a.Backend)),
		BuildTool:         types.BuildTool(strings.ToLower(a.BuildTool)),
		Packaging:         types.Packaging(strings.ToLower(a.Packaging)),
		GroupID:           strings.TrimSpace(a.GroupID),
		ArtifactID:        artifactID,
		JavaVersion:       strings.TrimSpace(a.JavaVersion),
		SpringBootVersion: strings.TrimSpace(a.SpringBootVersion),
		Database:          database,
		Security:          a.Security,
	}

	if err := cfg.Validate(); err != nil {
		return types.GenerationConfig{}, err
	}
	return cfg, nil
}

// Missing lists the answers still open, in the order they are asked
func (a Answers) Missing() []string {
	var missing []string
	check := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	check("project_name", a.ProjectName)
	check("frontend", a.Frontend)
	check("backend", a.Backend)
	check("build_tool", a.BuildTool)
	check("packaging", a.Packaging)
	check("group_id", a.GroupID)
	check("spring_boot_version", a.SpringBootVersion)
	check("java_version", a.JavaVersion)
	return missing
}
