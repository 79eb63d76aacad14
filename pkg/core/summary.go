package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

// Summary converts a result into the shape the renderers display.
// Injected paths are made relative to the project directory.
func (r *Result) Summary() view.Summary {
	cfg := r.Config
	security := "none"
	if cfg.Security {
		security = "Spring Security"
	}

	injected := make([]string, 0, len(r.Server.Injected))
	for _, p := range r.Server.Injected {
		if rel, err := filepath.Rel(r.Destination, p); err == nil {
			p = filepath.ToSlash(rel)
		}
		injected = append(injected, p)
	}
	if len(injected) == 0 {
		injected = nil
	}

	return view.Summary{
		Project:     cfg.ProjectName,
		Destination: r.Destination,
		DryRun:      r.DryRun,
		Stack: []view.Field{
			{Label: "Client", Value: ClientDescription(cfg.Frontend)},
			{Label: "Server", Value: fmt.Sprintf("Spring Boot %s (%s, %s)", cfg.SpringBootVersion, cfg.Language, cfg.BuildTool)},
			{Label: "Package", Value: cfg.PackageName()},
			{Label: "Artifact", Value: cfg.GroupID + ":" + cfg.ArtifactID},
			{Label: "Java", Value: cfg.JavaVersion},
			{Label: "Packaging", Value: strings.ToUpper(string(cfg.Packaging))},
			{Label: "Database", Value: DatabaseDescription(cfg.Database)},
			{Label: "Security", Value: security},
		},
		Counts: view.Counts{
			Directories: r.Client.Directories + r.Server.Directories,
			TextFiles:   r.Client.TextFiles + r.Server.TextFiles,
			BinaryFiles: r.Client.BinaryFiles + r.Server.BinaryFiles,
			Relocated:   len(r.Server.Relocated),
		},
		Injected:  injected,
		NextSteps: r.NextSteps,
	}
}
