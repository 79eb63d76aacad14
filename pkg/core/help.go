package core

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// HelpFileName is the summary document written at the project root
const HelpFileName = "HELP.md"

//go:embed templates/HELP.md.tmpl
var helpTemplate string

type helpData struct {
	ProjectName       string
	Client            string
	SpringBootVersion string
	Language          types.Language
	BuildTool         types.BuildTool
	GroupID           string
	ArtifactID        string
	Package           string
	JavaVersion       string
	Packaging         string
	Database          string
	Security          bool
	ClientRun         string
	ServerRun         string
}

// ClientDescription names the frontend stack for people
func ClientDescription(f types.Frontend) string {
	if f == types.FrontendCRA {
		return "Create React App"
	}
	return "React + Vite"
}

// DatabaseDescription names the database choice for people
func DatabaseDescription(db types.Database) string {
	switch db {
	case types.DatabaseH2:
		return "H2 (in-memory)"
	case types.DatabasePostgreSQL:
		return "PostgreSQL"
	case types.DatabaseMySQL:
		return "MySQL"
	default:
		return "none"
	}
}

// ClientRunCommand starts the frontend dev server
func ClientRunCommand(f types.Frontend) string {
	if f == types.FrontendCRA {
		return "npm start"
	}
	return "npm run dev"
}

// ServerRunCommand starts the backend through its wrapper on goos
func ServerRunCommand(tool types.BuildTool, goos string) string {
	windows := goos == "windows"
	if tool == types.BuildToolGradle {
		if windows {
			return "gradlew.bat bootRun"
		}
		return "./gradlew bootRun"
	}
	if windows {
		return "mvnw.cmd spring-boot:run"
	}
	return "./mvnw spring-boot:run"
}

// NextSteps lists the commands that start both halves of a fresh project
func NextSteps(cfg types.GenerationConfig, projectDir, goos string) []string {
	return []string{
		"cd " + projectDir + "/client",
		"npm install",
		ClientRunCommand(cfg.Frontend),
		"cd ../server",
		ServerRunCommand(cfg.BuildTool, goos),
	}
}

// HelpDocument renders HELP.md for cfg
func HelpDocument(cfg types.GenerationConfig, goos string) (string, error) {
	tmpl, err := template.New(HelpFileName).Option("missingkey=error").Parse(helpTemplate)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to parse HELP.md template")
	}

	data := helpData{
		ProjectName:       cfg.ProjectName,
		Client:            ClientDescription(cfg.Frontend),
		SpringBootVersion: cfg.SpringBootVersion,
		Language:          cfg.Language,
		BuildTool:         cfg.BuildTool,
		GroupID:           cfg.GroupID,
		ArtifactID:        cfg.ArtifactID,
		Package:           cfg.PackageName(),
		JavaVersion:       cfg.JavaVersion,
		Packaging:         strings.ToUpper(string(cfg.Packaging)),
		Database:          DatabaseDescription(cfg.Database),
		Security:          cfg.Security,
		ClientRun:         ClientRunCommand(cfg.Frontend),
		ServerRun:         ServerRunCommand(cfg.BuildTool, goos),
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render HELP.md")
	}
	return out.String(), nil
}
