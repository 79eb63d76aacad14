// Package prompt asks the generation questions interactively.
package prompt

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/reactspring/pkg/config"
	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// Option is one choice of a select question
type Option struct {
	Value string
	Label string
}

// Asker presents single questions to the user
type Asker interface {
	Select(question string, options []Option, def string) (string, error)
	Input(question, def string) (string, error)
	Confirm(question string, def bool) (bool, error)
	// Problem reports an invalid answer before the question is asked again
	Problem(message string)
}

// maxAttempts bounds how often an invalid text answer is asked again
const maxAttempts = 5

var (
	frontendOptions = []Option{
		{Value: string(types.FrontendVite), Label: "Vite (React)"},
		{Value: string(types.FrontendCRA), Label: "Create React App"},
	}
	backendOptions = []Option{
		{Value: string(types.LanguageJava), Label: "Java"},
		{Value: string(types.LanguageKotlin), Label: "Kotlin"},
		{Value: string(types.LanguageGroovy), Label: "Groovy"},
	}
	buildToolOptions = []Option{
		{Value: string(types.BuildToolMaven), Label: "Maven"},
		{Value: string(types.BuildToolGradle), Label: "Gradle"},
	}
	packagingOptions = []Option{
		{Value: string(types.PackagingJar), Label: "Jar"},
		{Value: string(types.PackagingWar), Label: "War"},
	}
	databaseOptions = []Option{
		{Value: string(types.DatabaseNone), Label: "None"},
		{Value: string(types.DatabaseH2), Label: "H2 (in-memory)"},
		{Value: string(types.DatabasePostgreSQL), Label: "PostgreSQL"},
		{Value: string(types.DatabaseMySQL), Label: "MySQL"},
	}
)

// Questionnaire asks every question not already answered by a flag
type Questionnaire struct {
	asker   Asker
	choices config.Choices
}

// New creates a questionnaire offering choices for the version questions
func New(asker Asker, choices config.Choices) *Questionnaire {
	return &Questionnaire{asker: asker, choices: choices}
}

// Ask fills in answers. Keys in fixed (koanf names such as "group_id") were
// set explicitly and are not asked; every other question is asked with the
// current answer as its default.
func (q *Questionnaire) Ask(answers config.Answers, fixed map[string]bool) (config.Answers, error) {
	var err error
	ask := func(key string, fn func() error) {
		if err != nil || fixed[key] {
			return
		}
		err = fn()
	}

	if strings.TrimSpace(answers.ProjectName) == "" {
		ask("project_name", func() error {
			answers.ProjectName, err = q.input("Project name:", "my-react-spring-app", types.ValidateProjectName)
			return err
		})
	}
	ask("frontend", func() error {
		answers.Frontend, err = q.selectOne("Select frontend framework:", frontendOptions, answers.Frontend)
		return err
	})
	ask("backend", func() error {
		answers.Backend, err = q.selectOne("Select backend language:", backendOptions, answers.Backend)
		return err
	})
	ask("build_tool", func() error {
		answers.BuildTool, err = q.selectOne("Select build tool:", buildToolOptions, answers.BuildTool)
		return err
	})
	ask("packaging", func() error {
		answers.Packaging, err = q.selectOne("Select packaging:", packagingOptions, answers.Packaging)
		return err
	})
	ask("group_id", func() error {
		answers.GroupID, err = q.input("Group ID:", answers.GroupID, types.ValidateGroupID)
		return err
	})
	ask("spring_boot_version", func() error {
		answers.SpringBootVersion, err = q.selectOne("Select Spring Boot version:",
			versionOptions(q.choices.SpringBootVersions), answers.SpringBootVersion)
		return err
	})
	ask("java_version", func() error {
		answers.JavaVersion, err = q.selectOne("Select Java version:",
			versionOptions(q.choices.JavaVersions), answers.JavaVersion)
		return err
	})
	ask("database", func() error {
		answers.Database, err = q.selectOne("Select database:", databaseOptions, answers.Database)
		return err
	})
	ask("security", func() error {
		answers.Security, err = q.asker.Confirm("Add Spring Security?", answers.Security)
		return err
	})

	if err != nil {
		return config.Answers{}, errors.Wrap(err, errors.ErrPrompt, "prompt failed")
	}
	return answers, nil
}

func (q *Questionnaire) selectOne(question string, options []Option, def string) (string, error) {
	if !hasOption(options, def) && len(options) > 0 {
		def = options[0].Value
	}
	return q.asker.Select(question, options, def)
}

func (q *Questionnaire) input(question, def string, validate func(string) error) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		value, err := q.asker.Input(question, def)
		if err != nil {
			return "", err
		}
		if value = strings.TrimSpace(value); value == "" {
			value = def
		}
		if verr := validate(value); verr != nil {
			q.asker.Problem(verr.Error())
			continue
		}
		return value, nil
	}
	return "", fmt.Errorf("no valid answer to %q after %d attempts", question, maxAttempts)
}

func versionOptions(versions []string) []Option {
	options := make([]Option, len(versions))
	for i, v := range versions {
		options[i] = Option{Value: v, Label: v}
	}
	return options
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
