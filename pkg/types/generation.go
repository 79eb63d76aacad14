package types

import (
	"fmt"
	"strings"
)

// Frontend selects the client template variant
type Frontend string

const (
	FrontendVite Frontend = "vite"
	FrontendCRA  Frontend = "cra"
)

// Language selects the backend language variant
type Language string

const (
	LanguageJava   Language = "java"
	LanguageKotlin Language = "kotlin"
	LanguageGroovy Language = "groovy"
)

// BuildTool selects the backend build tool
type BuildTool string

const (
	BuildToolMaven  BuildTool = "maven"
	BuildToolGradle BuildTool = "gradle"
)

// Packaging selects the backend archive format
type Packaging string

const (
	PackagingJar Packaging = "jar"
	PackagingWar Packaging = "war"
)

// Database selects the persistence variant. The zero value means none.
type Database string

const (
	DatabaseNone       Database = "none"
	DatabaseH2         Database = "h2"
	DatabasePostgreSQL Database = "postgresql"
	DatabaseMySQL      Database = "mysql"
)

// Embedded reports whether the database runs inside the application process
func (d Database) Embedded() bool {
	return d == DatabaseH2
}

// GenerationConfig captures every choice for one generation run.
// It is built once, already validated, and passed by value so no stage
// can mutate what another stage sees.
type GenerationConfig struct {
	ProjectName       string    `validate:"required,projectname"`
	Frontend          Frontend  `validate:"oneof=vite cra"`
	Language          Language  `validate:"oneof=java kotlin groovy"`
	BuildTool         BuildTool `validate:"oneof=maven gradle"`
	Packaging         Packaging `validate:"oneof=jar war"`
	GroupID           string    `validate:"required,groupid"`
	ArtifactID        string    `validate:"required,artifactid"`
	JavaVersion       string    `validate:"required,numeric"`
	SpringBootVersion string    `validate:"required"`
	Database          Database  `validate:"omitempty,oneof=none h2 postgresql mysql"`
	Security          bool
}

// PackageName is lowercase(groupId + "." + artifactId) with dashes removed
func (c GenerationConfig) PackageName() string {
	name := fmt.Sprintf("%s.%s", c.GroupID, c.ArtifactID)
	return strings.ToLower(strings.ReplaceAll(name, "-", ""))
}

// PackagePath returns the package name as directory segments
func (c GenerationConfig) PackagePath() []string {
	return strings.Split(c.PackageName(), ".")
}

// HasDatabase reports whether a persistence variant was selected
func (c GenerationConfig) HasDatabase() bool {
	return c.Database != "" && c.Database != DatabaseNone
}

// IsWar reports whether the backend is packaged for an external servlet container
func (c GenerationConfig) IsWar() bool {
	return c.Packaging == PackagingWar
}

// SourceSet is the directory under src/main holding the backend sources
func (c GenerationConfig) SourceSet() string {
	switch c.Language {
	case LanguageKotlin:
		return "kotlin"
	case LanguageGroovy:
		return "groovy"
	default:
		return "java"
	}
}

// SourceExt is the file extension of backend source files
func (c GenerationConfig) SourceExt() string {
	switch c.Language {
	case LanguageKotlin:
		return "kt"
	case LanguageGroovy:
		return "groovy"
	default:
		return "java"
	}
}

// BackendTemplate names the backend template directory: the language for
// Maven, the language suffixed with -gradle for Gradle.
func (c GenerationConfig) BackendTemplate() string {
	if c.BuildTool == BuildToolGradle {
		return string(c.Language) + "-gradle"
	}
	return string(c.Language)
}

// BuildFile is the build descriptor the backend template ships
func (c GenerationConfig) BuildFile() string {
	if c.BuildTool == BuildToolMaven {
		return "pom.xml"
	}
	if c.Language == LanguageKotlin {
		return "build.gradle.kts"
	}
	return "build.gradle"
}

// WrapperScript is the build tool wrapper shipped at the backend root
func (c GenerationConfig) WrapperScript() string {
	if c.BuildTool == BuildToolGradle {
		return "gradlew"
	}
	return "mvnw"
}
