package rewrite

import (
	"github.com/arthur-debert/reactspring/pkg/types"
)

// Scope is the build classpath a dependency belongs to
type Scope int

const (
	ScopeCompile Scope = iota
	ScopeRuntime
	ScopeProvided
	ScopeTest
)

// Dependency is a build dependency coordinate without a version; the
// Spring Boot BOM supplies versions for all of them.
type Dependency struct {
	Group    string
	Artifact string
	Scope    Scope
}

// Coordinate returns group:artifact
func (d Dependency) Coordinate() string {
	return d.Group + ":" + d.Artifact
}

// Feature is a set of dependencies added to the build descriptor together.
// The first dependency is the marker: when the descriptor already declares
// it the feature counts as applied.
type Feature struct {
	Name         string
	Dependencies []Dependency
}

// Marker returns the dependency whose presence means the feature is applied
func (f Feature) Marker() Dependency {
	return f.Dependencies[0]
}

const springBootGroup = "org.springframework.boot"

var databaseDrivers = map[types.Database]Dependency{
	types.DatabaseH2:         {Group: "com.h2database", Artifact: "h2", Scope: ScopeRuntime},
	types.DatabasePostgreSQL: {Group: "org.postgresql", Artifact: "postgresql", Scope: ScopeRuntime},
	types.DatabaseMySQL:      {Group: "com.mysql", Artifact: "mysql-connector-j", Scope: ScopeRuntime},
}

// Features returns the dependency features selected by cfg, in insertion order
func Features(cfg types.GenerationConfig) []Feature {
	var features []Feature

	if cfg.IsWar() {
		features = append(features, Feature{
			Name: "war",
			Dependencies: []Dependency{
				{Group: springBootGroup, Artifact: "spring-boot-starter-tomcat", Scope: ScopeProvided},
			},
		})
	}

	if driver, ok := databaseDrivers[cfg.Database]; ok {
		features = append(features, Feature{
			Name: "database",
			Dependencies: []Dependency{
				{Group: springBootGroup, Artifact: "spring-boot-starter-data-jpa", Scope: ScopeCompile},
				driver,
			},
		})
	}

	if cfg.Security {
		features = append(features, Feature{
			Name: "security",
			Dependencies: []Dependency{
				{Group: springBootGroup, Artifact: "spring-boot-starter-security", Scope: ScopeCompile},
				{Group: "org.springframework.security", Artifact: "spring-security-test", Scope: ScopeTest},
			},
		})
	}

	return features
}
