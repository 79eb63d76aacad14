package inject

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// Datasource holds the connection settings written for a database choice
type Datasource struct {
	Name     string
	URL      string
	Driver   string
	Dialect  string
	Username string
	Password string
	DDLAuto  string
	Console  bool
}

// DatabaseName derives the schema name from the artifact id
func DatabaseName(artifactID string) string {
	return strings.ReplaceAll(strings.ToLower(artifactID), "-", "_")
}

// DatasourceFor returns the settings for cfg's database. ok is false when
// no database was selected.
func DatasourceFor(cfg types.GenerationConfig) (ds Datasource, ok bool) {
	db := DatabaseName(cfg.ArtifactID)

	switch cfg.Database {
	case types.DatabaseH2:
		return Datasource{
			Name:     "H2 in-memory",
			URL:      fmt.Sprintf("jdbc:h2:mem:%s", db),
			Driver:   "org.h2.Driver",
			Dialect:  "org.hibernate.dialect.H2Dialect",
			Username: "sa",
			DDLAuto:  "create-drop",
			Console:  true,
		}, true
	case types.DatabasePostgreSQL:
		return Datasource{
			Name:     "PostgreSQL",
			URL:      fmt.Sprintf("jdbc:postgresql://localhost:5432/%s", db),
			Driver:   "org.postgresql.Driver",
			Dialect:  "org.hibernate.dialect.PostgreSQLDialect",
			Username: "postgres",
			Password: "postgres",
			DDLAuto:  "update",
		}, true
	case types.DatabaseMySQL:
		return Datasource{
			Name:     "MySQL",
			URL:      fmt.Sprintf("jdbc:mysql://localhost:3306/%s", db),
			Driver:   "com.mysql.cj.jdbc.Driver",
			Dialect:  "org.hibernate.dialect.MySQLDialect",
			Username: "root",
			Password: "root",
			DDLAuto:  "update",
		}, true
	}
	return Datasource{}, false
}
