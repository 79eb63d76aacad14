package inject

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rserrors "github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/testutil"
	"github.com/arthur-debert/reactspring/pkg/types"
)

func config() types.GenerationConfig {
	return types.GenerationConfig{
		ProjectName:       "my-shop",
		Frontend:          types.FrontendVite,
		Language:          types.LanguageJava,
		BuildTool:         types.BuildToolMaven,
		Packaging:         types.PackagingJar,
		GroupID:           "com.acme",
		ArtifactID:        "my-shop",
		JavaVersion:       "17",
		SpringBootVersion: "3.2.1",
	}
}

func paths(files []File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestPlanNothingSelected(t *testing.T) {
	files, err := Plan(config(), FallbackMainClass)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPlanPaths(t *testing.T) {
	tests := []struct {
		language types.Language
		want     []string
	}{
		{types.LanguageJava, []string{
			"src/main/java/com/acme/myshop/ServletInitializer.java",
			"src/main/java/com/acme/myshop/config/SecurityConfig.java",
			"src/main/java/com/acme/myshop/model/User.java",
			"src/main/java/com/acme/myshop/repository/UserRepository.java",
			DatasourceProperties,
		}},
		{types.LanguageKotlin, []string{
			"src/main/kotlin/com/acme/myshop/ServletInitializer.kt",
			"src/main/kotlin/com/acme/myshop/config/SecurityConfig.kt",
			"src/main/kotlin/com/acme/myshop/model/User.kt",
			"src/main/kotlin/com/acme/myshop/repository/UserRepository.kt",
			DatasourceProperties,
		}},
		{types.LanguageGroovy, []string{
			"src/main/groovy/com/acme/myshop/ServletInitializer.groovy",
			"src/main/groovy/com/acme/myshop/config/SecurityConfig.groovy",
			"src/main/groovy/com/acme/myshop/model/User.groovy",
			"src/main/groovy/com/acme/myshop/repository/UserRepository.groovy",
			DatasourceProperties,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.language), func(t *testing.T) {
			cfg := config()
			cfg.Language = tt.language
			cfg.Packaging = types.PackagingWar
			cfg.Security = true
			cfg.Database = types.DatabaseH2

			files, err := Plan(cfg, "ShopApplication")
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(files))

			for _, f := range files[:4] {
				assert.Contains(t, f.Content, "package com.acme.myshop")
				assert.NotContains(t, f.Content, "{{")
			}
			assert.Contains(t, files[0].Content, "ShopApplication")
		})
	}
}

func TestPlanSourceContent(t *testing.T) {
	cfg := config()
	cfg.Packaging = types.PackagingWar
	cfg.Security = true
	cfg.Database = types.DatabasePostgreSQL

	files, err := Plan(cfg, "ShopApplication")
	require.NoError(t, err)
	byPath := map[string]string{}
	for _, f := range files {
		byPath[f.Path] = f.Content
	}

	servlet := byPath["src/main/java/com/acme/myshop/ServletInitializer.java"]
	assert.Contains(t, servlet, "package com.acme.myshop;")
	assert.Contains(t, servlet, "extends SpringBootServletInitializer")
	assert.Contains(t, servlet, "application.sources(ShopApplication.class)")

	security := byPath["src/main/java/com/acme/myshop/config/SecurityConfig.java"]
	assert.Contains(t, security, "package com.acme.myshop.config;")
	assert.Contains(t, security, ".anyRequest().authenticated()")
	assert.Contains(t, security, ".httpBasic(withDefaults())")
	assert.Contains(t, security, "csrf.disable()")

	entity := byPath["src/main/java/com/acme/myshop/model/User.java"]
	assert.Contains(t, entity, "package com.acme.myshop.model;")
	assert.Contains(t, entity, `@Table(name = "users")`)
	assert.Contains(t, entity, "private String email;")

	repo := byPath["src/main/java/com/acme/myshop/repository/UserRepository.java"]
	assert.Contains(t, repo, "import com.acme.myshop.model.User;")
	assert.Contains(t, repo, "extends JpaRepository<User, Long>")
}

func TestDatasourceProperties(t *testing.T) {
	tests := []struct {
		database types.Database
		want     string
	}{
		{types.DatabaseH2, "# H2 in-memory datasource\n" +
			"spring.datasource.url=jdbc:h2:mem:my_shop\n" +
			"spring.datasource.driver-class-name=org.h2.Driver\n" +
			"spring.datasource.username=sa\n" +
			"spring.datasource.password=\n" +
			"spring.jpa.database-platform=org.hibernate.dialect.H2Dialect\n" +
			"spring.jpa.hibernate.ddl-auto=create-drop\n" +
			"spring.jpa.open-in-view=false\n" +
			"spring.h2.console.enabled=true\n"},
		{types.DatabasePostgreSQL, "# PostgreSQL datasource\n" +
			"spring.datasource.url=jdbc:postgresql://localhost:5432/my_shop\n" +
			"spring.datasource.driver-class-name=org.postgresql.Driver\n" +
			"spring.datasource.username=postgres\n" +
			"spring.datasource.password=postgres\n" +
			"spring.jpa.database-platform=org.hibernate.dialect.PostgreSQLDialect\n" +
			"spring.jpa.hibernate.ddl-auto=update\n" +
			"spring.jpa.open-in-view=false\n"},
		{types.DatabaseMySQL, "# MySQL datasource\n" +
			"spring.datasource.url=jdbc:mysql://localhost:3306/my_shop\n" +
			"spring.datasource.driver-class-name=com.mysql.cj.jdbc.Driver\n" +
			"spring.datasource.username=root\n" +
			"spring.datasource.password=root\n" +
			"spring.jpa.database-platform=org.hibernate.dialect.MySQLDialect\n" +
			"spring.jpa.hibernate.ddl-auto=update\n" +
			"spring.jpa.open-in-view=false\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.database), func(t *testing.T) {
			cfg := config()
			cfg.Database = tt.database

			files, err := Plan(cfg, FallbackMainClass)
			require.NoError(t, err)
			require.Len(t, files, 3)
			assert.Equal(t, DatasourceProperties, files[2].Path)
			assert.Equal(t, tt.want, files[2].Content)
		})
	}
}

func TestDatasourceForNone(t *testing.T) {
	cfg := config()
	for _, db := range []types.Database{"", types.DatabaseNone} {
		cfg.Database = db
		_, ok := DatasourceFor(cfg)
		assert.False(t, ok)
	}
}

func TestMainClassIn(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
		found  bool
	}{
		{"java", "package x;\n\n@SpringBootApplication\npublic class ShopApplication {\n}", "ShopApplication", true},
		{"kotlin", "package x\n\n@SpringBootApplication\nclass ShopApp\n\nfun main() {}", "ShopApp", true},
		{"groovy", "import a.SpringApplication\n@SpringBootApplication\nclass GApp {\n static void main() { SpringApplication.run(GApp, args) }\n}", "GApp", true},
		{"class before annotation ignored", "class Helper {}\n@SpringBootApplication\npublic class Real {}", "Real", true},
		{"no annotation", "public class Plain {}", "", false},
		{"annotation without class", "// @SpringBootApplication", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mainClassIn(tt.source)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverMainClass(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/pkg", map[string]string{
		"HelloController.java":     "@RestController\npublic class HelloController {}",
		"ShopApplication.java":     "@SpringBootApplication\npublic class ShopApplication {}",
		"sub/OtherApplication.java": "@SpringBootApplication\npublic class OtherApplication {}",
	})

	assert.Equal(t, "ShopApplication", DiscoverMainClass(fsys, "/pkg", zerolog.Nop()))
	assert.Equal(t, FallbackMainClass, DiscoverMainClass(fsys, "/missing", zerolog.Nop()))

	faulty := testutil.NewFaultyFS(fsys).
		WithError(testutil.OpReadFile, "/pkg/ShopApplication.java", errors.New("denied"))
	assert.Equal(t, FallbackMainClass, DiscoverMainClass(faulty, "/pkg", zerolog.Nop()))
}

func TestInjectWritesFiles(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/out/server", map[string]string{
		"src/main/java/com/acme/myshop/ShopApplication.java": "@SpringBootApplication\npublic class ShopApplication {}",
		"src/main/resources/application.properties":         "spring.application.name=my-shop\n",
		"src/main/java/com/acme/myshop/config/SecurityConfig.java": "stale",
	})

	cfg := config()
	cfg.Packaging = types.PackagingWar
	cfg.Security = true
	cfg.Database = types.DatabaseMySQL

	written, err := New(fsys).Inject(cfg, "/out/server")
	require.NoError(t, err)
	assert.Len(t, written, 5)

	tree := testutil.ReadTree(t, fsys, "/out/server")
	assert.Contains(t, tree["src/main/java/com/acme/myshop/ServletInitializer.java"], "application.sources(ShopApplication.class)")
	assert.Contains(t, tree["src/main/java/com/acme/myshop/config/SecurityConfig.java"], "@EnableWebSecurity")
	assert.Equal(t, "spring.application.name=my-shop\n", tree["src/main/resources/application.properties"])
	assert.Contains(t, tree["src/main/resources/config/application.properties"], "jdbc:mysql://localhost:3306/my_shop")
	assert.Equal(t, filepath.Join("/out/server", "src", "main", "java", "com", "acme", "myshop", "ServletInitializer.java"), written[0])
}

func TestInjectWriteFailure(t *testing.T) {
	base := testutil.NewTestFS()
	fsys := testutil.NewFaultyFS(base).WithError(testutil.OpWriteFile,
		filepath.Join("/out/server", "src", "main", "java", "com", "acme", "myshop", "config", "SecurityConfig.java"),
		errors.New("read-only"))

	cfg := config()
	cfg.Security = true

	_, err := New(fsys).Inject(cfg, "/out/server")
	require.Error(t, err)
	assert.True(t, rserrors.IsErrorCode(err, rserrors.ErrFileWrite))
}
