package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rserrors "github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/inject"
	"github.com/arthur-debert/reactspring/pkg/testutil"
	"github.com/arthur-debert/reactspring/pkg/types"
)

const templates = "/templates"

func baseConfig() types.GenerationConfig {
	return types.GenerationConfig{
		ProjectName:       "shop",
		Frontend:          types.FrontendVite,
		Language:          types.LanguageJava,
		BuildTool:         types.BuildToolMaven,
		Packaging:         types.PackagingJar,
		GroupID:           "com.acme",
		ArtifactID:        "shop",
		JavaVersion:       "21",
		SpringBootVersion: "3.2.1",
	}
}

func run(t *testing.T, cfg types.GenerationConfig) (map[string]string, Report) {
	t.Helper()

	fsys := testutil.NewTestFS()
	testutil.WriteTemplates(t, fsys, templates)

	src := filepath.Join(templates, "backend", cfg.BackendTemplate())
	report, err := New(fsys, cfg).Run(src, "/out/server")
	require.NoError(t, err)

	return testutil.ReadTree(t, fsys, "/out/server"), report
}

func allConfigs() []types.GenerationConfig {
	var configs []types.GenerationConfig
	for _, b := range testutil.Backends {
		for _, packaging := range []types.Packaging{types.PackagingJar, types.PackagingWar} {
			for _, db := range []types.Database{"", types.DatabaseH2, types.DatabasePostgreSQL, types.DatabaseMySQL} {
				for _, security := range []bool{false, true} {
					cfg := baseConfig()
					cfg.Language = b.Language
					cfg.BuildTool = b.BuildTool
					cfg.Packaging = packaging
					cfg.Database = db
					cfg.Security = security
					cfg.ArtifactID = "my-shop"
					configs = append(configs, cfg)
				}
			}
		}
	}
	return configs
}

func name(cfg types.GenerationConfig) string {
	return fmt.Sprintf("%s/%s/db=%s/security=%t", cfg.BackendTemplate(), cfg.Packaging, cfg.Database, cfg.Security)
}

func TestPackageRelocatedForEveryConfig(t *testing.T) {
	for _, cfg := range allConfigs() {
		t.Run(name(cfg), func(t *testing.T) {
			tree, report := run(t, cfg)

			pkgDir := "src/main/" + cfg.SourceSet() + "/" + strings.Join(cfg.PackagePath(), "/") + "/"
			assert.Contains(t, tree, pkgDir+"DemoApplication."+cfg.SourceExt())
			assert.Equal(t, "com.acme.myshop", cfg.PackageName())
			require.Len(t, report.Relocated, 2)

			for path := range tree {
				assert.NotContains(t, path, "com/example", path)
				if strings.HasPrefix(path, "src/main/"+cfg.SourceSet()+"/") {
					assert.True(t, strings.HasPrefix(path, pkgDir), path)
				}
			}
		})
	}
}

func TestBinaryFilesUntouched(t *testing.T) {
	tree, report := run(t, baseConfig())

	assert.Equal(t, string(testutil.PNG), tree["src/main/resources/static/logo.png"])
	assert.Equal(t, "@REM Maven wrapper for Windows\r\n", tree["mvnw.cmd"])
	assert.Equal(t, 2, report.BinaryFiles)
}

func TestDatabaseVariants(t *testing.T) {
	identifiers := map[types.Database][]string{
		types.DatabaseH2:         {"jdbc:h2:mem:", "org.h2.Driver"},
		types.DatabasePostgreSQL: {"jdbc:postgresql://", "org.postgresql.Driver"},
		types.DatabaseMySQL:      {"jdbc:mysql://", "com.mysql.cj.jdbc.Driver"},
	}

	for db, own := range identifiers {
		t.Run(string(db), func(t *testing.T) {
			cfg := baseConfig()
			cfg.Database = db

			tree, _ := run(t, cfg)
			props, ok := tree[inject.DatasourceProperties]
			require.True(t, ok)

			for _, id := range own {
				assert.Contains(t, props, id)
			}
			for other, ids := range identifiers {
				if other == db {
					continue
				}
				for _, id := range ids {
					assert.NotContains(t, props, id)
				}
			}

			assert.Contains(t, tree, "src/main/java/com/acme/shop/model/User.java")
			assert.Contains(t, tree, "src/main/java/com/acme/shop/repository/UserRepository.java")
			assert.Contains(t, tree["pom.xml"], "<artifactId>spring-boot-starter-data-jpa</artifactId>")
		})
	}
}

func TestNoDatabase(t *testing.T) {
	for _, db := range []types.Database{"", types.DatabaseNone} {
		t.Run("db="+string(db), func(t *testing.T) {
			cfg := baseConfig()
			cfg.Database = db

			tree, report := run(t, cfg)

			assert.NotContains(t, tree, inject.DatasourceProperties)
			assert.NotContains(t, tree, "src/main/java/com/acme/shop/model/User.java")
			assert.NotContains(t, tree, "src/main/java/com/acme/shop/repository/UserRepository.java")
			assert.NotContains(t, tree["pom.xml"], "spring-boot-starter-data-jpa")
			assert.Empty(t, report.Injected)
		})
	}
}

func TestJavaMavenWar(t *testing.T) {
	cfg := baseConfig()
	cfg.Packaging = types.PackagingWar

	tree, report := run(t, cfg)

	servlet := tree["src/main/java/com/acme/shop/ServletInitializer.java"]
	assert.Contains(t, servlet, "package com.acme.shop;")
	assert.Contains(t, servlet, "application.sources(DemoApplication.class)")

	pom := tree["pom.xml"]
	assert.Contains(t, pom, "<packaging>war</packaging>")
	assert.Contains(t, pom, "<artifactId>spring-boot-starter-tomcat</artifactId>\n\t\t\t<scope>provided</scope>")
	assert.Len(t, report.Injected, 1)
}

func TestDashedArtifactPackage(t *testing.T) {
	cfg := baseConfig()
	cfg.Packaging = types.PackagingWar
	cfg.ArtifactID = "my-shop"

	tree, _ := run(t, cfg)

	assert.Contains(t, tree["src/main/java/com/acme/myshop/ServletInitializer.java"], "package com.acme.myshop;")
	assert.Contains(t, tree["pom.xml"], "<artifactId>my-shop</artifactId>")
}

func TestGroovySecurity(t *testing.T) {
	for _, tool := range []types.BuildTool{types.BuildToolMaven, types.BuildToolGradle} {
		for _, db := range []types.Database{"", types.DatabaseH2} {
			t.Run(string(tool)+"/"+string(db), func(t *testing.T) {
				cfg := baseConfig()
				cfg.Language = types.LanguageGroovy
				cfg.BuildTool = tool
				cfg.Database = db
				cfg.Security = true

				tree, _ := run(t, cfg)

				security := tree["src/main/groovy/com/acme/shop/config/SecurityConfig.groovy"]
				assert.Contains(t, security, "package com.acme.shop.config")
				assert.Contains(t, security, "anyRequest().authenticated()")

				build := tree[cfg.BuildFile()]
				assert.Contains(t, build, "spring-boot-starter-security")
				assert.Contains(t, build, "spring-security-test")
			})
		}
	}
}

func TestKotlinGradleWarPlugin(t *testing.T) {
	cfg := baseConfig()
	cfg.Language = types.LanguageKotlin
	cfg.BuildTool = types.BuildToolGradle
	cfg.Packaging = types.PackagingWar

	tree, _ := run(t, cfg)
	build := tree["build.gradle.kts"]

	assert.Equal(t, 1, strings.Count(build, `id("war")`))
	assert.Contains(t, build, `id("org.springframework.boot") version "3.2.1"`)
	assert.Contains(t, build, `id("io.spring.dependency-management") version "1.1.4"`)
	assert.Contains(t, build, `kotlin("jvm") version "1.9.21"`)
	assert.Contains(t, build, "JavaLanguageVersion.of(21)")
	assert.Contains(t, tree["src/main/kotlin/com/acme/shop/ServletInitializer.kt"], "DemoApplication::class.java")
}

func TestRunStopsOnTemplateError(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.WriteTemplates(t, base, templates)

	src := filepath.Join(templates, "backend", "java")
	fsys := testutil.NewFaultyFS(base).
		WithError(testutil.OpReadFile, filepath.Join(src, "pom.xml"), errors.New("io error"))

	cfg := baseConfig()
	cfg.Security = true
	_, err := New(fsys, cfg).Run(src, "/out/server")

	require.Error(t, err)
	assert.True(t, rserrors.IsErrorCode(err, rserrors.ErrTemplateRead))
	_, statErr := base.Stat("/out/server/src/main/java/com/acme/shop/config/SecurityConfig.java")
	assert.Error(t, statErr)
}
