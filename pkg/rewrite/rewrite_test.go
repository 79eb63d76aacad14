package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/reactspring/pkg/types"
)

const pomTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project>
	<parent>
		<groupId>org.springframework.boot</groupId>
		<artifactId>spring-boot-starter-parent</artifactId>
		<version>3.2.1</version>
	</parent>
	<groupId>com.example</groupId>
	<artifactId>demo</artifactId>
	<packaging>jar</packaging>
	<dependencyManagement>
		<dependencies>
			<dependency>
				<groupId>org.example</groupId>
				<artifactId>bom</artifactId>
			</dependency>
		</dependencies>
	</dependencyManagement>
	<dependencies>
		<dependency>
			<groupId>org.springframework.boot</groupId>
			<artifactId>spring-boot-starter-web</artifactId>
		</dependency>
	</dependencies>
	<build>
		<plugins>
			<plugin>
				<groupId>org.springframework.boot</groupId>
				<artifactId>spring-boot-maven-plugin</artifactId>
			</plugin>
		</plugins>
	</build>
</project>
`

const groovyTemplate = `plugins {
	id 'java'
	id 'org.springframework.boot' version '3.2.1'
	id 'io.spring.dependency-management' version '1.1.4'
}

group = "com.example"

java {
	toolchain {
		languageVersion = JavaLanguageVersion.of(17)
	}
}

dependencies {
	implementation 'org.springframework.boot:spring-boot-starter-web'
}
`

const kotlinTemplate = `plugins {
	id("org.springframework.boot") version "3.2.1"
	kotlin("jvm") version "1.9.21"
	kotlin("plugin.spring") version "1.9.21"
}

group = "com.example"

dependencies {
	implementation("org.springframework.boot:spring-boot-starter-web")
}
`

func config() types.GenerationConfig {
	return types.GenerationConfig{
		ProjectName:       "shop",
		Frontend:          types.FrontendVite,
		Language:          types.LanguageJava,
		BuildTool:         types.BuildToolMaven,
		Packaging:         types.PackagingJar,
		GroupID:           "com.acme",
		ArtifactID:        "shop",
		JavaVersion:       "21",
		SpringBootVersion: "3.1.7",
	}
}

func TestRuleOrder(t *testing.T) {
	var names []string
	for _, rule := range Rules(config()) {
		names = append(names, rule.Name)
	}

	assert.Equal(t, []string{
		"group-id-token",
		"artifact-id-token",
		"java-version-token",
		"spring-boot-version-token",
		"package-name-token",
		"java-toolchain",
		"maven-boot-version",
		"gradle-boot-version",
		"packaging",
		"default-package",
		"default-group",
		"default-artifact",
		"gradle-group",
	}, names)
}

func TestRulesRewriteSource(t *testing.T) {
	cfg := config()
	cfg.ArtifactID = "my-shop"

	src := "package com.example.demo;\n\n@SpringBootApplication\npublic class DemoApplication {}\n"
	got := ApplyRules(Rules(cfg), src)

	assert.Equal(t, "package com.acme.myshop;\n\n@SpringBootApplication\npublic class DemoApplication {}\n", got)
}

func TestRulesReversedCorruptPackage(t *testing.T) {
	cfg := config()
	cfg.ArtifactID = "my-shop"

	rules := Rules(cfg)
	reversed := make([]Rule, len(rules))
	for i, rule := range rules {
		reversed[len(rules)-1-i] = rule
	}

	src := "package com.example.demo;"
	assert.NotEqual(t, ApplyRules(rules, src), ApplyRules(reversed, src))
	assert.Equal(t, "package com.acme.my-shop;", ApplyRules(reversed, src))
}

func TestRulesTokens(t *testing.T) {
	src := "{{GROUP_ID}}|{{ARTIFACT_ID}}|{{JAVA_VERSION}}|{{SPRING_BOOT_VERSION}}|{{PACKAGE_NAME}}"
	got := ApplyRules(Rules(config()), src)
	assert.Equal(t, "com.acme|shop|21|3.1.7|com.acme.shop", got)
}

func TestRulesVersionsAndPackaging(t *testing.T) {
	cfg := config()
	cfg.Packaging = types.PackagingWar

	got := ApplyRules(Rules(cfg), strings.Join([]string{
		"JavaLanguageVersion.of(17)",
		"<version>3.2.1</version>",
		`springBootVersion = "3.2.1"`,
		"<packaging>jar</packaging>",
		`group = "com.example"`,
	}, "\n"))

	assert.Equal(t, strings.Join([]string{
		"JavaLanguageVersion.of(21)",
		"<version>3.1.7</version>",
		`springBootVersion = "3.1.7"`,
		"<packaging>war</packaging>",
		`group = "com.acme"`,
	}, "\n"), got)
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		tool    types.BuildTool
		file    string
		want    string
		matches bool
	}{
		{types.BuildToolMaven, "pom.xml", "maven", true},
		{types.BuildToolGradle, "build.gradle", "gradle-groovy", true},
		{types.BuildToolGradle, "build.gradle.kts", "gradle-kotlin", true},
		{types.BuildToolGradle, "pom.xml", "", false},
		{types.BuildToolMaven, "build.gradle", "", false},
		{types.BuildToolMaven, "settings.gradle", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.tool)+"/"+tt.file, func(t *testing.T) {
			d, ok := DialectFor(tt.tool, tt.file)
			assert.Equal(t, tt.matches, ok)
			if ok {
				assert.Equal(t, tt.want, d.Name())
			}
		})
	}
}

func TestMavenWar(t *testing.T) {
	cfg := config()
	cfg.Packaging = types.PackagingWar

	got := New(cfg).Rewrite("server/pom.xml", pomTemplate)

	assert.Contains(t, got, "<packaging>war</packaging>")
	assert.Contains(t, got, "<artifactId>shop</artifactId>")
	assert.Contains(t, got, "<groupId>com.acme</groupId>")
	assert.Contains(t, got, "<version>3.1.7</version>")
	assert.Contains(t, got,
		"\t\t<dependency>\n"+
			"\t\t\t<groupId>org.springframework.boot</groupId>\n"+
			"\t\t\t<artifactId>spring-boot-starter-tomcat</artifactId>\n"+
			"\t\t\t<scope>provided</scope>\n"+
			"\t\t</dependency>\n"+
			"\t</dependencies>\n\t<build>")

	managed := got[strings.Index(got, "<dependencyManagement>"):strings.Index(got, "</dependencyManagement>")]
	assert.NotContains(t, managed, "tomcat")
}

func TestMavenFeatures(t *testing.T) {
	tests := []struct {
		database types.Database
		driver   string
	}{
		{types.DatabaseH2, "<artifactId>h2</artifactId>"},
		{types.DatabasePostgreSQL, "<artifactId>postgresql</artifactId>"},
		{types.DatabaseMySQL, "<artifactId>mysql-connector-j</artifactId>"},
	}

	for _, tt := range tests {
		t.Run(string(tt.database), func(t *testing.T) {
			cfg := config()
			cfg.Database = tt.database
			cfg.Security = true

			got := New(cfg).Rewrite("pom.xml", pomTemplate)

			assert.Contains(t, got, "<artifactId>spring-boot-starter-data-jpa</artifactId>")
			assert.Contains(t, got, tt.driver+"\n\t\t\t<scope>runtime</scope>")
			assert.Contains(t, got, "<artifactId>spring-boot-starter-security</artifactId>")
			assert.Contains(t, got, "<artifactId>spring-security-test</artifactId>\n\t\t\t<scope>test</scope>")
			assert.NotContains(t, got, "spring-boot-starter-tomcat")
		})
	}
}

func TestNoFeaturesLeavesDependencies(t *testing.T) {
	cfg := config()
	cfg.Database = types.DatabaseNone

	got := New(cfg).Rewrite("pom.xml", pomTemplate)

	assert.NotContains(t, got, "data-jpa")
	assert.Equal(t, strings.Count(pomTemplate, "<dependency>"), strings.Count(got, "<dependency>"))
}

func TestGroovyGradleWar(t *testing.T) {
	cfg := config()
	cfg.BuildTool = types.BuildToolGradle
	cfg.Packaging = types.PackagingWar
	cfg.Security = true

	got := New(cfg).Rewrite("build.gradle", groovyTemplate)

	assert.Contains(t, got, "\tid 'java'\n\tid 'war'\n\tid 'org.springframework.boot' version '3.2.1'")
	assert.Contains(t, got, "dependencies {\n"+
		"\tprovidedRuntime 'org.springframework.boot:spring-boot-starter-tomcat'\n"+
		"\timplementation 'org.springframework.boot:spring-boot-starter-security'\n"+
		"\ttestImplementation 'org.springframework.security:spring-security-test'\n"+
		"\timplementation 'org.springframework.boot:spring-boot-starter-web'\n")
	assert.Contains(t, got, `group = "com.acme"`)
	assert.Contains(t, got, "JavaLanguageVersion.of(21)")
}

func TestKotlinGradleWar(t *testing.T) {
	cfg := config()
	cfg.Language = types.LanguageKotlin
	cfg.BuildTool = types.BuildToolGradle
	cfg.Packaging = types.PackagingWar
	cfg.Database = types.DatabaseH2

	got := New(cfg).Rewrite("build.gradle.kts", kotlinTemplate)

	assert.Equal(t, 1, strings.Count(got, `id("war")`))
	assert.Contains(t, got, "\tkotlin(\"plugin.spring\") version \"1.9.21\"\n\tid(\"war\")\n}")
	assert.Contains(t, got, "\tid(\"org.springframework.boot\") version \"3.2.1\"\n\tkotlin(\"jvm\")")
	assert.Contains(t, got, `providedRuntime("org.springframework.boot:spring-boot-starter-tomcat")`)
	assert.Contains(t, got, `implementation("org.springframework.boot:spring-boot-starter-data-jpa")`)
	assert.Contains(t, got, `runtimeOnly("com.h2database:h2")`)
}

func TestKotlinWarFallsBackToPluginsBlock(t *testing.T) {
	content := "plugins {\n\tid(\"org.springframework.boot\")\n}\n"
	got := gradleKotlinDialect{}.ActivateWar(content)
	assert.Equal(t, "plugins {\n\tid(\"war\")\n\tid(\"org.springframework.boot\")\n}\n", got)
}

func TestRewriteIsIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		language types.Language
		tool     types.BuildTool
		file     string
		content  string
	}{
		{"maven", types.LanguageJava, types.BuildToolMaven, "pom.xml", pomTemplate},
		{"gradle-groovy", types.LanguageGroovy, types.BuildToolGradle, "build.gradle", groovyTemplate},
		{"gradle-kotlin", types.LanguageKotlin, types.BuildToolGradle, "build.gradle.kts", kotlinTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config()
			cfg.Language = tt.language
			cfg.BuildTool = tt.tool
			cfg.Packaging = types.PackagingWar
			cfg.Database = types.DatabasePostgreSQL
			cfg.Security = true

			r := New(cfg)
			once := r.Rewrite(tt.file, tt.content)
			twice := r.Rewrite(tt.file, once)

			require.NotEqual(t, tt.content, once)
			assert.Equal(t, once, twice)
		})
	}
}

// The default group and artifact are replaced as plain substrings, so a
// second pass is only stable when the new values do not contain them.
func TestLiteralRulesReapplyToOverlappingNames(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		artifact string
		content  string
		once     string
		twice    string
	}{
		{
			name:     "artifact containing demo",
			group:    "com.acme",
			artifact: "demo-app",
			content:  "spring.application.name=demo\n",
			once:     "spring.application.name=demo-app\n",
			twice:    "spring.application.name=demo-app-app\n",
		},
		{
			name:     "group extending com.example",
			group:    "com.example.store",
			artifact: "shop",
			content:  "owner=com.example\n",
			once:     "owner=com.example.store\n",
			twice:    "owner=com.example.store.store\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config()
			cfg.GroupID = tt.group
			cfg.ArtifactID = tt.artifact

			r := New(cfg)
			once := r.Rewrite("application.properties", tt.content)
			assert.Equal(t, tt.once, once)
			assert.Equal(t, tt.twice, r.Rewrite("application.properties", once))
		})
	}
}

func TestDeclaredFeatureIsSkipped(t *testing.T) {
	cfg := config()
	cfg.Security = true

	pom := strings.Replace(pomTemplate, "\t</dependencies>\n\t<build>",
		"\t\t<dependency>\n"+
			"\t\t\t<groupId>org.springframework.boot</groupId>\n"+
			"\t\t\t<artifactId>spring-boot-starter-security</artifactId>\n"+
			"\t\t</dependency>\n"+
			"\t</dependencies>\n\t<build>", 1)

	got := New(cfg).Rewrite("pom.xml", pom)

	assert.Equal(t, 1, strings.Count(got, "spring-boot-starter-security"))
	assert.NotContains(t, got, "spring-security-test")
}

func TestForeignDescriptorOnlyGetsRules(t *testing.T) {
	cfg := config()
	cfg.BuildTool = types.BuildToolGradle
	cfg.Security = true

	got := New(cfg).Rewrite("pom.xml", pomTemplate)

	assert.NotContains(t, got, "spring-boot-starter-security")
	assert.Contains(t, got, "<artifactId>shop</artifactId>")
}

func TestPomWithoutDependencies(t *testing.T) {
	cfg := config()
	cfg.Security = true

	pom := "<project>\n\t<artifactId>demo</artifactId>\n</project>\n"
	got := New(cfg).Rewrite("pom.xml", pom)

	assert.Equal(t, "<project>\n\t<artifactId>shop</artifactId>\n</project>\n", got)
}
