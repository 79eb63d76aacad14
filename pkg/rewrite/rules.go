package rewrite

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// Literals the backend templates ship with. They are rewritten to the
// configured values.
const (
	DefaultPackage     = "com.example.demo"
	DefaultGroup       = "com.example"
	DefaultArtifact    = "demo"
	DefaultJavaVersion = "17"
	DefaultBootVersion = "3.2.1"
	DefaultPackaging   = "jar"
)

// Rule is one substitution over a whole file's text
type Rule struct {
	Name  string
	Apply func(content string) string
}

func literal(name, old, replacement string) Rule {
	return Rule{
		Name: name,
		Apply: func(content string) string {
			return strings.ReplaceAll(content, old, replacement)
		},
	}
}

// Rules returns the substitutions for cfg in the order they must run.
//
// Explicit {{TOKENS}} go first. Version and packaging literals follow. The
// default package, group and artifact literals are replaced from the
// longest to the shortest because each is a substring of the previous one:
// running "demo" first would turn com.example.demo into a group-prefixed
// name the package rule no longer sees.
func Rules(cfg types.GenerationConfig) []Rule {
	packageName := cfg.PackageName()

	return []Rule{
		literal("group-id-token", "{{GROUP_ID}}", cfg.GroupID),
		literal("artifact-id-token", "{{ARTIFACT_ID}}", cfg.ArtifactID),
		literal("java-version-token", "{{JAVA_VERSION}}", cfg.JavaVersion),
		literal("spring-boot-version-token", "{{SPRING_BOOT_VERSION}}", cfg.SpringBootVersion),
		literal("package-name-token", "{{PACKAGE_NAME}}", packageName),

		literal("java-toolchain",
			fmt.Sprintf("JavaLanguageVersion.of(%s)", DefaultJavaVersion),
			fmt.Sprintf("JavaLanguageVersion.of(%s)", cfg.JavaVersion)),
		literal("maven-boot-version",
			fmt.Sprintf("<version>%s</version>", DefaultBootVersion),
			fmt.Sprintf("<version>%s</version>", cfg.SpringBootVersion)),
		literal("gradle-boot-version",
			fmt.Sprintf("springBootVersion = %q", DefaultBootVersion),
			fmt.Sprintf("springBootVersion = %q", cfg.SpringBootVersion)),

		literal("packaging",
			fmt.Sprintf("<packaging>%s</packaging>", DefaultPackaging),
			fmt.Sprintf("<packaging>%s</packaging>", cfg.Packaging)),

		literal("default-package", DefaultPackage, packageName),
		literal("default-group", DefaultGroup, cfg.GroupID),
		// TODO: restrict to word boundaries; any "demo" substring in a template is rewritten today.
		literal("default-artifact", DefaultArtifact, cfg.ArtifactID),

		literal("gradle-group",
			fmt.Sprintf("group = %q", DefaultGroup),
			fmt.Sprintf("group = %q", cfg.GroupID)),
	}
}

// ApplyRules runs rules over content in order
func ApplyRules(rules []Rule, content string) string {
	for _, rule := range rules {
		content = rule.Apply(content)
	}
	return content
}
