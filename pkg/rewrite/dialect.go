package rewrite

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// Dialect edits one kind of build descriptor
type Dialect interface {
	// Name identifies the dialect in logs
	Name() string
	// FileName is the descriptor file the dialect owns
	FileName() string
	// BuildTool is the build tool the descriptor belongs to
	BuildTool() types.BuildTool
	// Declares reports whether content already declares dep
	Declares(content string, dep Dependency) bool
	// InsertDependencies adds deps to the dependency section
	InsertDependencies(content string, deps []Dependency) string
	// ActivateWar registers the war plugin where the dialect needs one
	ActivateWar(content string) string
}

var dialects = []Dialect{
	mavenDialect{},
	gradleGroovyDialect{},
	gradleKotlinDialect{},
}

// DialectFor returns the dialect owning fileName for the given build tool.
// A pom.xml in a Gradle template, or the reverse, is not a descriptor.
func DialectFor(tool types.BuildTool, fileName string) (Dialect, bool) {
	for _, d := range dialects {
		if d.BuildTool() == tool && d.FileName() == fileName {
			return d, true
		}
	}
	return nil, false
}

// mavenDialect edits pom.xml
type mavenDialect struct{}

func (mavenDialect) Name() string               { return "maven" }
func (mavenDialect) FileName() string           { return "pom.xml" }
func (mavenDialect) BuildTool() types.BuildTool { return types.BuildToolMaven }

// Declares parses the descriptor and looks for the artifact among declared
// dependencies. Templates that are not well-formed XML fall back to a
// plain text search.
func (mavenDialect) Declares(content string, dep Dependency) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return strings.Contains(content, "<artifactId>"+dep.Artifact+"</artifactId>")
	}
	for _, el := range doc.FindElements("//dependency") {
		artifact := el.SelectElement("artifactId")
		if artifact == nil || strings.TrimSpace(artifact.Text()) != dep.Artifact {
			continue
		}
		group := el.SelectElement("groupId")
		if group == nil || strings.TrimSpace(group.Text()) == dep.Group {
			return true
		}
	}
	return false
}

func (mavenDialect) render(dep Dependency) string {
	var b strings.Builder
	b.WriteString("\t\t<dependency>\n")
	fmt.Fprintf(&b, "\t\t\t<groupId>%s</groupId>\n", dep.Group)
	fmt.Fprintf(&b, "\t\t\t<artifactId>%s</artifactId>\n", dep.Artifact)
	switch dep.Scope {
	case ScopeRuntime:
		b.WriteString("\t\t\t<scope>runtime</scope>\n")
	case ScopeProvided:
		b.WriteString("\t\t\t<scope>provided</scope>\n")
	case ScopeTest:
		b.WriteString("\t\t\t<scope>test</scope>\n")
	}
	b.WriteString("\t\t</dependency>\n")
	return b.String()
}

// InsertDependencies places the block just before the project-level
// </dependencies>, skipping dependencyManagement and plugin dependencies.
func (d mavenDialect) InsertDependencies(content string, deps []Dependency) string {
	idx := projectDependenciesEnd(content)
	if idx < 0 || len(deps) == 0 {
		return content
	}

	var block strings.Builder
	for _, dep := range deps {
		block.WriteString(d.render(dep))
	}

	at := lineStart(content, idx)
	if strings.TrimSpace(content[at:idx]) != "" {
		// closing tag shares its line with other markup
		at = idx
		return content[:at] + "\n" + block.String() + "\t" + content[at:]
	}
	return content[:at] + block.String() + content[at:]
}

// ActivateWar is a no-op: Maven switches to war through <packaging>
func (mavenDialect) ActivateWar(content string) string {
	return content
}

// projectDependenciesEnd finds the </dependencies> closing the project's own
// dependency list, or -1.
func projectDependenciesEnd(content string) int {
	excluded := append(
		regions(content, "<dependencyManagement>", "</dependencyManagement>"),
		regions(content, "<build>", "</build>")...,
	)
	excluded = append(excluded, regions(content, "<profiles>", "</profiles>")...)

	const closing = "</dependencies>"
	offset := 0
	for {
		i := strings.Index(content[offset:], closing)
		if i < 0 {
			return -1
		}
		pos := offset + i
		if !inRegions(excluded, pos) {
			return pos
		}
		offset = pos + len(closing)
	}
}

type region struct{ start, end int }

func regions(content, open, close string) []region {
	var out []region
	offset := 0
	for {
		i := strings.Index(content[offset:], open)
		if i < 0 {
			return out
		}
		start := offset + i
		j := strings.Index(content[start:], close)
		if j < 0 {
			return append(out, region{start: start, end: len(content)})
		}
		end := start + j + len(close)
		out = append(out, region{start: start, end: end})
		offset = end
	}
}

func inRegions(rs []region, pos int) bool {
	for _, r := range rs {
		if pos >= r.start && pos < r.end {
			return true
		}
	}
	return false
}

// gradleDialect holds what both Gradle script dialects share: the
// dependency block opens with a top-level "dependencies {" line and
// declarations are configuration + coordinate.
type gradleDialect struct {
	quote func(coordinate string) string
}

func configuration(scope Scope) string {
	switch scope {
	case ScopeRuntime:
		return "runtimeOnly"
	case ScopeProvided:
		return "providedRuntime"
	case ScopeTest:
		return "testImplementation"
	default:
		return "implementation"
	}
}

func (g gradleDialect) declares(content string, dep Dependency) bool {
	return strings.Contains(content, dep.Coordinate())
}

func (g gradleDialect) insert(content string, deps []Dependency) string {
	at := dependenciesOpenEnd(content)
	if at < 0 || len(deps) == 0 {
		return content
	}

	var block strings.Builder
	for _, dep := range deps {
		fmt.Fprintf(&block, "\t%s%s\n", configuration(dep.Scope), g.quote(dep.Coordinate()))
	}
	return content[:at] + block.String() + content[at:]
}

// dependenciesOpenEnd returns the offset just past the top-level
// "dependencies {" line, falling back to the first such line at any depth.
func dependenciesOpenEnd(content string) int {
	fallback := -1
	offset := 0
	for offset < len(content) {
		end := lineEnd(content, offset)
		line := strings.TrimRight(content[offset:end], "\r\n")
		if strings.TrimSpace(line) == "dependencies {" {
			if line == strings.TrimLeft(line, " \t") {
				return end
			}
			if fallback < 0 {
				fallback = end
			}
		}
		offset = end
	}
	return fallback
}

// insertLineBefore inserts text as a new line above the line containing
// anchor, with the anchor line's indentation.
func insertLineBefore(content, anchor, text string) (string, bool) {
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return content, false
	}
	start := lineStart(content, idx)
	indent := content[start:idx]
	if strings.TrimSpace(indent) != "" {
		indent = "\t"
	}
	return content[:start] + indent + text + "\n" + content[start:], true
}

// insertLineAfter inserts text as a new line below the line containing
// anchor, indented like that line, or by one tab when the anchor opens a
// block.
func insertLineAfter(content, anchor, text string) (string, bool) {
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return content, false
	}
	start := lineStart(content, idx)
	end := lineEnd(content, idx)
	line := content[start:end]
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	if strings.HasSuffix(strings.TrimSpace(line), "{") {
		indent += "\t"
	}
	prefix := content[:end]
	if !strings.HasSuffix(prefix, "\n") {
		prefix += "\n"
	}
	return prefix + indent + text + "\n" + content[end:], true
}

// gradleGroovyDialect edits build.gradle
type gradleGroovyDialect struct{}

var groovyDSL = gradleDialect{quote: func(c string) string { return " '" + c + "'" }}

func (gradleGroovyDialect) Name() string               { return "gradle-groovy" }
func (gradleGroovyDialect) FileName() string           { return "build.gradle" }
func (gradleGroovyDialect) BuildTool() types.BuildTool { return types.BuildToolGradle }

func (gradleGroovyDialect) Declares(content string, dep Dependency) bool {
	return groovyDSL.declares(content, dep)
}

func (gradleGroovyDialect) InsertDependencies(content string, deps []Dependency) string {
	return groovyDSL.insert(content, deps)
}

// ActivateWar registers id 'war' ahead of the Spring Boot plugin
func (gradleGroovyDialect) ActivateWar(content string) string {
	const plugin = "id 'war'"
	if strings.Contains(content, plugin) {
		return content
	}
	if out, ok := insertLineBefore(content, "id 'org.springframework.boot'", plugin); ok {
		return out
	}
	out, _ := insertLineAfter(content, "plugins {", plugin)
	return out
}

// gradleKotlinDialect edits build.gradle.kts
type gradleKotlinDialect struct{}

var kotlinDSL = gradleDialect{quote: func(c string) string { return "(\"" + c + "\")" }}

func (gradleKotlinDialect) Name() string               { return "gradle-kotlin" }
func (gradleKotlinDialect) FileName() string           { return "build.gradle.kts" }
func (gradleKotlinDialect) BuildTool() types.BuildTool { return types.BuildToolGradle }

func (gradleKotlinDialect) Declares(content string, dep Dependency) bool {
	return kotlinDSL.declares(content, dep)
}

func (gradleKotlinDialect) InsertDependencies(content string, deps []Dependency) string {
	return kotlinDSL.insert(content, deps)
}

// ActivateWar registers id("war") after the Kotlin Spring plugin
func (gradleKotlinDialect) ActivateWar(content string) string {
	const plugin = `id("war")`
	if strings.Contains(content, plugin) {
		return content
	}
	if out, ok := insertLineAfter(content, `kotlin("plugin.spring")`, plugin); ok {
		return out
	}
	out, _ := insertLineAfter(content, "plugins {", plugin)
	return out
}

func lineStart(content string, idx int) int {
	return strings.LastIndex(content[:idx], "\n") + 1
}

// lineEnd returns the offset just past the newline ending the line at idx
func lineEnd(content string, idx int) int {
	i := strings.Index(content[idx:], "\n")
	if i < 0 {
		return len(content)
	}
	return idx + i + 1
}
