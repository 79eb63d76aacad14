package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// PNG is a small binary fixture. It embeds the placeholder package name so
// tests can prove binary files bypass the rewriter.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDRcom.example.demo\x00\xff\xfe{{GROUP_ID}}")

// Backends lists every backend language and build tool pair
var Backends = []struct {
	Language  types.Language
	BuildTool types.BuildTool
}{
	{types.LanguageJava, types.BuildToolMaven},
	{types.LanguageJava, types.BuildToolGradle},
	{types.LanguageKotlin, types.BuildToolMaven},
	{types.LanguageKotlin, types.BuildToolGradle},
	{types.LanguageGroovy, types.BuildToolMaven},
	{types.LanguageGroovy, types.BuildToolGradle},
}

// WriteTemplates writes a template root with both frontend variants and
// all six backend templates below root
func WriteTemplates(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	WriteTree(t, fsys, filepath.Join(root, "frontend", "vite"), map[string]string{
		"package.json": `{"name": "client", "scripts": {"dev": "vite"}}`,
		"index.html":   "<div id=\"root\"></div>\n",
		"src/App.jsx":  "export default function App() { return <h1>demo</h1> }\n",
	})
	WriteTree(t, fsys, filepath.Join(root, "frontend", "cra"), map[string]string{
		"package.json": `{"name": "client", "scripts": {"start": "react-scripts start"}}`,
		"src/App.jsx":  "export default function App() { return <h1>demo</h1> }\n",
	})

	for _, b := range Backends {
		cfg := types.GenerationConfig{Language: b.Language, BuildTool: b.BuildTool}
		WriteBackendTemplate(t, fsys, filepath.Join(root, "backend", cfg.BackendTemplate()), b.Language, b.BuildTool)
	}
}

// WriteBackendTemplate writes one backend template at dir
func WriteBackendTemplate(t *testing.T, fsys types.FS, dir string, language types.Language, tool types.BuildTool) {
	t.Helper()

	cfg := types.GenerationConfig{Language: language, BuildTool: tool}
	set := cfg.SourceSet()
	ext := cfg.SourceExt()
	pkg := "src/main/" + set + "/com/example/demo/"
	testPkg := "src/test/" + set + "/com/example/demo/"

	files := map[string]string{
		"src/main/resources/application.properties": "spring.application.name=demo\n",
	}
	files[cfg.BuildFile()] = buildFile(language, tool)
	files[pkg+"DemoApplication."+ext] = mainClass(language)
	files[pkg+"HelloController."+ext] = controller(language)
	files[testPkg+"DemoApplicationTests."+ext] = "package com.example.demo\n\nclass DemoApplicationTests {}\n"
	if tool == types.BuildToolGradle {
		settings := "settings.gradle"
		if language == types.LanguageKotlin {
			settings = "settings.gradle.kts"
		}
		files[settings] = "rootProject.name = \"demo\"\n"
		files["gradlew.bat"] = "@rem Gradle startup script for Windows\r\n"
	} else {
		files["mvnw.cmd"] = "@REM Maven wrapper for Windows\r\n"
	}
	WriteTree(t, fsys, dir, files)

	wrapper := filepath.Join(dir, cfg.WrapperScript())
	require.NoError(t, fsys.WriteFile(wrapper, []byte("#!/bin/sh\nexec java -jar wrapper.jar \"$@\"\n"), 0644))

	logo := filepath.Join(dir, "src", "main", "resources", "static", "logo.png")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(logo), 0755))
	require.NoError(t, fsys.WriteFile(logo, PNG, 0644))
}

func mainClass(language types.Language) string {
	switch language {
	case types.LanguageKotlin:
		return `package com.example.demo

import org.springframework.boot.autoconfigure.SpringBootApplication
import org.springframework.boot.runApplication

@SpringBootApplication
class DemoApplication

fun main(args: Array<String>) {
	runApplication<DemoApplication>(*args)
}
`
	case types.LanguageGroovy:
		return `package com.example.demo

import org.springframework.boot.SpringApplication
import org.springframework.boot.autoconfigure.SpringBootApplication

@SpringBootApplication
class DemoApplication {

	static void main(String[] args) {
		SpringApplication.run(DemoApplication, args)
	}

}
`
	default:
		return `package com.example.demo;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class DemoApplication {

	public static void main(String[] args) {
		SpringApplication.run(DemoApplication.class, args);
	}

}
`
	}
}

func controller(language types.Language) string {
	if language == types.LanguageJava {
		return `package com.example.demo;

@RestController
public class HelloController {
	@GetMapping("/api/hello")
	public String hello() {
		return "Hello from Spring Boot!";
	}
}
`
	}
	return `package com.example.demo

@RestController
class HelloController {
	@GetMapping("/api/hello")
	fun hello() = "Hello from Spring Boot!"
}
`
}

func buildFile(language types.Language, tool types.BuildTool) string {
	switch {
	case tool == types.BuildToolMaven:
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
	<modelVersion>4.0.0</modelVersion>
	<parent>
		<groupId>org.springframework.boot</groupId>
		<artifactId>spring-boot-starter-parent</artifactId>
		<version>3.2.1</version>
		<relativePath/>
	</parent>
	<groupId>com.example</groupId>
	<artifactId>demo</artifactId>
	<version>0.0.1-SNAPSHOT</version>
	<packaging>jar</packaging>
	<properties>
		<java.version>{{JAVA_VERSION}}</java.version>
	</properties>
	<dependencies>
		<dependency>
			<groupId>org.springframework.boot</groupId>
			<artifactId>spring-boot-starter-web</artifactId>
		</dependency>
		<dependency>
			<groupId>org.springframework.boot</groupId>
			<artifactId>spring-boot-starter-test</artifactId>
			<scope>test</scope>
		</dependency>
	</dependencies>
	<build>
		<sourceDirectory>src/main/%s</sourceDirectory>
		<plugins>
			<plugin>
				<groupId>org.springframework.boot</groupId>
				<artifactId>spring-boot-maven-plugin</artifactId>
			</plugin>
		</plugins>
	</build>
</project>
`, types.GenerationConfig{Language: language}.SourceSet())
	case language == types.LanguageKotlin:
		return `plugins {
	id("org.springframework.boot") version "3.2.1"
	id("io.spring.dependency-management") version "1.1.4"
	kotlin("jvm") version "1.9.21"
	kotlin("plugin.spring") version "1.9.21"
}

group = "com.example"
version = "0.0.1-SNAPSHOT"

java {
	toolchain {
		languageVersion = JavaLanguageVersion.of(17)
	}
}

dependencies {
	implementation("org.springframework.boot:spring-boot-starter-web")
	testImplementation("org.springframework.boot:spring-boot-starter-test")
}
`
	default:
		return fmt.Sprintf(`plugins {
	id '%s'
	id 'org.springframework.boot' version '3.2.1'
	id 'io.spring.dependency-management' version '1.1.4'
}

group = "com.example"
version = '0.0.1-SNAPSHOT'

java {
	toolchain {
		languageVersion = JavaLanguageVersion.of(17)
	}
}

dependencies {
	implementation 'org.springframework.boot:spring-boot-starter-web'
	testImplementation 'org.springframework.boot:spring-boot-starter-test'
}
`, types.GenerationConfig{Language: language}.SourceSet())
	}
}
