package reactspring

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create React + Spring Boot projects from templates"
	MsgCreateShort     = "Create a new project"
	MsgTemplatesShort  = "List the available template variants"
	MsgConfigShort     = "Inspect the configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigFileNote = "# config file: %s\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrFormat         = "invalid --format: %w"
	MsgErrNoProjectName  = "a project name is required: pass it as an argument, in the answers file or drop --yes"

	// Flag descriptions
	MsgFlagVerbose           = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig            = "Use this config file instead of the user config"
	MsgFlagFormat            = "Output format: auto, term, text or json"
	MsgFlagTemplates         = "Template root directory"
	MsgFlagDir               = "Directory the project directory is created in"
	MsgFlagAnswers           = "Read answers from a .toml, .yaml or .yml file"
	MsgFlagYes               = "Do not ask, accept the defaults for open questions"
	MsgFlagDryRun            = "Show what would be created without writing anything"
	MsgFlagFrontend          = "Frontend framework: vite or cra"
	MsgFlagBackend           = "Backend language: java, kotlin or groovy"
	MsgFlagBuildTool         = "Build tool: maven or gradle"
	MsgFlagPackaging         = "Packaging: jar or war"
	MsgFlagGroupID           = "Maven group id, e.g. com.acme"
	MsgFlagArtifactID        = "Maven artifact id (defaults to the project name)"
	MsgFlagJavaVersion       = "Java version"
	MsgFlagSpringBootVersion = "Spring Boot version"
	MsgFlagDatabase          = "Database: none, h2, postgresql or mysql"
	MsgFlagSecurity          = "Add Spring Security"
)

// Long messages embedded from files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
