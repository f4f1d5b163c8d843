package cmd

import (
	"os"
	"path/filepath"

	"github.com/SmileNJsx/scala/report"
	"github.com/SmileNJsx/scala/symbols"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `scalab` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("scalab", "scalab builds JVM class descriptors from a resolved symbol graph", true)
	cli.AddSelectorArg("loglevel", "ll", "the backend log level", false, []string{"silent", "error", "warn", "verbose"})

	buildCmd := cli.AddSubcommand("build", "build the class descriptors of a project", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project file", true)

	cli.AddSubcommand("version", "print the scalab version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// a log level given on the command line overrides the project file's
	logLvlVal, ok := result.Arguments["loglevel"]
	loglevel := ""
	if ok {
		loglevel = logLvlVal.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, loglevel)
	case "version":
		report.PrintInfoMessage("Scalab Version", ScalabVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		report.ReportFatal("unable to resolve project path `%s`: %s", projectRelPath, err.Error())
	}

	profile, err := LoadProfile(projectPath)
	if err != nil {
		report.ReportFatal("unable to load project file at `%s`: %s", projectPath, err.Error())
	}

	if loglevel != "" {
		profile.LogLevel = logLevelNames[loglevel]
	}

	report.InitReporter(profile.LogLevel)

	// internal errors raised during descriptor construction surface here
	defer report.CatchErrors()

	graph, err := symbols.LoadGraph(profile.GraphPath)
	if err != nil {
		report.ReportFatal("unable to load symbol graph at `%s`: %s", profile.GraphPath, err.Error())
	}

	b := NewBackend(graph, profile)
	b.Compile()
}
