package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/SmileNJsx/scala/report"

	"github.com/pelletier/go-toml"
)

// ScalabVersion is the current version of the backend tool.
const ScalabVersion = "0.3.1"

// DefaultTargetRelease is the JVM release targeted when the project file does
// not name one.
const DefaultTargetRelease = 8

// tomlProfileFile represents a project file as it is encoded in TOML.
type tomlProfileFile struct {
	Project *tomlProject     `toml:"project"`
	Build   *tomlBuildConfig `toml:"build"`
}

// tomlProject represents the project header.
type tomlProject struct {
	Name          string `toml:"name"`
	ScalabVersion string `toml:"scalab-version,omitempty"`
}

// tomlBuildConfig represents the build configuration table.
type tomlBuildConfig struct {
	Graph               string `toml:"graph"`
	Output              string `toml:"output,omitempty"`
	TargetRelease       int    `toml:"target-release,omitempty"`
	CompilingPrimitives bool   `toml:"compiling-primitives,omitempty"`
	LogLevel            string `toml:"log-level,omitempty"`
}

// BuildProfile represents the current build configuration.
type BuildProfile struct {
	// The project name, for display purposes only.
	Name string

	// The path to the symbol graph file being built.
	GraphPath string

	// The path the descriptor listing is written to.  Empty means console
	// output only.
	OutputPath string

	// The JVM release the descriptors target.
	TargetRelease int

	// Whether this build compiles the primitive library itself.
	CompilingPrimitives bool

	// The reporter log level.
	LogLevel int
}

// ClassfileMajorVersion returns the class-file major version corresponding to
// the profile's target release.
func (bp *BuildProfile) ClassfileMajorVersion() int {
	return bp.TargetRelease + 44
}

var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// LoadProfile loads and validates the build profile from a TOML project file.
// Relative paths inside the file are resolved against the file's directory.
// Errors here are expected user errors, not compiler defects, so they are
// returned rather than asserted.
func LoadProfile(path string) (*BuildProfile, error) {
	// open file
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	if tpf.Project == nil || tpf.Project.Name == "" {
		return nil, fmt.Errorf("missing project name in %s", path)
	}

	if v := tpf.Project.ScalabVersion; v != "" && v != ScalabVersion {
		report.ReportWarning("project `%s` targets scalab v%s, current version is v%s",
			tpf.Project.Name, v, ScalabVersion)
	}

	if tpf.Build == nil || tpf.Build.Graph == "" {
		return nil, fmt.Errorf("project %s names no symbol graph to build", tpf.Project.Name)
	}

	release := tpf.Build.TargetRelease
	if release == 0 {
		release = DefaultTargetRelease
	}
	if release < DefaultTargetRelease {
		return nil, fmt.Errorf("project %s targets unsupported JVM release %d", tpf.Project.Name, release)
	}

	logLevel := report.LogLevelVerbose
	if tpf.Build.LogLevel != "" {
		lvl, ok := logLevelNames[tpf.Build.LogLevel]
		if !ok {
			return nil, fmt.Errorf("project %s has unknown log level `%s`", tpf.Project.Name, tpf.Build.LogLevel)
		}
		logLevel = lvl
	}

	// project-relative paths are anchored at the project file's directory
	root := filepath.Dir(path)

	return &BuildProfile{
		Name:                tpf.Project.Name,
		GraphPath:           anchorPath(root, tpf.Build.Graph),
		OutputPath:          anchorPath(root, tpf.Build.Output),
		TargetRelease:       release,
		CompilingPrimitives: tpf.Build.CompilingPrimitives,
		LogLevel:            logLevel,
	}, nil
}

// anchorPath resolves a project-file path against the project root, leaving
// absolute and empty paths untouched.
func anchorPath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(root, path)
}
