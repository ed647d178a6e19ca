package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/cli"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
)

const (
	flagPackagePath  = "package-path"
	flagOutputPath   = "output-path"
	flagPackageNames = "package-names"
	flagSources      = "sources"
	flagModule       = "module"
	flagVerbose      = "verbose"
	flagQuiet        = "quiet"
	flagClean        = "clean"
	flagConfig       = "config"

	// packagePathEnv supplies the default package path
	packagePathEnv = "ROS_PACKAGE_PATH"
)

// app carries the output streams of one invocation
type app struct {
	stdout io.Writer
	stderr io.Writer
	colors bool
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, colors: true}
	cmd, err := a.rootCommand()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCommand builds the geninterfaces command. Flags, an optional config
// file and ROS_PACKAGE_PATH are resolved here and nowhere else.
func (a *app) rootCommand() (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "geninterfaces [package-names...]",
		Short: "Generate Go interfaces from .msg and .srv definitions",
		Long: `Generate Go interfaces from message and service definitions.

Every <package>/msg/<Type>.msg and <package>/srv/<Type>.srv file found below
the package and source paths is resolved together with every type it
references, and written as <output-path>/<package>/<Type>.go. A service
produces a container interface plus <Type>Request and <Type>Response.

Path lists are separated by the platform path list separator.

Examples:
  geninterfaces -p "$ROS_PACKAGE_PATH" -s ./src -o ./gen
  geninterfaces -p ./src/my_msgs -s ./src -n my_msgs -o ./gen
  geninterfaces --module github.com/acme/robot/gen -s ./src -o ./gen
  geninterfaces --clean -o ./gen`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(v, args)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringP(flagPackagePath, "p", "", "Package roots to scan (defaults to $"+packagePathEnv+")")
	flags.StringP(flagOutputPath, "o", ".", "Directory receiving one directory per generated package")
	flags.StringSliceP(flagPackageNames, "n", nil, "Packages to generate (default: every discovered package)")
	flags.StringP(flagSources, "s", "", "Source roots to scan")
	flags.String(flagModule, "", "Import path of the output directory (defaults to the go.mod above it)")
	flags.BoolP(flagVerbose, "v", false, "Enable verbose output and detailed error reporting")
	flags.BoolP(flagQuiet, "q", false, "Only show errors and final results")
	flags.Bool(flagClean, false, "Delete previously generated files below the output path and exit")
	flags.String(flagConfig, "", "Config file (YAML or TOML) using the flag names as keys")

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindEnv(flagPackagePath, packagePathEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", packagePathEnv, err)
	}

	return cmd, nil
}

// run executes one invocation with fully resolved settings
func (a *app) run(v *viper.Viper, args []string) error {
	if configFile := v.GetString(flagConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(a.stderr, "Error: failed to read config file %s: %v\n", configFile, err)
			return err
		}
	}

	verbose := v.GetBool(flagVerbose)
	diagnostics := a.diagnostics(verbose, v.GetBool(flagQuiet))
	reporter := cli.NewDiagnosticReporterWithWriter(verbose, a.stderr)

	diagnostics.Section("Interface Generator")

	outputDir := v.GetString(flagOutputPath)

	if v.GetBool(flagClean) {
		diagnostics.Info("Cleaning generated files below %s", outputDir)
		removed, err := cli.NewCleaner(nil).CleanGeneratedFiles(outputDir)
		if err != nil {
			reporter.ReportError(err)
			return err
		}
		for _, file := range removed {
			diagnostics.Verbose("Removed %s", file)
		}
		diagnostics.Success("Removed %d generated file(s)", len(removed))
		return nil
	}

	config := cli.Config{
		OutputDir:    outputDir,
		PackageNames: append(cleanList(v.GetStringSlice(flagPackageNames)), args...),
		PackagePaths: pathList(v, flagPackagePath),
		SourcePaths:  pathList(v, flagSources),
		ModuleName:   v.GetString(flagModule),
		Verbose:      verbose,
	}

	if verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Package paths: %s", strings.Join(config.PackagePaths, ", "))
		diagnostics.List("Source paths: %s", strings.Join(config.SourcePaths, ", "))
		diagnostics.List("Output path: %s", config.OutputDir)
		if len(config.PackageNames) > 0 {
			diagnostics.List("Packages: %s", strings.Join(config.PackageNames, ", "))
		}
		if config.ModuleName != "" {
			diagnostics.List("Module: %s", config.ModuleName)
		}
	}

	generator := cli.NewGeneratorWithDiagnostics(diagnostics)

	diagnostics.Subsection("Code Generation")
	summary, err := generator.Generate(config)
	if err != nil {
		reporter.ReportError(err)
		return err
	}

	diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Packages processed": summary.PackagesProcessed,
		"Messages found":     summary.MessagesFound,
		"Services found":     summary.ServicesFound,
		"Units attempted":    summary.UnitsAttempted,
		"Files generated":    summary.UnitsGenerated,
		"Failed units":       len(summary.Failures),
	})

	if verbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	reporter.ReportFailures(summary.Failures)
	return nil
}

func (a *app) diagnostics(verbose, quiet bool) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case quiet:
		level = utils.DiagnosticError
	case verbose:
		level = utils.DiagnosticVerbose
	}

	if a.colors {
		return utils.NewDiagnosticSystem(level)
	}
	return utils.NewDiagnosticSystemWithWriters(level, a.stdout, a.stderr)
}

// pathList reads a path list setting. Strings are split on the platform
// path list separator; config files may also give a list.
func pathList(v *viper.Viper, key string) []string {
	switch value := v.Get(key).(type) {
	case nil:
		return nil
	case string:
		return cleanList(filepath.SplitList(value))
	default:
		return cleanList(v.GetStringSlice(key))
	}
}

// cleanList trims entries and drops empty ones
func cleanList(items []string) []string {
	var result []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
