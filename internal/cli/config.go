package cli

import "github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"

// Config holds the configuration for an interface generation run
type Config struct {
	// OutputDir receives one directory per generated package
	OutputDir string

	// PackageNames restricts generation to these packages. Empty means every
	// discovered package.
	PackageNames []string

	// PackagePaths and SourcePaths are the roots scanned for definitions
	PackagePaths []string
	SourcePaths  []string

	// ModuleName is the import path of OutputDir. If empty it is derived
	// from the go.mod above OutputDir.
	ModuleName string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}

// Validate reports a configuration error for a run that cannot start
func (c Config) Validate() error {
	if len(c.PackagePaths) == 0 {
		return errors.ConfigurationError("package-path", "no package path supplied").
			WithSuggestions("Pass --package-path or set ROS_PACKAGE_PATH")
	}
	if len(c.SourcePaths) == 0 {
		return errors.ConfigurationError("sources", "no source path supplied").
			WithSuggestions("Pass --sources with at least one directory")
	}
	return nil
}

// SinglePackage returns the forced package name when exactly one package
// name was requested and exactly one package path exists as a directory.
// acceptedPackagePaths counts the package paths the scanners accepted.
func (c Config) SinglePackage(acceptedPackagePaths int) (string, bool) {
	if len(c.PackageNames) == 1 && acceptedPackagePaths == 1 {
		return c.PackageNames[0], true
	}
	return "", false
}

// Roots returns every directory to scan, package paths first
func (c Config) Roots() []string {
	roots := make([]string, 0, len(c.PackagePaths)+len(c.SourcePaths))
	roots = append(roots, c.PackagePaths...)
	roots = append(roots, c.SourcePaths...)
	return roots
}

// outputDir returns OutputDir, defaulting to the working directory
func (c Config) outputDir() string {
	if c.OutputDir == "" {
		return "."
	}
	return c.OutputDir
}
