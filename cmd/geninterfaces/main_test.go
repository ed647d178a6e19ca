package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// execute runs the command in-process and returns stdout, stderr and the error
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr}

	cmd, err := a.rootCommand()
	require.NoError(t, err)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_RootCommandBindsSettings(t *testing.T) {
	a := &app{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}

	cmd, err := a.rootCommand()
	require.NoError(t, err)
	require.NotNil(t, cmd)

	for _, name := range []string{flagPackagePath, flagOutputPath, flagPackageNames, flagSources, flagModule, flagVerbose, flagQuiet, flagClean, flagConfig} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestCLI_Help(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--package-path")
	assert.Contains(t, stdout, "--output-path")
	assert.Contains(t, stdout, "--package-names")
	assert.Contains(t, stdout, "--sources")
	assert.Contains(t, stdout, "--module")
	assert.Contains(t, stdout, "ROS_PACKAGE_PATH")
}

func TestCLI_MissingPackagePath(t *testing.T) {
	t.Setenv(packagePathEnv, "")

	_, stderr, err := execute(t, "-s", t.TempDir(), "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, stderr, "no package path supplied")
	assert.Contains(t, stderr, "Configuration Error")
}

func TestCLI_MissingSourcePath(t *testing.T) {
	_, stderr, err := execute(t, "-p", t.TempDir(), "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, stderr, "no source path supplied")
}

func TestCLI_GeneratesFromFlags(t *testing.T) {
	ws := t.TempDir()
	out := t.TempDir()
	writeFiles(t, ws, map[string]string{
		"geometry_msgs/msg/Point.msg": "float64 x\nfloat64 y\n",
		"nav_msgs/msg/Path.msg":       "geometry_msgs/Point[] points\n",
	})

	stdout, _, err := execute(t, "-p", ws, "-s", ws, "-o", out, "--module", "example.com/gen")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "geometry_msgs", "Point.go"))
	assert.FileExists(t, filepath.Join(out, "nav_msgs", "Path.go"))
	assert.Contains(t, stdout, "Generation Complete!")
	assert.Contains(t, stdout, "Files generated: 2")
}

func TestCLI_PackagePathFromEnvironment(t *testing.T) {
	pkgs := t.TempDir()
	src := t.TempDir()
	out := t.TempDir()
	writeFiles(t, pkgs, map[string]string{"std_pkg/msg/Base.msg": "int32 id\n"})
	writeFiles(t, src, map[string]string{"demo/msg/Uses.msg": "std_pkg/Base base\n"})

	t.Setenv(packagePathEnv, strings.Join([]string{filepath.Join(pkgs, "missing"), pkgs}, string(os.PathListSeparator)))

	_, _, err := execute(t, "-s", src, "-o", out, "--module", "example.com/gen", "demo")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(out, "demo", "Uses.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "MSG: std_pkg/Base")
	assert.NoFileExists(t, filepath.Join(out, "std_pkg", "Base.go"))
}

func TestCLI_UnitFailuresKeepExitStatus(t *testing.T) {
	ws := t.TempDir()
	out := t.TempDir()
	writeFiles(t, ws, map[string]string{
		"demo/msg/Broken.msg": "nowhere/Gone g\n",
		"demo/msg/Fine.msg":   "int32 x\n",
	})

	_, stderr, err := execute(t, "-p", ws, "-s", ws, "-o", out, "-n", "demo")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "demo", "Fine.go"))
	assert.Contains(t, stderr, "1 generation unit(s) failed")
	assert.Contains(t, stderr, "demo/Broken")
}

func TestCLI_ConfigFile(t *testing.T) {
	ws := t.TempDir()
	out := t.TempDir()
	writeFiles(t, ws, map[string]string{"demo/msg/Fine.msg": "int32 x\n"})

	configPath := filepath.Join(t.TempDir(), "geninterfaces.yaml")
	config := "package-path: " + ws + "\nsources: " + ws + "\noutput-path: " + out + "\nmodule: example.com/gen\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0644))

	_, _, err := execute(t, "--config", configPath, "-q")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "demo", "Fine.go"))
}

func TestCLI_MissingConfigFile(t *testing.T) {
	_, stderr, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to read config file")
}

func TestCLI_Clean(t *testing.T) {
	ws := t.TempDir()
	out := t.TempDir()
	writeFiles(t, ws, map[string]string{"demo/msg/Fine.msg": "int32 x\n"})
	writeFiles(t, out, map[string]string{"demo/handwritten.go": "package demo\n"})

	_, _, err := execute(t, "-p", ws, "-s", ws, "-o", out)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(out, "demo", "Fine.go"))

	stdout, _, err := execute(t, "--clean", "-o", out)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(out, "demo", "Fine.go"))
	assert.FileExists(t, filepath.Join(out, "demo", "handwritten.go"))
	assert.Contains(t, stdout, "Removed 1 generated file(s)")
}
