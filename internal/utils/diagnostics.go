package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// messageStyle is how one kind of message is tagged and where it goes
type messageStyle struct {
	level  DiagnosticLevel
	tag    string
	attr   color.Attribute
	stderr bool
}

var (
	styleError   = messageStyle{DiagnosticError, "ERROR", color.FgRed, true}
	styleWarn    = messageStyle{DiagnosticWarn, "WARN", color.FgYellow, true}
	styleInfo    = messageStyle{DiagnosticInfo, "INFO", color.FgBlue, false}
	styleSuccess = messageStyle{DiagnosticInfo, "OK", color.FgGreen, false}
	styleVerbose = messageStyle{DiagnosticVerbose, "VERBOSE", color.FgHiBlack, false}
	styleDebug   = messageStyle{DiagnosticDebug, "DEBUG", color.FgMagenta, false}
)

// DiagnosticSystem writes leveled, optionally colored progress output
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	indent    int
}

// NewDiagnosticSystem creates a diagnostic system writing to stdout and stderr
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	d := NewDiagnosticSystemWithWriters(level, os.Stdout, os.Stderr)
	d.useColors = shouldUseColors()
	d.showTime = level >= DiagnosticVerbose
	return d
}

// NewDiagnosticSystemWithWriters creates a colorless diagnostic system writing to the given writers
func NewDiagnosticSystemWithWriters(level DiagnosticLevel, output, errorOut io.Writer) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:    level,
		output:   output,
		errorOut: errorOut,
	}
}

// Level returns the configured level
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	d.write(styleError, format, args...)
}

func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	d.write(styleWarn, format, args...)
}

func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	d.write(styleInfo, format, args...)
}

// Success reports a completed step
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	d.write(styleSuccess, format, args...)
}

func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	d.write(styleVerbose, format, args...)
}

func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	d.write(styleDebug, format, args...)
}

// Section prints a run heading
func (d *DiagnosticSystem) Section(title string) {
	if d.level < DiagnosticInfo {
		return
	}
	if d.useColors {
		title = color.New(color.FgCyan, color.Bold).Sprint(title)
	}
	fmt.Fprintln(d.output, title)
}

// Subsection prints a heading for a group of list items
func (d *DiagnosticSystem) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s:\n", title)
	}
}

// List prints a bulleted item at the current indentation
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s- %s\n", d.prefix(), fmt.Sprintf(format, args...))
	}
}

func (d *DiagnosticSystem) Indent() {
	d.indent++
}

func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary prints title followed by stats sorted by key
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", title)
	for _, key := range keys {
		fmt.Fprintf(&b, "   %s: %v\n", key, stats[key])
	}
	b.WriteString("\n")
	fmt.Fprint(d.output, b.String())
}

func (d *DiagnosticSystem) write(style messageStyle, format string, args ...interface{}) {
	if d.level < style.level {
		return
	}

	var b strings.Builder
	b.WriteString(d.prefix())
	if d.showTime {
		b.WriteString(time.Now().Format("15:04:05 "))
	}

	tag := "[" + style.tag + "]"
	if d.useColors {
		tag = color.New(style.attr).Sprint(tag)
	}
	b.WriteString(tag)
	b.WriteString(" ")
	fmt.Fprintf(&b, format, args...)
	b.WriteString("\n")

	out := d.output
	if style.stderr {
		out = d.errorOut
	}
	fmt.Fprint(out, b.String())
}

func (d *DiagnosticSystem) prefix() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors honours NO_COLOR, then FORCE_COLOR, then terminal detection
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return !color.NoColor
}
