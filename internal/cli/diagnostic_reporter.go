package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting for failed runs
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return NewDiagnosticReporterWithWriter(verbose, os.Stderr)
}

// NewDiagnosticReporterWithWriter creates a reporter writing to out
func NewDiagnosticReporterWithWriter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportError reports a fatal run error with its context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Interface Generation Failed\n")
	fmt.Fprintf(r.out, "==================================\n\n")

	var genErr errors.GenError
	if errors.As(err, &genErr) {
		r.reportGenError(genErr)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}
}

// ReportFailures lists every unit that could not be generated
func (r *DiagnosticReporter) ReportFailures(failures []models.UnitFailure) {
	if len(failures) == 0 {
		return
	}

	warn := color.New(color.FgYellow, color.Bold)
	warn.Fprintf(r.out, "! ")
	fmt.Fprintf(r.out, "%d generation unit(s) failed:\n", len(failures))

	for _, failure := range failures {
		fmt.Fprintf(r.out, "   - %s (%s): %s\n", failure.Type, failure.Role, errors.CodeOf(failure.Err))
		if r.verbose {
			fmt.Fprintf(r.out, "     %v\n", failure.Err)
		}
	}
	fmt.Fprintln(r.out)
}

// reportGenError reports a GenError with full context and suggestions
func (r *DiagnosticReporter) reportGenError(genErr errors.GenError) {
	r.printErrorHeader(genErr.ErrorCode())

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Error())

	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if context := genErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose && genErr.Unwrap() != nil {
		r.printErrorChain(genErr.Unwrap())
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	case errors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	case errors.MissingDefinitionErrorCode:
		errorTypeStr = "Missing Definition Error"
	case errors.MalformedDefinitionErrorCode:
		errorTypeStr = "Malformed Definition Error"
	case errors.GenerationErrorCode, errors.TemplateErrorCode:
		errorTypeStr = "Code Generation Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func (r *DiagnosticReporter) formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

// printErrorChain prints every wrapped cause in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.out, "   %d. %s\n", level, err.Error())
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
		level++
	}
	fmt.Fprintf(r.out, "\n")
}
