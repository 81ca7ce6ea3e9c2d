package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opal-lang/bakery/core/command"
	"github.com/opal-lang/bakery/core/pathsafe"
	"github.com/opal-lang/bakery/core/vars"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// ShouldUseColor determines if color output should be used.
// Respects --no-color style overrides and the NO_COLOR environment variable.
func ShouldUseColor(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// explain turns the engine's typed errors into CLI errors with hints.
func explain(err error) error {
	var cycle *vars.CircularReferenceError
	var unknown *command.UnknownKindError
	var forbidden *pathsafe.ForbiddenPathError

	switch {
	case errors.As(err, &cycle):
		return &CLIError{
			Message: "Variable expansion failed",
			Details: err.Error(),
			Hint:    "Break the cycle by giving one of the variables a literal value.",
		}
	case errors.As(err, &unknown):
		e := &CLIError{Message: err.Error()}
		if unknown.Suggestion != "" {
			e.Message = fmt.Sprintf("unknown command %q", unknown.Name)
			e.Hint = fmt.Sprintf("Did you mean %q?", unknown.Suggestion)
		}
		return e
	case errors.As(err, &forbidden):
		return &CLIError{
			Message: "Write protected path",
			Details: err.Error(),
		}
	default:
		return err
	}
}

// FormatError writes err for CLI output.
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
		return
	}

	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), cliErr.Message)
	if cliErr.Details != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("  ", ColorGray, useColor), cliErr.Details)
	}
	if cliErr.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), cliErr.Hint)
	}
}
