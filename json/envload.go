package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/cliglue/cliglue/env"
)

// EnvErrorExitCode is the process exit code used for a malformed JSON
// environment variable.
const EnvErrorExitCode = 3

// MustDecodeEnv loads JSON data from an environment variable.
// A missing variable propagates as a panic, see env.Provider.MustGet.
// On parse error, a helpful message is printed to stderr and the process
// exits with code 3.
func MustDecodeEnv(envs env.Provider, name string) any {
	value := envs.MustGet(name)
	out, ok := decodeEnvValue(os.Stderr, name, value)
	if !ok {
		os.Exit(EnvErrorExitCode)
	}
	return out
}

// decodeEnvValue parses the value and on failure writes the annotated
// diagnostic, so the hard exit stays in the thin wrapper above.
func decodeEnvValue(stderr io.Writer, name, value string) (any, bool) {
	var out any
	err := json.Unmarshal([]byte(value), &out)
	if err == nil {
		return out, true
	}

	errHelp, annotated := AnnotateSyntax(value, err, useColor(stderr))
	if !annotated {
		errHelp = err.Error()
	}
	fmt.Fprintf(stderr, "Error parsing JSON environment variable '%s':\n%s\n", name, errHelp)
	return nil, false
}

// AnnotateSyntax renders the malformed JSON text with a caret marker line
// inserted beneath the offending line, pointing at the error column.
// Returns false if the error carries no position.
func AnnotateSyntax(value string, err error, colored bool) (string, bool) {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return "", false
	}

	// Offset is the number of bytes read when the error occurred,
	// so the offending byte is one back.
	idx := int(syntaxErr.Offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(value) {
		idx = len(value)
	}

	lineNo := 1 + strings.Count(value[:idx], "\n")
	lineStart := strings.LastIndexByte(value[:idx], '\n') + 1
	column := idx - lineStart

	marker := strings.Repeat(" ", column) + "^ Error: " + syntaxErr.Error()
	if colored {
		marker = color.RedString("%s", marker)
	}

	lines := strings.Split(value, "\n")
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:lineNo]...)
	out = append(out, marker)
	out = append(out, lines[lineNo:]...)
	return strings.Join(out, "\n"), true
}

func useColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
