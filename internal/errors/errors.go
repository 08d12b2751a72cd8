// Package errors formats weekendc compiler errors with source context,
// line/column information, and a caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/mleone/weekendc/internal/token"
)

// Kind distinguishes the three terminal error categories: I/O, parse, and
// type errors. All are fatal at first occurrence.
type Kind int

const (
	IOError Kind = iota
	ParseError
	TypeError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "I/O error"
	case ParseError:
		return "parse error"
	case TypeError:
		return "type error"
	default:
		return "error"
	}
}

// CompilerError is a single compilation error with position and source
// context. All three error kinds are represented uniformly so the driver
// has one formatting path regardless of which stage failed.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs a CompilerError. Source and File may be empty (e.g. an
// I/O error has no source text to show context from).
func New(kind Kind, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Message: message, Source: source, File: file, Pos: pos}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-context line and caret. When
// color is true, ANSI escapes highlight the caret.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	switch {
	case e.File != "" && e.Pos.Line > 0:
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	case e.File != "":
		fmt.Fprintf(&sb, "Error in %s\n", e.File)
	default:
		fmt.Fprintf(&sb, "Error at %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
