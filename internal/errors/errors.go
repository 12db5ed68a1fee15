// Package errors formats the structured failures produced by every stage of
// the pipeline (scanner, parser, resolver, evaluator) into a single
// human-readable diagnostic: a caret pointing at the offending column inside
// a snippet of the offending source line.
package errors

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// Kind is the structured error category. Return is a control-flow signal
// internal to the evaluator and is never formatted by SourceError.
type Kind int

const (
	// Scanner.
	UnexpectedCharacter Kind = iota
	UnterminatedString

	// Parser.
	ExpressionExpected
	ExpectedOperator
	InvalidAssignmentTarget
	TooManyFunctionArguments
	ParseError

	// Resolver.
	ResolverError

	// Evaluator.
	UndefinedVariable
	OperandMustBeNumber
	OperandsMustBeSameType
	RuntimeError

	// Internal invariant violation; should never fire.
	Bug

	// Return is a control-flow signal, not a user-facing error kind.
	Return
)

func (k Kind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case ExpressionExpected:
		return "ExpressionExpected"
	case ExpectedOperator:
		return "ExpectedOperator"
	case InvalidAssignmentTarget:
		return "InvalidAssignmentTarget"
	case TooManyFunctionArguments:
		return "TooManyFunctionArguments"
	case ParseError:
		return "ParseError"
	case ResolverError:
		return "ResolverError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case OperandMustBeNumber:
		return "OperandMustBeNumber"
	case OperandsMustBeSameType:
		return "OperandsMustBeSameType"
	case RuntimeError:
		return "RuntimeError"
	case Bug:
		return "Bug"
	case Return:
		return "Return"
	default:
		return "Unknown"
	}
}

// SourceError is a single pipeline failure with an optional location. It
// implements the error interface so it can flow through ordinary Go error
// returns; callers that want the caret-annotated rendering call Format.
type SourceError struct {
	Kind    Kind
	Message string
	Source  string // full program source, for snippet extraction
	File    string
	Pos     *lexer.Position // nil if the error has no location
}

// New creates a SourceError with no attached source location.
func New(kind Kind, message string) *SourceError {
	return &SourceError{Kind: kind, Message: message}
}

// At creates a SourceError carrying a source location.
func At(kind Kind, pos lexer.Position, message string) *SourceError {
	return &SourceError{Kind: kind, Message: message, Pos: &pos}
}

// WithSource attaches the program source and filename so Format can render
// a snippet; it returns the receiver for chaining at the call site.
func (e *SourceError) WithSource(source, file string) *SourceError {
	e.Source = source
	e.File = file
	return e
}

func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the source line framed by a line-number gutter, a caret
// under the offending column, and the kind as a trailing label. If color
// is true, the caret is wrapped in ANSI red.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.Pos != nil {
		line := sourceLine(e.Source, e.Pos.Line)
		if line != "" {
			col := caretColumn(line, e.Pos.Offset-lineStartOffset(e.Source, e.Pos.Line))
			gutter := fmt.Sprintf("%d |", e.Pos.Line)
			sb.WriteString(gutter)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(gutter)+col))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("▲\n")
			sb.WriteString(strings.Repeat(" ", len(gutter)+col))
			sb.WriteString("└─ ")
			if color {
				sb.WriteString("\033[0m")
			}
		}
	}

	sb.WriteString(e.Message)
	sb.WriteString(" [")
	sb.WriteString(e.Kind.String())
	sb.WriteString("]")
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// lineStartOffset returns the rune offset, into the whole source, of the
// first character of lineNum (1-indexed). Position.Offset is itself a rune
// offset into the whole source, not into any one line, so callers that want
// a line-relative column must subtract this first.
func lineStartOffset(source string, lineNum int) int {
	if lineNum <= 1 {
		return 0
	}
	seen := 1
	for i, r := range []rune(source) {
		if r == '\n' {
			seen++
			if seen == lineNum {
				return i + 1
			}
		}
	}
	return 0
}

// caretColumn returns the display-column offset of a rune offset within
// line, counting East-Asian wide/fullwidth runes as two columns so the
// caret lands under the right character even when the line mixes ASCII and
// wide text.
func caretColumn(line string, runeOffset int) int {
	col := 0
	for i, r := range []rune(line) {
		if i >= runeOffset {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
	}
	return col
}
