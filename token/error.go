package token

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	boldRed   = color.New(color.Bold, color.FgRed).SprintFunc()
	faint     = color.New(color.Faint).SprintFunc()
	faintRed  = color.New(color.Faint, color.FgRed).SprintFunc()
	errorWord = "error"
)

// Range is an interface which describes a range of bytes in a file.
type Range interface {
	Offset() int // Offset returns the byte offset of the first character of the range.
	End() int    // End returns the byte offset of the character immediately after the range.
}

// Span is a [Range] between two byte offsets.
type Span struct {
	Start int
	Stop  int
}

// Offset returns the start of the span.
func (s Span) Offset() int { return s.Start }

// End returns the end of the span.
func (s Span) End() int { return s.Stop }

// Error describes a syntax error in a Dart file.
// It can describe any error which can be attributed to a range of characters in the source code.
type Error struct {
	Msg   string
	Start Position
	End   Position
}

// NewError creates a [*Error] with the given message and range in file.
func NewError(file *File, rang Range, message string) error {
	return NewErrorf(file, rang, "%s", message)
}

// NewErrorf creates a [*Error].
// The error message is constructed from the given format string and arguments, as in [fmt.Sprintf].
func NewErrorf(file *File, rang Range, format string, args ...any) error {
	return &Error{
		Msg:   fmt.Sprintf(format, args...),
		Start: file.Position(rang.Offset()),
		End:   file.Position(rang.End()),
	}
}

// Error formats the error by displaying the error message and highlighting the range of characters in the source code
// that the error applies to.
//
// For example:
//
//	test.dart:2:7: error: expected ';'
//	  var x = 1
//	          ~
func (e *Error) Error() string {
	var b strings.Builder
	buildString := func() string {
		return strings.TrimSuffix(b.String(), "\n")
	}

	fmt.Fprintf(&b, "%s%s %s\n", bold(fmt.Sprintf("%m: ", e.Start)), boldRed(errorWord+":"), bold(e.Msg))
	if e.Start.File == nil {
		return buildString()
	}

	lines := make([]string, e.End.Line-e.Start.Line+1)
	for i := e.Start.Line; i <= e.End.Line; i++ {
		line := e.Start.File.Line(i)
		if !utf8.Valid(line) {
			// The source can't be displayed, so the message is all we can show.
			return buildString()
		}
		lines[i-e.Start.Line] = string(line)
	}

	printLine := func(line string) {
		fmt.Fprintln(&b, faint(line))
	}
	printLineHighlight := func(line string, start, end int) {
		leadingWhitespace := strings.Repeat(" ", runewidth.StringWidth(line[:start]))
		tildes := strings.Repeat("~", max(1, runewidth.StringWidth(line[start:end])))
		fmt.Fprintln(&b, leadingWhitespace+faintRed(tildes))
	}

	printLine(lines[0])
	if len(lines) == 1 {
		printLineHighlight(lines[0], min(e.Start.Column, len(lines[0])), min(e.End.Column, len(lines[0])))
	} else {
		printLineHighlight(lines[0], e.Start.Column, len(lines[0]))
		for _, line := range lines[1 : len(lines)-1] {
			printLine(line)
			printLineHighlight(line, 0, len(line))
		}
		if lastLine := lines[len(lines)-1]; len(lastLine) > 0 {
			printLine(lastLine)
			printLineHighlight(lastLine, 0, e.End.Column)
		}
	}

	return buildString()
}

// Errors is a list of [*Error]s.
type Errors []*Error

// Addf adds a [*Error] to the list of errors.
// The parameters are the same as for [NewErrorf].
func (e *Errors) Addf(file *File, rang Range, format string, args ...any) {
	*e = append(*e, NewErrorf(file, rang, format, args...).(*Error))
}

// Sort sorts the errors by their start position.
func (e Errors) Sort() {
	slices.SortStableFunc(e, func(e1, e2 *Error) int {
		return e1.Start.Compare(e2.Start)
	})
}

// Error formats the errors by concatenating their messages after sorting them by their start position.
func (e Errors) Error() string {
	if len(e) == 0 {
		panic("Error called on empty error list")
	}
	e.Sort()
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns the error list unchanged if its non-empty, otherwise nil.
// This should be used to return an [Errors] from a function as an [error] so that it becomes an untyped nil if there
// are no errors.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
