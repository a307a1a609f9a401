// Package token declares the type representing a lexical token of Dart code.
package token

import (
	"cmp"
	"fmt"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

func init() {
	for i := range typesEnd {
		t := Type(i)
		if _, ok := typeStrings[t]; !ok && unicode.IsUpper(rune(t.String()[0])) {
			panic(fmt.Sprintf("typeStrings is missing entry for Type %s", t.String()))
		}
	}
}

// PrivatePrefix is the prefix which marks a name as private to its library.
const PrivatePrefix = "_"

// Type is the type of a lexical token of Dart code.
type Type int

// The list of all token types.
const (
	Illegal Type = iota
	EOF

	// Keywords
	keywordsStart
	Abstract
	As
	Class
	Const
	Else
	Extends
	Factory
	False
	Final
	For
	Get
	If
	Implements
	Import
	In
	Is
	New
	Null
	Operator
	Return
	Set
	Static
	Super
	This
	True
	Typedef
	Var
	Void
	While
	With
	keywordsEnd

	// Literals
	Ident
	String
	Int
	Double

	// Symbols
	Semicolon
	Comma
	Dot
	Equal
	PlusEqual
	MinusEqual
	Plus
	Minus
	PlusPlus
	MinusMinus
	Asterisk
	Slash
	Percent
	Less
	LessEqual
	Greater
	GreaterEqual
	EqualEqual
	BangEqual
	Bang
	AmpAmp
	PipePipe
	Question
	Colon
	Arrow
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket

	typesEnd
)

var typeStrings = map[Type]string{
	Illegal:       "illegal",
	EOF:           "EOF",
	keywordsStart: "keywordsStart",
	Abstract:      "abstract",
	As:            "as",
	Class:         "class",
	Const:         "const",
	Else:          "else",
	Extends:       "extends",
	Factory:       "factory",
	False:         "false",
	Final:         "final",
	For:           "for",
	Get:           "get",
	If:            "if",
	Implements:    "implements",
	Import:        "import",
	In:            "in",
	Is:            "is",
	New:           "new",
	Null:          "null",
	Operator:      "operator",
	Return:        "return",
	Set:           "set",
	Static:        "static",
	Super:         "super",
	This:          "this",
	True:          "true",
	Typedef:       "typedef",
	Var:           "var",
	Void:          "void",
	While:         "while",
	With:          "with",
	keywordsEnd:   "keywordsEnd",
	Ident:         "identifier",
	String:        "string",
	Int:           "int",
	Double:        "double",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Equal:         "=",
	PlusEqual:     "+=",
	MinusEqual:    "-=",
	Plus:          "+",
	Minus:         "-",
	PlusPlus:      "++",
	MinusMinus:    "--",
	Asterisk:      "*",
	Slash:         "/",
	Percent:       "%",
	Less:          "<",
	LessEqual:     "<=",
	Greater:       ">",
	GreaterEqual:  ">=",
	EqualEqual:    "==",
	BangEqual:     "!=",
	Bang:          "!",
	AmpAmp:        "&&",
	PipePipe:      "||",
	Question:      "?",
	Colon:         ":",
	Arrow:         "=>",
	LeftParen:     "(",
	RightParen:    ")",
	LeftBrace:     "{",
	RightBrace:    "}",
	LeftBracket:   "[",
	RightBracket:  "]",
	typesEnd:      "typesEnd",
}

var keywordTypesByIdent = func() map[string]Type {
	keywordTypesByIdent := make(map[string]Type, keywordsEnd-keywordsStart)
	for i := keywordsStart + 1; i < keywordsEnd; i++ {
		keywordTypesByIdent[typeStrings[i]] = i
	}
	return keywordTypesByIdent
}()

// IdentType returns the type of the keyword with the given identifier, or Ident if the identifier is not a
// keyword.
func IdentType(ident string) Type {
	if keywordType, ok := keywordTypesByIdent[ident]; ok {
		return keywordType
	}
	return Ident
}

// String returns the source text of the token type, or a description of it for token types which don't have fixed
// source text.
func (t Type) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword reports whether the type is a keyword.
func (t Type) IsKeyword() bool {
	return keywordsStart < t && t < keywordsEnd
}

// Format implements fmt.Formatter. All verbs have the default behaviour, except for 'm' (message) which formats the
// type for use in an error message.
func (t Type) Format(f fmt.State, verb rune) {
	switch verb {
	case 'm':
		fmt.Fprintf(f, "'%s'", typeStrings[t])
	case 's', 'v':
		fmt.Fprint(f, t.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), int(t))
	}
}

// Token is a lexical token of Dart code.
// The zero Token is absent: it describes an optional token which doesn't appear in the source. A synthetic token was
// expected by the parser but missing from the source. It has no text and is positioned at the token which followed
// the gap.
type Token struct {
	Type      Type
	Lexeme    string
	Offset    int // Byte offset of the first character of the token
	Synthetic bool
}

// End returns the byte offset of the character immediately after the token.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

// Span returns the range of bytes covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.Offset, Stop: t.End()}
}

// IsPresent reports whether the token appears in the source.
func (t Token) IsPresent() bool {
	return t.Type != Illegal && !t.Synthetic
}

// IsAbsent reports whether the token is the zero Token.
func (t Token) IsAbsent() bool {
	return t == Token{}
}

// Contains reports whether offset lies within the token or at either of its ends.
func (t Token) Contains(offset int) bool {
	return t.IsPresent() && t.Offset <= offset && offset <= t.End()
}

func (t Token) String() string {
	if t.Synthetic {
		return fmt.Sprintf("%d: <synthetic %s>", t.Offset, t.Type)
	}
	return fmt.Sprintf("%d: %s [%s]", t.Offset, t.Lexeme, t.Type)
}

// Position is a position in a file.
type Position struct {
	File   *File
	Line   int // 1-based line number
	Column int // 0-based byte offset from the start of the line
}

// Compare returns
//
//	-1 if p is comes before other in the file,
//	 0 if p and other are the same position,
//	+1 if p comes after other in the file.
func (p Position) Compare(other Position) int {
	if p.Line == other.Line {
		return cmp.Compare(p.Column, other.Column)
	}
	return cmp.Compare(p.Line, other.Line)
}

func (p Position) String() string {
	var prefix string
	if p.File != nil && p.File.Name != "" {
		prefix = p.File.Name + ":"
	}
	return fmt.Sprintf("%s%d:%d", prefix, p.Line, p.displayColumn())
}

func (p Position) displayColumn() int {
	if p.File == nil {
		return p.Column + 1
	}
	line := p.File.Line(p.Line)
	return runewidth.StringWidth(string(line[:min(p.Column, len(line))])) + 1
}

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Format implements fmt.Formatter. All verbs have the default behaviour, except for 'm' (message) which formats the
// position for use in an error message.
func (p Position) Format(f fmt.State, verb rune) {
	switch verb {
	case 'm':
		var prefix string
		if p.File != nil && p.File.Name != "" {
			prefix = cyan(p.File.Name) + ":"
		}
		fmt.Fprint(f, prefix, yellow(p.Line), ":", yellow(p.displayColumn()))
	case 's', 'v':
		fmt.Fprint(f, p.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), p)
	}
}

// File is a simple representation of a file.
type File struct {
	Name        string
	contents    []byte
	lineOffsets []int
}

// NewFile returns a new File with the given contents.
func NewFile(name string, contents []byte) *File {
	f := &File{
		Name:     name,
		contents: contents,
	}
	f.lineOffsets = append(f.lineOffsets, 0)
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			f.lineOffsets = append(f.lineOffsets, i+1)
		}
	}
	return f
}

// Contents returns the contents of the file.
func (f *File) Contents() []byte {
	return f.contents
}

// Line returns the nth line of the file.
func (f *File) Line(n int) []byte {
	low := f.lineOffsets[n-1]
	high := len(f.contents)
	if n < len(f.lineOffsets) {
		high = f.lineOffsets[n] - 1 // -1 to exclude the newline
	}
	return f.contents[low:high]
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lineOffsets)
}

// Position returns the position of the given byte offset. Offsets outside of the file are clamped to its bounds.
func (f *File) Position(offset int) Position {
	offset = max(0, min(offset, len(f.contents)))
	line := 1
	for line < len(f.lineOffsets) && f.lineOffsets[line] <= offset {
		line++
	}
	return Position{File: f, Line: line, Column: offset - f.lineOffsets[line-1]}
}

// Offset returns the byte offset of the given 1-based line and 0-based column. It returns false if the line doesn't
// exist or the column is beyond the end of the line.
func (f *File) Offset(line, column int) (int, bool) {
	if line < 1 || line > len(f.lineOffsets) || column < 0 {
		return 0, false
	}
	if column > len(f.Line(line)) {
		return 0, false
	}
	return f.lineOffsets[line-1] + column, true
}
