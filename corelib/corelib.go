// Package corelib provides the source code for stubs of the Dart core library and a function to parse them.
// The core library is implicitly imported by every compilation unit. Its members are declared without bodies since
// only their signatures matter to the analysis.
package corelib

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/parser"
)

// Filename is the name which the core library's declarations are associated with.
const Filename = "dart:core"

// Source is the source code for stubs of the core library.
//
//go:embed core.dart
var Source []byte

// MustParse parses the stubs of the core library. It panics if they contain a syntax error.
func MustParse() *ast.CompilationUnit {
	unit, err := parser.Parse(bytes.NewReader(Source), Filename)
	if err != nil {
		panic(fmt.Sprintf("parsing core library stubs: %s", err))
	}
	return unit
}
