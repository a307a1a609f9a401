package completion

import (
	"strings"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/token"
)

// ident is the identifier being completed. It's usually a real identifier from the tree but can also be a placeholder
// at the cursor, standing in for an identifier which hasn't been typed yet, or a token whose text is being retyped.
// Placeholders are never attached to the tree: anchor is the real node which they would belong to.
type ident struct {
	anchor ast.Node
	offset int
	name   string
}

func identOf(id *ast.SimpleIdentifier) ident {
	return ident{anchor: id, offset: id.Token.Offset, name: id.Name()}
}

// placeholder returns an empty identifier at the cursor which belongs to parent.
func (c *completer) placeholder(parent ast.Node) ident {
	return ident{anchor: parent, offset: c.offset}
}

// tokenIdent returns an identifier with the text of tok which belongs to parent.
func tokenIdent(parent ast.Node, tok token.Token) ident {
	return ident{anchor: parent, offset: tok.Offset, name: tok.Lexeme}
}

// Filter decides which names are acceptable completions of a partially typed identifier.
type Filter struct {
	prefix        string
	privateHidden bool
}

// newFilter returns a filter for the part of id which lies before the cursor.
func newFilter(id ident, cursor int) Filter {
	var prefix string
	if n := cursor - id.offset; n > 0 && n <= len(id.name) {
		prefix = id.name[:n]
	}
	return Filter{
		prefix:        prefix,
		privateHidden: !strings.HasPrefix(prefix, "_"),
	}
}

// Prefix returns the text which every accepted name starts with.
func (f Filter) Prefix() string {
	return f.prefix
}

// Match reports whether name is an acceptable completion. Private names are only accepted if the prefix is private
// too.
func (f Filter) Match(name string) bool {
	if f.privateHidden && strings.HasPrefix(name, "_") {
		return false
	}
	return strings.HasPrefix(name, f.prefix)
}
