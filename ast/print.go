package ast

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/marcuscaisey/dartcomplete/token"
)

const missing = "<missing>"

// Print prints an AST Node to stdout as an indented s-expression.
func Print(node Node) {
	fmt.Println(Sprint(node))
}

// Sprint formats an AST Node as an indented s-expression.
// Identifiers and literals are formatted as their source text. Identifiers and tokens which were inserted by the
// parser are formatted as <missing>.
func Sprint(node Node) string {
	return sprint(node, 0)
}

func sprint(node Node, depth int) string {
	switch node := node.(type) {
	case *SimpleIdentifier:
		return tokenString(node.Token)
	case Literal:
		return tokenString(node.Token())
	default:
	}

	nodeType := reflect.TypeOf(node).Elem()
	nodeValue := reflect.ValueOf(node).Elem()

	var children []string
	for i := range nodeType.NumField() {
		field := nodeType.Field(i)
		value := nodeValue.Field(i)

		named, ok := parsePrintTag(nodeType.Name(), field)
		if !ok {
			continue
		}

		if field.Type.Kind() == reflect.Slice {
			prefix := ""
			extraDepth := 0
			if named {
				children = append(children, fmt.Sprintf("(%s [", field.Name))
				if value.Len() == 0 {
					children[len(children)-1] += "])"
					continue
				}
				prefix = "  "
				extraDepth = 1
			}
			for j := range value.Len() {
				child, ok := formatValue(value.Index(j), depth+1+extraDepth)
				if !ok {
					panic(fmt.Sprintf("%s field %s element %d has unsupported type: %T", nodeType.Name(), field.Name, j, value.Index(j).Interface()))
				}
				children = append(children, prefix+child)
			}
			if named {
				children = append(children, "])")
			}
			continue
		}

		if isEmpty(value) {
			continue
		}
		formattedValue, ok := formatValue(value, depth+1)
		if !ok {
			panic(fmt.Sprintf("%s field %s has unsupported type: %T", nodeType.Name(), field.Name, value.Interface()))
		}
		if named {
			formattedValue = fmt.Sprintf("(%s %s)", field.Name, formattedValue)
		}
		children = append(children, formattedValue)
	}

	return sexpr(nodeType.Name(), depth, children...)
}

func isEmpty(value reflect.Value) bool {
	if (value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) && value.IsNil() {
		return true
	}
	tok, ok := value.Interface().(token.Token)
	return ok && tok.IsAbsent()
}

func formatValue(value reflect.Value, depth int) (string, bool) {
	switch value := value.Interface().(type) {
	case token.Token:
		return tokenString(value), true
	case Node:
		return sprint(value, depth), true
	case ParameterKind:
		return value.String(), true
	default:
		return "", false
	}
}

func tokenString(tok token.Token) string {
	if tok.Synthetic {
		return missing
	}
	return tok.Lexeme
}

func sexpr(name string, depth int, children ...string) string {
	var b strings.Builder
	fmt.Fprint(&b, "(", name)
	for _, child := range children {
		fmt.Fprint(&b, "\n", strings.Repeat("  ", depth+1), child)
	}
	fmt.Fprint(&b, ")")
	return b.String()
}

func parsePrintTag(structName string, field reflect.StructField) (named bool, ok bool) {
	tags := strings.Split(field.Tag.Get("print"), ",")
	if len(tags) == 1 && tags[0] == "" {
		return false, false
	}

	for _, tag := range tags {
		switch tag {
		case "named", "unnamed":
			if slices.Contains(tags, "unnamed") && slices.Contains(tags, "named") {
				panic(fmt.Sprintf(`%s field %s has both "named" and "unnamed" print tags`, structName, field.Name))
			}
			return tag == "named", true
		default:
			panic(fmt.Sprintf("%s field %s has invalid print tag: %q", structName, field.Name, tag))
		}
	}

	return false, false
}
