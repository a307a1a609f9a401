package completion

import (
	"fmt"

	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/token"
)

// Kind is the kind of declaration which a [Proposal] completes to.
type Kind int

const (
	KindVariable Kind = iota
	KindField
	KindMethod
	KindGetter
	KindSetter
	KindConstructor
	KindFunction
	KindClass
	KindClassAlias
	KindFunctionTypeAlias
	KindTypeVariable
	KindParameter
	KindImport
	KindLibraryPrefix
	KindKeyword
)

var kindStrings = map[Kind]string{
	KindVariable:          "variable",
	KindField:             "field",
	KindMethod:            "method",
	KindGetter:            "getter",
	KindSetter:            "setter",
	KindConstructor:       "constructor",
	KindFunction:          "function",
	KindClass:             "class",
	KindClassAlias:        "class-alias",
	KindFunctionTypeAlias: "function-type-alias",
	KindTypeVariable:      "type-variable",
	KindParameter:         "parameter",
	KindImport:            "import",
	KindLibraryPrefix:     "library-prefix",
	KindKeyword:           "keyword",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Proposal is a single completion candidate. Offset is where the completion text should be inserted, replacing
// whatever of the identifier had been typed before the cursor.
type Proposal struct {
	Kind                   Kind     `json:"kind"`
	Completion             string   `json:"completion"`
	Offset                 int      `json:"offset"`
	DeclaringType          string   `json:"declaringType,omitempty"`
	ReturnType             string   `json:"returnType,omitempty"`
	ParameterNames         []string `json:"parameterNames,omitempty"`
	ParameterTypes         []string `json:"parameterTypes,omitempty"`
	RequiredParameterCount int      `json:"requiredParameterCount,omitempty"`
	HasNamed               bool     `json:"hasNamed,omitempty"`
	HasPositional          bool     `json:"hasPositional,omitempty"`
}

func (p *Proposal) String() string {
	return fmt.Sprintf("%s %s@%d", p.Kind, p.Completion, p.Offset)
}

// proposalKindOf returns the kind of proposal used for el. It panics if el is of a kind which can't be proposed.
func proposalKindOf(el element.Element) Kind {
	switch el.Kind() {
	case element.KindConstructor:
		return KindConstructor
	case element.KindFunction:
		return KindFunction
	case element.KindMethod:
		return KindMethod
	case element.KindGetter:
		return KindGetter
	case element.KindSetter:
		return KindSetter
	case element.KindClass:
		return KindClass
	case element.KindClassTypeAlias:
		return KindClassAlias
	case element.KindFunctionTypeAlias:
		return KindFunctionTypeAlias
	case element.KindField:
		return KindField
	case element.KindImport:
		return KindImport
	case element.KindParameter:
		return KindParameter
	case element.KindPrefix:
		return KindLibraryPrefix
	case element.KindTypeVariable:
		return KindTypeVariable
	case element.KindLocalVariable, element.KindTopLevelVariable:
		return KindVariable
	default:
		panic(fmt.Sprintf("no proposal kind for %s element %s", el.Kind(), el))
	}
}

// typeOf returns the type which el evaluates to when referenced, or nil if it doesn't have one.
func typeOf(el element.Element) element.Type {
	switch el := el.(type) {
	case *element.VariableElement:
		return el.Type
	case *element.ParameterElement:
		return el.Type
	case *element.ExecutableElement:
		return el.ReturnType
	case *element.ClassElement:
		return el.Type()
	case *element.FunctionTypeAliasElement:
		return el.ReturnType
	case *element.DynamicElement:
		return element.Dynamic
	default:
		return nil
	}
}

// declaringType returns the name of the class which declares el, or "" if it isn't declared by a class.
func declaringType(el element.Element) string {
	if class, ok := el.Enclosing().(*element.ClassElement); ok {
		return class.Name()
	}
	return ""
}

func (c *completer) newProposal(kind Kind, completion string) *Proposal {
	return &Proposal{
		Kind:       kind,
		Completion: completion,
		Offset:     c.offset - len(c.filter.prefix),
	}
}

func (c *completer) accept(p *Proposal) {
	c.count++
	c.engine.requestor.Accept(p)
}

// pName proposes a variable, field, class or function by name.
func (c *completer) pName(el element.Element) {
	if !c.filter.Match(el.Name()) {
		return
	}
	p := c.newProposal(proposalKindOf(el), el.Name())
	p.DeclaringType = declaringType(el)
	if t := typeOf(el); t != nil {
		p.ReturnType = t.Name()
	}
	c.accept(p)
}

// pText proposes some text which doesn't come from a declaration.
func (c *completer) pText(text string, kind Kind) {
	if !c.filter.Match(text) {
		return
	}
	c.accept(c.newProposal(kind, text))
}

// pExecutable proposes a function, method, getter, setter or constructor. Implicit accessors are proposed as the
// field or variable which they access.
func (c *completer) pExecutable(exec *element.ExecutableElement) {
	name := exec.Name()
	if name == "" || !c.filter.Match(name) {
		return
	}
	if exec.Synthetic && exec.Variable != nil {
		c.pVariable(exec.Variable)
		return
	}
	p := c.newProposal(proposalKindOf(exec), name)
	setParameterInfo(p, exec.Parameters)
	if exec.ReturnType != nil {
		p.ReturnType = exec.ReturnType.Name()
	}
	p.DeclaringType = declaringType(exec)
	c.accept(p)
}

// pVariable proposes a field or top-level variable.
func (c *completer) pVariable(v *element.VariableElement) {
	if !c.filter.Match(v.Name()) {
		return
	}
	p := c.newProposal(proposalKindOf(v), v.Name())
	p.DeclaringType = declaringType(v)
	if v.Type != nil {
		p.ReturnType = v.Type.Name()
	}
	c.accept(p)
}

// pKeyword proposes the text of a keyword which is already present at the cursor.
func (c *completer) pKeyword(keyword token.Token) {
	c.accept(&Proposal{
		Kind:       KindKeyword,
		Completion: keyword.Lexeme,
		Offset:     keyword.Offset,
	})
}

func (c *completer) pDynamic() { c.pText("dynamic", KindVariable) }
func (c *completer) pVar()     { c.pText("var", KindVariable) }
func (c *completer) pVoid()    { c.pText("void", KindVariable) }
func (c *completer) pNull()    { c.pText("null", KindVariable) }
func (c *completer) pTrue()    { c.pText("true", KindVariable) }
func (c *completer) pFalse()   { c.pText("false", KindVariable) }

func (c *completer) pParamName(name string) { c.pText(name, KindParameter) }

func setParameterInfo(p *Proposal, params []*element.ParameterElement) {
	for _, param := range params {
		if param.Synthetic {
			continue
		}
		switch param.ParameterKind {
		case element.ParameterRequired:
			p.RequiredParameterCount++
		case element.ParameterNamed:
			p.HasNamed = true
		case element.ParameterPositional:
			p.HasPositional = true
		}
		p.ParameterNames = append(p.ParameterNames, param.Name())
		var typeName string
		if param.Type != nil {
			typeName = param.Type.Name()
		}
		p.ParameterTypes = append(p.ParameterTypes, typeName)
	}
}
