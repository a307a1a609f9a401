package element

import (
	"strings"
)

// Type is the static type of an expression or declaration.
//
//gosumtype:decl Type
type Type interface {
	// Element returns the element which declares the type, or nil for void and anonymous function types.
	Element() Element
	// Name returns the name of the type without any type arguments.
	Name() string
	String() string
	typ()
}

// InterfaceType is the type introduced by a class.
type InterfaceType struct {
	class         *ClassElement
	TypeArguments []Type
}

// NewInterfaceType returns a parameterization of the type of a class with the given type arguments.
func NewInterfaceType(class *ClassElement, typeArgs ...Type) *InterfaceType {
	return &InterfaceType{class: class, TypeArguments: typeArgs}
}

func (t *InterfaceType) Element() Element { return t.class }
func (t *InterfaceType) Name() string     { return t.class.Name() }
func (t *InterfaceType) typ()             {}

// Class returns the class which declares the type.
func (t *InterfaceType) Class() *ClassElement { return t.class }

func (t *InterfaceType) String() string {
	if len(t.TypeArguments) == 0 {
		return t.Name()
	}
	args := make([]string, len(t.TypeArguments))
	for i, arg := range t.TypeArguments {
		args[i] = arg.String()
	}
	return t.Name() + "<" + strings.Join(args, ", ") + ">"
}

// FunctionType is the type of an executable or a function type alias.
type FunctionType struct {
	element    Element
	Parameters []*ParameterElement
	ReturnType Type
}

func (t *FunctionType) Element() Element { return t.element }
func (t *FunctionType) typ()             {}

// Name returns the name of the function type alias which declares the type, or the empty string.
func (t *FunctionType) Name() string {
	if alias, ok := t.element.(*FunctionTypeAliasElement); ok {
		return alias.Name()
	}
	return ""
}

func (t *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, param := range t.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.Type.String())
	}
	b.WriteString(") -> ")
	b.WriteString(t.ReturnType.String())
	return b.String()
}

// TypeParameterType is the type introduced by a type variable.
type TypeParameterType struct {
	param *TypeVariableElement
}

func (t *TypeParameterType) Element() Element { return t.param }
func (t *TypeParameterType) Name() string     { return t.param.Name() }
func (t *TypeParameterType) String() string   { return t.param.Name() }
func (t *TypeParameterType) typ()             {}

type voidType struct{}

// Void is the type void.
var Void Type = voidType{}

func (voidType) Element() Element { return nil }
func (voidType) Name() string     { return "void" }
func (voidType) String() string   { return "void" }
func (voidType) typ()             {}

type dynamicType struct{}

// Dynamic is the dynamic type. It's also used as the type of anything whose type couldn't be resolved.
var Dynamic Type = dynamicType{}

func (dynamicType) Element() Element { return dynamicElement }
func (dynamicType) Name() string     { return "dynamic" }
func (dynamicType) String() string   { return "dynamic" }
func (dynamicType) typ()             {}

// Bound returns the type used in place of t when looking up its members. For a type variable this is its bound, or
// [Dynamic] if it has none. Any other type is returned unchanged.
func Bound(t Type) Type {
	seen := map[*TypeParameterType]bool{}
	for {
		param, ok := t.(*TypeParameterType)
		if !ok {
			return t
		}
		if param.param.Bound == nil || seen[param] {
			return Dynamic
		}
		seen[param] = true
		t = param.param.Bound
	}
}
