// Package element defines the semantic model of Dart programs: elements, which are the entities introduced by
// declarations, and the types which refer to them.
package element

import (
	"fmt"
	"slices"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -trimprefix Kind

// Kind is the kind of an [Element].
type Kind int

const (
	KindClass Kind = iota
	KindClassTypeAlias
	KindFunctionTypeAlias
	KindTypeVariable
	KindFunction
	KindMethod
	KindGetter
	KindSetter
	KindConstructor
	KindField
	KindTopLevelVariable
	KindLocalVariable
	KindParameter
	KindImport
	KindPrefix
	KindCompilationUnit
	KindDynamic
)

// IsExecutable reports whether elements of this kind are [*ExecutableElement]s.
func (k Kind) IsExecutable() bool {
	switch k {
	case KindFunction, KindMethod, KindGetter, KindSetter, KindConstructor:
		return true
	default:
		return false
	}
}

// Element is an entity introduced by a declaration.
//
//gosumtype:decl Element
type Element interface {
	// Name returns the declared name of the element. It's empty for synthetic elements, such as default constructors,
	// and for elements whose declaration is missing its name.
	Name() string
	// NameOffset returns the offset of the element's name in its source file, or -1 if it doesn't have one.
	NameOffset() int
	Kind() Kind
	// Enclosing returns the element which directly encloses this one, or nil if there isn't one.
	Enclosing() Element
	String() string
	element()
}

type base struct {
	name       string
	nameOffset int
	enclosing  Element
}

func (b *base) Name() string       { return b.name }
func (b *base) NameOffset() int    { return b.nameOffset }
func (b *base) Enclosing() Element { return b.enclosing }
func (b *base) element()           {}

// SetEnclosing sets the element which directly encloses this one.
func (b *base) SetEnclosing(enclosing Element) { b.enclosing = enclosing }

func describe(e Element) string {
	if e.Name() == "" {
		return fmt.Sprintf("<%s>", e.Kind())
	}
	return fmt.Sprintf("%s %s", e.Kind(), e.Name())
}

// CompilationUnitElement is a single source file.
type CompilationUnitElement struct {
	base
	Imports     []*ImportElement
	Classes     []*ClassElement
	TypeAliases []*FunctionTypeAliasElement
	Functions   []*ExecutableElement
	Variables   []*VariableElement
}

// NewCompilationUnit returns a compilation unit element for the file with the given name.
func NewCompilationUnit(filename string) *CompilationUnitElement {
	return &CompilationUnitElement{base: base{name: filename, nameOffset: -1}}
}

func (u *CompilationUnitElement) Kind() Kind     { return KindCompilationUnit }
func (u *CompilationUnitElement) String() string { return describe(u) }

// TypeDeclarations returns the classes, class type aliases and function type aliases declared in the unit.
func (u *CompilationUnitElement) TypeDeclarations() []Element {
	decls := make([]Element, 0, len(u.Classes)+len(u.TypeAliases))
	for _, class := range u.Classes {
		decls = append(decls, class)
	}
	for _, alias := range u.TypeAliases {
		decls = append(decls, alias)
	}
	return decls
}

// ClassElement is a class or a class type alias.
type ClassElement struct {
	base
	typ            *InterfaceType
	Abstract       bool
	Alias          bool // declared by a class type alias
	TypeParameters []*TypeVariableElement
	Supertype      *InterfaceType // nil only for Object
	Mixins         []*InterfaceType
	Interfaces     []*InterfaceType
	Fields         []*VariableElement
	Accessors      []*ExecutableElement
	Methods        []*ExecutableElement
	Constructors   []*ExecutableElement
}

// NewClass returns a class element with the given name declared at nameOffset.
func NewClass(name string, nameOffset int, unit *CompilationUnitElement) *ClassElement {
	class := &ClassElement{base: base{name: name, nameOffset: nameOffset, enclosing: unit}}
	class.typ = &InterfaceType{class: class}
	return class
}

func (c *ClassElement) Kind() Kind {
	if c.Alias {
		return KindClassTypeAlias
	}
	return KindClass
}

func (c *ClassElement) String() string { return describe(c) }

// Type returns the type of the class, with its type parameters as type arguments.
func (c *ClassElement) Type() *InterfaceType { return c.typ }

// SetTypeParameters sets the type parameters of the class and updates the type arguments of its type to match.
func (c *ClassElement) SetTypeParameters(params []*TypeVariableElement) {
	c.TypeParameters = params
	c.typ.TypeArguments = make([]Type, len(params))
	for i, param := range params {
		c.typ.TypeArguments[i] = param.Type()
	}
}

// AddField adds a field to the class along with its implicit getter and, unless the field is final or const, its
// implicit setter.
func (c *ClassElement) AddField(field *VariableElement) {
	field.SetEnclosing(c)
	c.Fields = append(c.Fields, field)
	getter, setter := field.implicitAccessors()
	c.Accessors = append(c.Accessors, getter)
	if setter != nil {
		c.Accessors = append(c.Accessors, setter)
	}
}

// AddMethod adds a method, explicit getter or explicit setter to the class.
func (c *ClassElement) AddMethod(method *ExecutableElement) {
	method.SetEnclosing(c)
	switch method.Kind() {
	case KindGetter, KindSetter:
		c.Accessors = append(c.Accessors, method)
	default:
		c.Methods = append(c.Methods, method)
	}
}

// AddConstructor adds a constructor to the class.
func (c *ClassElement) AddConstructor(constructor *ExecutableElement) {
	constructor.SetEnclosing(c)
	constructor.ReturnType = c.typ
	c.Constructors = append(c.Constructors, constructor)
}

// IsValidMixin reports whether the class can be used as a mixin: it declares no constructors, extends Object and
// has no mixins of its own.
func (c *ClassElement) IsValidMixin() bool {
	for _, constructor := range c.Constructors {
		if !constructor.Synthetic {
			return false
		}
	}
	if c.Supertype != nil && c.Supertype.Class().Supertype != nil {
		return false
	}
	return len(c.Mixins) == 0
}

// AllSupertypes returns every supertype of the class, not including the class itself. Supertypes are ordered
// breadth first: the superclass, the mixins and the interfaces of the class come before their own supertypes. Object
// is always last and each type appears once.
func (c *ClassElement) AllSupertypes() []*InterfaceType {
	var (
		supertypes []*InterfaceType
		object     *InterfaceType
		visited    = map[*ClassElement]bool{c: true}
		queue      = []*ClassElement{c}
	)
	for len(queue) > 0 {
		class := queue[0]
		queue = queue[1:]
		direct := slices.Concat([]*InterfaceType{class.Supertype}, class.Mixins, class.Interfaces)
		for _, supertype := range direct {
			if supertype == nil || visited[supertype.Class()] {
				continue
			}
			visited[supertype.Class()] = true
			if supertype.Class().Supertype == nil {
				object = supertype
				continue
			}
			supertypes = append(supertypes, supertype)
			queue = append(queue, supertype.Class())
		}
	}
	if object != nil {
		supertypes = append(supertypes, object)
	}
	return supertypes
}

// LookUpMember returns the getter, setter or method with the given name which is declared by the class or inherited
// from one of its supertypes.
func (c *ClassElement) LookUpMember(name string) (*ExecutableElement, bool) {
	for _, class := range c.hierarchy() {
		if member, ok := class.lookUpOwnMember(name); ok {
			return member, true
		}
	}
	return nil, false
}

// LookUpConstructor returns the constructor of the class with the given name. The unnamed constructor has the empty
// name.
func (c *ClassElement) LookUpConstructor(name string) (*ExecutableElement, bool) {
	for _, constructor := range c.Constructors {
		if constructor.Name() == name {
			return constructor, true
		}
	}
	return nil, false
}

func (c *ClassElement) hierarchy() []*ClassElement {
	classes := []*ClassElement{c}
	for _, supertype := range c.AllSupertypes() {
		classes = append(classes, supertype.Class())
	}
	return classes
}

func (c *ClassElement) lookUpOwnMember(name string) (*ExecutableElement, bool) {
	for _, accessor := range c.Accessors {
		if accessor.Name() == name && accessor.Kind() == KindGetter {
			return accessor, true
		}
	}
	for _, method := range c.Methods {
		if method.Name() == name {
			return method, true
		}
	}
	for _, accessor := range c.Accessors {
		if accessor.Name() == name {
			return accessor, true
		}
	}
	return nil, false
}

// TypeVariableElement is a type parameter of a generic class or type alias.
type TypeVariableElement struct {
	base
	typ   *TypeParameterType
	Bound Type // nil if the type parameter has no bound
}

// NewTypeVariable returns a type variable element with the given name declared at nameOffset.
func NewTypeVariable(name string, nameOffset int) *TypeVariableElement {
	v := &TypeVariableElement{base: base{name: name, nameOffset: nameOffset}}
	v.typ = &TypeParameterType{param: v}
	return v
}

func (v *TypeVariableElement) Kind() Kind     { return KindTypeVariable }
func (v *TypeVariableElement) String() string { return describe(v) }

// Type returns the type which refers to the type variable.
func (v *TypeVariableElement) Type() *TypeParameterType { return v.typ }

// FunctionTypeAliasElement is a typedef of a function type.
type FunctionTypeAliasElement struct {
	base
	TypeParameters []*TypeVariableElement
	Parameters     []*ParameterElement
	ReturnType     Type
}

// NewFunctionTypeAlias returns a function type alias element with the given name declared at nameOffset.
func NewFunctionTypeAlias(name string, nameOffset int, unit *CompilationUnitElement) *FunctionTypeAliasElement {
	return &FunctionTypeAliasElement{
		base:       base{name: name, nameOffset: nameOffset, enclosing: unit},
		ReturnType: Dynamic,
	}
}

func (a *FunctionTypeAliasElement) Kind() Kind     { return KindFunctionTypeAlias }
func (a *FunctionTypeAliasElement) String() string { return describe(a) }

// Type returns the function type which the alias names.
func (a *FunctionTypeAliasElement) Type() *FunctionType {
	return &FunctionType{element: a, Parameters: a.Parameters, ReturnType: a.ReturnType}
}

// ExecutableElement is a function, method, getter, setter or constructor.
type ExecutableElement struct {
	base
	kind           Kind
	Parameters     []*ParameterElement
	LocalVariables []*VariableElement
	Functions      []*ExecutableElement // local functions
	ReturnType     Type
	Static         bool
	Abstract       bool
	Operator       bool
	Synthetic      bool             // implicit accessors and default constructors
	Variable       *VariableElement // the variable which an implicit accessor accesses
}

// NewExecutable returns an executable element of the given kind with the given name declared at nameOffset. It
// panics if kind isn't an executable kind.
func NewExecutable(kind Kind, name string, nameOffset int) *ExecutableElement {
	if !kind.IsExecutable() {
		panic(fmt.Sprintf("NewExecutable called with non-executable kind %s", kind))
	}
	return &ExecutableElement{
		base:       base{name: name, nameOffset: nameOffset},
		kind:       kind,
		ReturnType: Dynamic,
	}
}

func (e *ExecutableElement) Kind() Kind     { return e.kind }
func (e *ExecutableElement) String() string { return describe(e) }

// Type returns the function type of the executable.
func (e *ExecutableElement) Type() *FunctionType {
	return &FunctionType{element: e, Parameters: e.Parameters, ReturnType: e.ReturnType}
}

// AddParameter adds a parameter to the executable.
func (e *ExecutableElement) AddParameter(param *ParameterElement) {
	param.SetEnclosing(e)
	e.Parameters = append(e.Parameters, param)
}

// AddLocalVariable adds a local variable to the executable.
func (e *ExecutableElement) AddLocalVariable(v *VariableElement) {
	v.SetEnclosing(e)
	e.LocalVariables = append(e.LocalVariables, v)
}

// AddFunction adds a local function to the executable.
func (e *ExecutableElement) AddFunction(f *ExecutableElement) {
	f.SetEnclosing(e)
	e.Functions = append(e.Functions, f)
}

// VariableElement is a field, top-level variable or local variable.
type VariableElement struct {
	base
	kind      Kind
	Type      Type
	Static    bool
	Final     bool
	Const     bool
	Synthetic bool
	Getter    *ExecutableElement
	Setter    *ExecutableElement
}

// NewVariable returns a variable element of the given kind with the given name declared at nameOffset. It panics if
// kind isn't a variable kind.
func NewVariable(kind Kind, name string, nameOffset int) *VariableElement {
	switch kind {
	case KindField, KindTopLevelVariable, KindLocalVariable:
	default:
		panic(fmt.Sprintf("NewVariable called with non-variable kind %s", kind))
	}
	return &VariableElement{
		base: base{name: name, nameOffset: nameOffset},
		kind: kind,
		Type: Dynamic,
	}
}

func (v *VariableElement) Kind() Kind     { return v.kind }
func (v *VariableElement) String() string { return describe(v) }

// implicitAccessors creates the implicit getter and setter of a field or top-level variable. The setter is nil if the
// variable is final or const.
func (v *VariableElement) implicitAccessors() (getter, setter *ExecutableElement) {
	getter = NewExecutable(KindGetter, v.name, v.nameOffset)
	getter.enclosing = v.enclosing
	getter.ReturnType = v.Type
	getter.Static = v.Static
	getter.Synthetic = true
	getter.Variable = v
	v.Getter = getter
	if v.Final || v.Const {
		return getter, nil
	}
	setter = NewExecutable(KindSetter, v.name, v.nameOffset)
	setter.enclosing = v.enclosing
	setter.ReturnType = Void
	setter.Static = v.Static
	setter.Synthetic = true
	setter.Variable = v
	value := NewParameter(v.name, -1, ParameterRequired)
	value.Type = v.Type
	value.Synthetic = true
	setter.AddParameter(value)
	v.Setter = setter
	return getter, setter
}

// SetType sets the declared type of the variable and the types of its implicit accessors.
func (v *VariableElement) SetType(t Type) {
	v.Type = t
	if v.Getter != nil {
		v.Getter.ReturnType = t
	}
	if v.Setter != nil && len(v.Setter.Parameters) == 1 {
		v.Setter.Parameters[0].Type = t
	}
}

// ParameterKind is the kind of a [*ParameterElement].
type ParameterKind int

const (
	ParameterRequired ParameterKind = iota
	ParameterPositional
	ParameterNamed
)

// ParameterElement is a formal parameter of an executable or function type alias.
type ParameterElement struct {
	base
	ParameterKind ParameterKind
	Type          Type
	Synthetic     bool
	Initializing  bool // a field formal parameter, such as this.x
}

// NewParameter returns a parameter element with the given name declared at nameOffset.
func NewParameter(name string, nameOffset int, kind ParameterKind) *ParameterElement {
	return &ParameterElement{
		base:          base{name: name, nameOffset: nameOffset},
		ParameterKind: kind,
		Type:          Dynamic,
	}
}

func (p *ParameterElement) Kind() Kind     { return KindParameter }
func (p *ParameterElement) String() string { return describe(p) }

// ImportElement is an import directive.
type ImportElement struct {
	base
	URI      string
	Prefix   *PrefixElement // nil if the import has no prefix
	Imported *CompilationUnitElement
}

// NewImport returns an import element for the given URI.
func NewImport(uri string, offset int, unit *CompilationUnitElement) *ImportElement {
	return &ImportElement{base: base{nameOffset: offset, enclosing: unit}, URI: uri}
}

func (i *ImportElement) Kind() Kind     { return KindImport }
func (i *ImportElement) String() string { return fmt.Sprintf("import %q", i.URI) }

// PrefixElement is the prefix of one or more imports, such as p in
//
//	import 'lib.dart' as p;
type PrefixElement struct {
	base
	Imports []*ImportElement
}

// NewPrefix returns a prefix element with the given name declared at nameOffset.
func NewPrefix(name string, nameOffset int, unit *CompilationUnitElement) *PrefixElement {
	return &PrefixElement{base: base{name: name, nameOffset: nameOffset, enclosing: unit}}
}

func (p *PrefixElement) Kind() Kind     { return KindPrefix }
func (p *PrefixElement) String() string { return describe(p) }

// DynamicElement is the element of the [Dynamic] type.
type DynamicElement struct {
	base
}

var dynamicElement = &DynamicElement{base: base{name: "dynamic", nameOffset: -1}}

func (d *DynamicElement) Kind() Kind     { return KindDynamic }
func (d *DynamicElement) String() string { return "dynamic" }
