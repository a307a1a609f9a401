// Package ast declares the types used to represent abstract syntax trees for Dart code.
//
// Every node records the byte range it covers and a link to its parent. Parent links are set by [SetParents] once a
// tree has been built and are only used for upward traversal.
package ast

import (
	"github.com/marcuscaisey/dartcomplete/token"
)

// Node is the interface which all AST nodes implement.
//
//gosumtype:decl Node
type Node interface {
	// Offset returns the byte offset of the first character of the node.
	Offset() int
	// End returns the byte offset of the character immediately after the node.
	End() int
	// Parent returns the node which directly contains this one, or nil for the root.
	Parent() Node
	// Kind returns the syntactic kind of the node.
	Kind() Kind
	setParent(Node)
}

type node struct {
	parent Node
}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) setParent(parent Node) {
	n.parent = parent
}

// Declaration is a node which declares a named entity.
//
//gosumtype:decl Declaration
type Declaration interface {
	Node
	declarationNode()
}

// CompilationUnitMember is a node which can appear at the top level of a compilation unit.
//
//gosumtype:decl CompilationUnitMember
type CompilationUnitMember interface {
	Node
	compilationUnitMemberNode()
}

// ClassMember is a node which can appear in the body of a class.
//
//gosumtype:decl ClassMember
type ClassMember interface {
	Node
	classMemberNode()
}

// Stmt is the interface which all statement nodes implement.
//
//gosumtype:decl Stmt
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface which all expression nodes implement.
//
//gosumtype:decl Expr
type Expr interface {
	Node
	exprNode()
}

// Identifier is a simple or prefixed identifier.
//
//gosumtype:decl Identifier
type Identifier interface {
	Expr
	// Name returns the full name of the identifier, including any prefix.
	Name() string
	identifierNode()
}

// Literal is a literal value.
//
//gosumtype:decl Literal
type Literal interface {
	Expr
	// Token returns the literal's token.
	Token() token.Token
}

// FormalParameter is a parameter in a formal parameter list.
//
//gosumtype:decl FormalParameter
type FormalParameter interface {
	Node
	// Ident returns the identifier naming the parameter.
	Ident() *SimpleIdentifier
	formalParameterNode()
}

// NormalFormalParameter is a formal parameter which isn't wrapped in a default value.
//
//gosumtype:decl NormalFormalParameter
type NormalFormalParameter interface {
	FormalParameter
	normalFormalParameterNode()
}

// FunctionBody is the body of a function, method or constructor.
//
//gosumtype:decl FunctionBody
type FunctionBody interface {
	Node
	functionBodyNode()
}

// ConstructorInitializer is an entry in the initializer list of a constructor.
//
//gosumtype:decl ConstructorInitializer
type ConstructorInitializer interface {
	Node
	constructorInitializerNode()
}

// CompilationUnit is the root of the AST of a Dart file.
type CompilationUnit struct {
	node
	File         *token.File
	Directives   []*ImportDirective      `print:"named"`
	Declarations []CompilationUnitMember `print:"named"`
	EOF          token.Token
}

func (u *CompilationUnit) Offset() int { return 0 }
func (u *CompilationUnit) End() int    { return u.EOF.End() }
func (u *CompilationUnit) Kind() Kind  { return KindCompilationUnit }

// ImportDirective is an import of another library, such as
//
//	import 'dart:math' as math;
type ImportDirective struct {
	node
	Keyword   token.Token
	URI       *StringLiteral `print:"named"`
	AsKeyword token.Token
	Prefix    *SimpleIdentifier `print:"named"`
	Semicolon token.Token
}

func (d *ImportDirective) Offset() int { return d.Keyword.Offset }
func (d *ImportDirective) End() int    { return d.Semicolon.End() }
func (d *ImportDirective) Kind() Kind  { return KindImportDirective }

// ClassDeclaration is a class declaration, such as
//
//	abstract class A<T> extends B with M implements I {}
type ClassDeclaration struct {
	node
	AbstractKeyword  token.Token `print:"named"`
	ClassKeyword     token.Token
	Name             *SimpleIdentifier  `print:"named"`
	TypeParameters   *TypeParameterList `print:"named"`
	ExtendsClause    *ExtendsClause     `print:"named"`
	WithClause       *WithClause        `print:"named"`
	ImplementsClause *ImplementsClause  `print:"named"`
	LeftBrace        token.Token
	Members          []ClassMember `print:"named"`
	RightBrace       token.Token
}

func (d *ClassDeclaration) Offset() int {
	if !d.AbstractKeyword.IsAbsent() {
		return d.AbstractKeyword.Offset
	}
	return d.ClassKeyword.Offset
}
func (d *ClassDeclaration) End() int   { return d.RightBrace.End() }
func (d *ClassDeclaration) Kind() Kind { return KindClassDeclaration }

// ClassTypeAlias is a class declared as the application of mixins to a superclass, such as
//
//	typedef C = B with M;
type ClassTypeAlias struct {
	node
	Keyword          token.Token
	Name             *SimpleIdentifier  `print:"named"`
	TypeParameters   *TypeParameterList `print:"named"`
	Equals           token.Token
	AbstractKeyword  token.Token       `print:"named"`
	Superclass       *TypeName         `print:"named"`
	WithClause       *WithClause       `print:"named"`
	ImplementsClause *ImplementsClause `print:"named"`
	Semicolon        token.Token
}

func (a *ClassTypeAlias) Offset() int { return a.Keyword.Offset }
func (a *ClassTypeAlias) End() int    { return a.Semicolon.End() }
func (a *ClassTypeAlias) Kind() Kind  { return KindClassTypeAlias }

// FunctionTypeAlias is a named function type, such as
//
//	typedef int Compare<T>(T a, T b);
type FunctionTypeAlias struct {
	node
	Keyword        token.Token
	ReturnType     *TypeName            `print:"named"`
	Name           *SimpleIdentifier    `print:"named"`
	TypeParameters *TypeParameterList   `print:"named"`
	Parameters     *FormalParameterList `print:"named"`
	Semicolon      token.Token
}

func (a *FunctionTypeAlias) Offset() int { return a.Keyword.Offset }
func (a *FunctionTypeAlias) End() int    { return a.Semicolon.End() }
func (a *FunctionTypeAlias) Kind() Kind  { return KindFunctionTypeAlias }

// FunctionDeclaration is a top-level or local function declaration, such as
//
//	int add(int a, int b) => a + b;
type FunctionDeclaration struct {
	node
	ReturnType         *TypeName           `print:"named"`
	PropertyKeyword    token.Token         `print:"named"`
	Name               *SimpleIdentifier   `print:"named"`
	FunctionExpression *FunctionExpression `print:"named"`
}

func (d *FunctionDeclaration) Offset() int {
	switch {
	case d.ReturnType != nil:
		return d.ReturnType.Offset()
	case !d.PropertyKeyword.IsAbsent():
		return d.PropertyKeyword.Offset
	default:
		return d.Name.Offset()
	}
}
func (d *FunctionDeclaration) End() int   { return d.FunctionExpression.End() }
func (d *FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

// IsGetter reports whether the function is a getter.
func (d *FunctionDeclaration) IsGetter() bool { return d.PropertyKeyword.Type == token.Get }

// IsSetter reports whether the function is a setter.
func (d *FunctionDeclaration) IsSetter() bool { return d.PropertyKeyword.Type == token.Set }

// FunctionExpression is the parameters and body of a function.
type FunctionExpression struct {
	node
	Parameters *FormalParameterList `print:"named"`
	Body       FunctionBody         `print:"named"`
}

func (e *FunctionExpression) Offset() int {
	if e.Parameters != nil {
		return e.Parameters.Offset()
	}
	return e.Body.Offset()
}
func (e *FunctionExpression) End() int   { return e.Body.End() }
func (e *FunctionExpression) Kind() Kind { return KindFunctionExpression }

// TopLevelVariableDeclaration is a declaration of one or more top-level variables, such as
//
//	var a = 1, b;
type TopLevelVariableDeclaration struct {
	node
	Variables *VariableDeclarationList `print:"unnamed"`
	Semicolon token.Token
}

func (d *TopLevelVariableDeclaration) Offset() int { return d.Variables.Offset() }
func (d *TopLevelVariableDeclaration) End() int    { return d.Semicolon.End() }
func (d *TopLevelVariableDeclaration) Kind() Kind  { return KindTopLevelVariableDeclaration }

// FieldDeclaration is a declaration of one or more fields in a class, such as
//
//	static final int x = 1, y = 2;
type FieldDeclaration struct {
	node
	StaticKeyword token.Token              `print:"named"`
	Variables     *VariableDeclarationList `print:"unnamed"`
	Semicolon     token.Token
}

func (d *FieldDeclaration) Offset() int {
	if !d.StaticKeyword.IsAbsent() {
		return d.StaticKeyword.Offset
	}
	return d.Variables.Offset()
}
func (d *FieldDeclaration) End() int   { return d.Semicolon.End() }
func (d *FieldDeclaration) Kind() Kind { return KindFieldDeclaration }

// IsStatic reports whether the fields are static.
func (d *FieldDeclaration) IsStatic() bool { return d.StaticKeyword.Type == token.Static }

// MethodDeclaration is a method, getter, setter or operator declaration in a class, such as
//
//	static int get count => 0;
type MethodDeclaration struct {
	node
	ModifierKeyword token.Token          `print:"named"`
	ReturnType      *TypeName            `print:"named"`
	PropertyKeyword token.Token          `print:"named"`
	OperatorKeyword token.Token          `print:"named"`
	Name            *SimpleIdentifier    `print:"named"`
	Parameters      *FormalParameterList `print:"named"`
	Body            FunctionBody         `print:"named"`
}

func (d *MethodDeclaration) Offset() int {
	switch {
	case !d.ModifierKeyword.IsAbsent():
		return d.ModifierKeyword.Offset
	case d.ReturnType != nil:
		return d.ReturnType.Offset()
	case !d.PropertyKeyword.IsAbsent():
		return d.PropertyKeyword.Offset
	case !d.OperatorKeyword.IsAbsent():
		return d.OperatorKeyword.Offset
	default:
		return d.Name.Offset()
	}
}
func (d *MethodDeclaration) End() int   { return d.Body.End() }
func (d *MethodDeclaration) Kind() Kind { return KindMethodDeclaration }

// IsStatic reports whether the method is static.
func (d *MethodDeclaration) IsStatic() bool { return d.ModifierKeyword.Type == token.Static }

// IsAbstract reports whether the method has no body.
func (d *MethodDeclaration) IsAbstract() bool {
	_, ok := d.Body.(*EmptyFunctionBody)
	return ok
}

// IsGetter reports whether the method is a getter.
func (d *MethodDeclaration) IsGetter() bool { return d.PropertyKeyword.Type == token.Get }

// IsSetter reports whether the method is a setter.
func (d *MethodDeclaration) IsSetter() bool { return d.PropertyKeyword.Type == token.Set }

// IsOperator reports whether the method declares an operator.
func (d *MethodDeclaration) IsOperator() bool { return d.OperatorKeyword.Type == token.Operator }

// ConstructorDeclaration is a constructor declaration in a class, such as
//
//	const Point.origin() : this.x = 0, super();
type ConstructorDeclaration struct {
	node
	ConstKeyword   token.Token       `print:"named"`
	FactoryKeyword token.Token       `print:"named"`
	ReturnType     *SimpleIdentifier `print:"named"`
	Period         token.Token
	Name           *SimpleIdentifier    `print:"named"`
	Parameters     *FormalParameterList `print:"named"`
	Separator      token.Token
	Initializers   []ConstructorInitializer `print:"named"`
	Body           FunctionBody             `print:"named"`
}

func (d *ConstructorDeclaration) Offset() int {
	switch {
	case !d.ConstKeyword.IsAbsent():
		return d.ConstKeyword.Offset
	case !d.FactoryKeyword.IsAbsent():
		return d.FactoryKeyword.Offset
	default:
		return d.ReturnType.Offset()
	}
}
func (d *ConstructorDeclaration) End() int   { return d.Body.End() }
func (d *ConstructorDeclaration) Kind() Kind { return KindConstructorDeclaration }

// ConstructorFieldInitializer initializes a field in a constructor's initializer list, such as
//
//	this.x = 0
type ConstructorFieldInitializer struct {
	node
	Keyword    token.Token
	Period     token.Token
	FieldName  *SimpleIdentifier `print:"named"`
	Equals     token.Token
	Expression Expr `print:"named"`
}

func (i *ConstructorFieldInitializer) Offset() int {
	if !i.Keyword.IsAbsent() {
		return i.Keyword.Offset
	}
	return i.FieldName.Offset()
}
func (i *ConstructorFieldInitializer) End() int   { return i.Expression.End() }
func (i *ConstructorFieldInitializer) Kind() Kind { return KindConstructorFieldInitializer }

// SuperConstructorInvocation invokes a superclass constructor from an initializer list, such as
//
//	super.named(1)
type SuperConstructorInvocation struct {
	node
	Keyword         token.Token
	Period          token.Token
	ConstructorName *SimpleIdentifier `print:"named"`
	ArgumentList    *ArgumentList     `print:"named"`
}

func (i *SuperConstructorInvocation) Offset() int { return i.Keyword.Offset }
func (i *SuperConstructorInvocation) End() int    { return i.ArgumentList.End() }
func (i *SuperConstructorInvocation) Kind() Kind  { return KindSuperConstructorInvocation }

// RedirectingConstructorInvocation redirects to another constructor of the same class, such as
//
//	this.named(1)
type RedirectingConstructorInvocation struct {
	node
	Keyword         token.Token
	Period          token.Token
	ConstructorName *SimpleIdentifier `print:"named"`
	ArgumentList    *ArgumentList     `print:"named"`
}

func (i *RedirectingConstructorInvocation) Offset() int { return i.Keyword.Offset }
func (i *RedirectingConstructorInvocation) End() int    { return i.ArgumentList.End() }
func (i *RedirectingConstructorInvocation) Kind() Kind  { return KindRedirectingConstructorInvocation }

// TypeParameterList is the list of type parameters of a generic declaration, such as
//
//	<K, V extends num>
type TypeParameterList struct {
	node
	LeftBracket    token.Token
	TypeParameters []*TypeParameter `print:"unnamed"`
	RightBracket   token.Token
}

func (l *TypeParameterList) Offset() int { return l.LeftBracket.Offset }
func (l *TypeParameterList) End() int    { return l.RightBracket.End() }
func (l *TypeParameterList) Kind() Kind  { return KindTypeParameterList }

// TypeParameter is a single type parameter, such as
//
//	T extends num
type TypeParameter struct {
	node
	Name    *SimpleIdentifier `print:"named"`
	Keyword token.Token
	Bound   *TypeName `print:"named"`
}

func (p *TypeParameter) Offset() int { return p.Name.Offset() }
func (p *TypeParameter) End() int {
	switch {
	case p.Bound != nil:
		return p.Bound.End()
	case !p.Keyword.IsAbsent():
		return p.Keyword.End()
	default:
		return p.Name.End()
	}
}
func (p *TypeParameter) Kind() Kind { return KindTypeParameter }

// ExtendsClause names the superclass of a class.
type ExtendsClause struct {
	node
	Keyword    token.Token
	Superclass *TypeName `print:"unnamed"`
}

func (c *ExtendsClause) Offset() int { return c.Keyword.Offset }
func (c *ExtendsClause) End() int    { return c.Superclass.End() }
func (c *ExtendsClause) Kind() Kind  { return KindExtendsClause }

// WithClause names the mixins applied to a class.
type WithClause struct {
	node
	Keyword    token.Token
	MixinTypes []*TypeName `print:"unnamed"`
}

func (c *WithClause) Offset() int { return c.Keyword.Offset }
func (c *WithClause) End() int {
	if len(c.MixinTypes) > 0 {
		return c.MixinTypes[len(c.MixinTypes)-1].End()
	}
	return c.Keyword.End()
}
func (c *WithClause) Kind() Kind { return KindWithClause }

// ImplementsClause names the interfaces implemented by a class.
type ImplementsClause struct {
	node
	Keyword    token.Token
	Interfaces []*TypeName `print:"unnamed"`
}

func (c *ImplementsClause) Offset() int { return c.Keyword.Offset }
func (c *ImplementsClause) End() int {
	if len(c.Interfaces) > 0 {
		return c.Interfaces[len(c.Interfaces)-1].End()
	}
	return c.Keyword.End()
}
func (c *ImplementsClause) Kind() Kind { return KindImplementsClause }

// TypeName is a reference to a type, such as
//
//	Map<String, int>
type TypeName struct {
	node
	Name          Identifier        `print:"unnamed"`
	TypeArguments *TypeArgumentList `print:"named"`
}

func (n *TypeName) Offset() int { return n.Name.Offset() }
func (n *TypeName) End() int {
	if n.TypeArguments != nil {
		return n.TypeArguments.End()
	}
	return n.Name.End()
}
func (n *TypeName) Kind() Kind { return KindTypeName }

// TypeArgumentList is the list of type arguments of a type name.
type TypeArgumentList struct {
	node
	LeftBracket  token.Token
	Arguments    []*TypeName `print:"unnamed"`
	RightBracket token.Token
}

func (l *TypeArgumentList) Offset() int { return l.LeftBracket.Offset }
func (l *TypeArgumentList) End() int    { return l.RightBracket.End() }
func (l *TypeArgumentList) Kind() Kind  { return KindTypeArgumentList }

// FormalParameterList is the parameter list of a function, such as
//
//	(int a, [int b = 1])
type FormalParameterList struct {
	node
	LeftParen      token.Token
	Parameters     []FormalParameter `print:"unnamed"`
	LeftDelimiter  token.Token
	RightDelimiter token.Token
	RightParen     token.Token
}

func (l *FormalParameterList) Offset() int { return l.LeftParen.Offset }
func (l *FormalParameterList) End() int    { return l.RightParen.End() }
func (l *FormalParameterList) Kind() Kind  { return KindFormalParameterList }

// SimpleFormalParameter is a parameter with an optional keyword and type, such as
//
//	final int x
type SimpleFormalParameter struct {
	node
	Keyword    token.Token       `print:"named"`
	Type       *TypeName         `print:"named"`
	Identifier *SimpleIdentifier `print:"named"`
}

func (p *SimpleFormalParameter) Offset() int {
	switch {
	case !p.Keyword.IsAbsent():
		return p.Keyword.Offset
	case p.Type != nil:
		return p.Type.Offset()
	default:
		return p.Identifier.Offset()
	}
}
func (p *SimpleFormalParameter) End() int                 { return p.Identifier.End() }
func (p *SimpleFormalParameter) Kind() Kind               { return KindSimpleFormalParameter }
func (p *SimpleFormalParameter) Ident() *SimpleIdentifier { return p.Identifier }

// FieldFormalParameter is a parameter which initializes a field, such as
//
//	this.x
type FieldFormalParameter struct {
	node
	Keyword     token.Token `print:"named"`
	Type        *TypeName   `print:"named"`
	ThisKeyword token.Token
	Period      token.Token
	Identifier  *SimpleIdentifier `print:"named"`
}

func (p *FieldFormalParameter) Offset() int {
	switch {
	case !p.Keyword.IsAbsent():
		return p.Keyword.Offset
	case p.Type != nil:
		return p.Type.Offset()
	default:
		return p.ThisKeyword.Offset
	}
}
func (p *FieldFormalParameter) End() int                 { return p.Identifier.End() }
func (p *FieldFormalParameter) Kind() Kind               { return KindFieldFormalParameter }
func (p *FieldFormalParameter) Ident() *SimpleIdentifier { return p.Identifier }

// ParameterKind describes how an argument is passed for a parameter.
type ParameterKind int

// The list of all parameter kinds.
const (
	ParameterRequired ParameterKind = iota
	ParameterPositional
	ParameterNamed
)

func (k ParameterKind) String() string {
	switch k {
	case ParameterRequired:
		return "required"
	case ParameterPositional:
		return "positional"
	case ParameterNamed:
		return "named"
	default:
		return "unknown"
	}
}

// DefaultFormalParameter is an optional parameter, possibly with a default value, such as
//
//	b = 1
type DefaultFormalParameter struct {
	node
	Parameter     NormalFormalParameter `print:"unnamed"`
	ParameterKind ParameterKind         `print:"named"`
	Separator     token.Token
	DefaultValue  Expr `print:"named"`
}

func (p *DefaultFormalParameter) Offset() int { return p.Parameter.Offset() }
func (p *DefaultFormalParameter) End() int {
	if p.DefaultValue != nil {
		return p.DefaultValue.End()
	}
	return p.Parameter.End()
}
func (p *DefaultFormalParameter) Kind() Kind               { return KindDefaultFormalParameter }
func (p *DefaultFormalParameter) Ident() *SimpleIdentifier { return p.Parameter.Ident() }

// BlockFunctionBody is a function body consisting of a block.
type BlockFunctionBody struct {
	node
	Block *Block `print:"unnamed"`
}

func (b *BlockFunctionBody) Offset() int { return b.Block.Offset() }
func (b *BlockFunctionBody) End() int    { return b.Block.End() }
func (b *BlockFunctionBody) Kind() Kind  { return KindBlockFunctionBody }

// ExpressionFunctionBody is a function body consisting of a single expression, such as
//
//	=> x + 1;
type ExpressionFunctionBody struct {
	node
	Arrow      token.Token
	Expression Expr `print:"unnamed"`
	Semicolon  token.Token
}

func (b *ExpressionFunctionBody) Offset() int { return b.Arrow.Offset }
func (b *ExpressionFunctionBody) End() int {
	if !b.Semicolon.IsAbsent() {
		return b.Semicolon.End()
	}
	return b.Expression.End()
}
func (b *ExpressionFunctionBody) Kind() Kind { return KindExpressionFunctionBody }

// EmptyFunctionBody is the body of an abstract or external function.
type EmptyFunctionBody struct {
	node
	Semicolon token.Token
}

func (b *EmptyFunctionBody) Offset() int { return b.Semicolon.Offset }
func (b *EmptyFunctionBody) End() int    { return b.Semicolon.End() }
func (b *EmptyFunctionBody) Kind() Kind  { return KindEmptyFunctionBody }

// Block is a sequence of statements enclosed in braces.
type Block struct {
	node
	LeftBrace  token.Token
	Statements []Stmt `print:"unnamed"`
	RightBrace token.Token
}

func (b *Block) Offset() int { return b.LeftBrace.Offset }
func (b *Block) End() int    { return b.RightBrace.End() }
func (b *Block) Kind() Kind  { return KindBlock }

// VariableDeclarationStatement is a declaration of local variables.
type VariableDeclarationStatement struct {
	node
	Variables *VariableDeclarationList `print:"unnamed"`
	Semicolon token.Token
}

func (s *VariableDeclarationStatement) Offset() int { return s.Variables.Offset() }
func (s *VariableDeclarationStatement) End() int    { return s.Semicolon.End() }
func (s *VariableDeclarationStatement) Kind() Kind  { return KindVariableDeclarationStatement }

// VariableDeclarationList is a list of variables sharing a keyword and type, such as
//
//	final int a = 1, b = 2
type VariableDeclarationList struct {
	node
	Keyword   token.Token            `print:"named"`
	Type      *TypeName              `print:"named"`
	Variables []*VariableDeclaration `print:"named"`
}

func (l *VariableDeclarationList) Offset() int {
	switch {
	case !l.Keyword.IsAbsent():
		return l.Keyword.Offset
	case l.Type != nil:
		return l.Type.Offset()
	default:
		return l.Variables[0].Offset()
	}
}
func (l *VariableDeclarationList) End() int {
	return l.Variables[len(l.Variables)-1].End()
}
func (l *VariableDeclarationList) Kind() Kind { return KindVariableDeclarationList }

// IsFinal reports whether the variables are final or const.
func (l *VariableDeclarationList) IsFinal() bool {
	return l.Keyword.Type == token.Final || l.Keyword.Type == token.Const
}

// VariableDeclaration is a single variable in a variable declaration list, such as
//
//	a = 1
type VariableDeclaration struct {
	node
	Name        *SimpleIdentifier `print:"named"`
	Equals      token.Token
	Initializer Expr `print:"named"`
}

func (d *VariableDeclaration) Offset() int { return d.Name.Offset() }
func (d *VariableDeclaration) End() int {
	if d.Initializer != nil {
		return d.Initializer.End()
	}
	return d.Name.End()
}
func (d *VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	node
	Expression Expr `print:"unnamed"`
	Semicolon  token.Token
}

func (s *ExpressionStatement) Offset() int { return s.Expression.Offset() }
func (s *ExpressionStatement) End() int    { return s.Semicolon.End() }
func (s *ExpressionStatement) Kind() Kind  { return KindExpressionStatement }

// ReturnStatement is a return statement, such as
//
//	return x;
type ReturnStatement struct {
	node
	Keyword    token.Token
	Expression Expr `print:"unnamed"`
	Semicolon  token.Token
}

func (s *ReturnStatement) Offset() int { return s.Keyword.Offset }
func (s *ReturnStatement) End() int    { return s.Semicolon.End() }
func (s *ReturnStatement) Kind() Kind  { return KindReturnStatement }

// IfStatement is an if statement, such as
//
//	if (a) b; else c;
type IfStatement struct {
	node
	Keyword     token.Token
	LeftParen   token.Token
	Condition   Expr `print:"named"`
	RightParen  token.Token
	Then        Stmt `print:"named"`
	ElseKeyword token.Token
	Else        Stmt `print:"named"`
}

func (s *IfStatement) Offset() int { return s.Keyword.Offset }
func (s *IfStatement) End() int {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}
func (s *IfStatement) Kind() Kind { return KindIfStatement }

// WhileStatement is a while loop.
type WhileStatement struct {
	node
	Keyword    token.Token
	LeftParen  token.Token
	Condition  Expr `print:"named"`
	RightParen token.Token
	Body       Stmt `print:"named"`
}

func (s *WhileStatement) Offset() int { return s.Keyword.Offset }
func (s *WhileStatement) End() int    { return s.Body.End() }
func (s *WhileStatement) Kind() Kind  { return KindWhileStatement }

// ForStatement is a C-style for loop, such as
//
//	for (var i = 0; i < n; i++) {}
type ForStatement struct {
	node
	Keyword        token.Token
	LeftParen      token.Token
	Variables      *VariableDeclarationList `print:"named"`
	Initialization Expr                     `print:"named"`
	LeftSeparator  token.Token
	Condition      Expr `print:"named"`
	RightSeparator token.Token
	Updaters       []Expr `print:"named"`
	RightParen     token.Token
	Body           Stmt `print:"named"`
}

func (s *ForStatement) Offset() int { return s.Keyword.Offset }
func (s *ForStatement) End() int    { return s.Body.End() }
func (s *ForStatement) Kind() Kind  { return KindForStatement }

// FunctionDeclarationStatement is a local function declaration.
type FunctionDeclarationStatement struct {
	node
	FunctionDeclaration *FunctionDeclaration `print:"unnamed"`
}

func (s *FunctionDeclarationStatement) Offset() int { return s.FunctionDeclaration.Offset() }
func (s *FunctionDeclarationStatement) End() int    { return s.FunctionDeclaration.End() }
func (s *FunctionDeclarationStatement) Kind() Kind  { return KindFunctionDeclarationStatement }

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	node
	Semicolon token.Token
}

func (s *EmptyStatement) Offset() int { return s.Semicolon.Offset }
func (s *EmptyStatement) End() int    { return s.Semicolon.End() }
func (s *EmptyStatement) Kind() Kind  { return KindEmptyStatement }

// Illegal is a sequence of tokens which couldn't be parsed. It can appear wherever a top-level declaration, class
// member or statement was expected.
type Illegal struct {
	node
	From token.Token
	To   token.Token
}

func (i *Illegal) Offset() int { return i.From.Offset }
func (i *Illegal) End() int    { return i.To.End() }
func (i *Illegal) Kind() Kind  { return KindIllegal }

// SimpleIdentifier is a single identifier. A synthetic identifier was expected by the parser but missing from the
// source and has an empty name.
type SimpleIdentifier struct {
	node
	Token token.Token `print:"unnamed"`
}

func (i *SimpleIdentifier) Offset() int { return i.Token.Offset }
func (i *SimpleIdentifier) End() int    { return i.Token.End() }
func (i *SimpleIdentifier) Kind() Kind  { return KindSimpleIdentifier }
func (i *SimpleIdentifier) Name() string {
	return i.Token.Lexeme
}

// IsSynthetic reports whether the identifier was inserted by the parser.
func (i *SimpleIdentifier) IsSynthetic() bool { return i.Token.Synthetic }

// PrefixedIdentifier is an identifier qualified by another, such as
//
//	math.pi
type PrefixedIdentifier struct {
	node
	Prefix     *SimpleIdentifier `print:"unnamed"`
	Period     token.Token
	Identifier *SimpleIdentifier `print:"unnamed"`
}

func (i *PrefixedIdentifier) Offset() int { return i.Prefix.Offset() }
func (i *PrefixedIdentifier) End() int    { return i.Identifier.End() }
func (i *PrefixedIdentifier) Kind() Kind  { return KindPrefixedIdentifier }
func (i *PrefixedIdentifier) Name() string {
	return i.Prefix.Name() + "." + i.Identifier.Name()
}

// PropertyAccess is the access of a property of an expression which isn't a simple identifier, such as
//
//	a.b.c
type PropertyAccess struct {
	node
	Target       Expr `print:"named"`
	Operator     token.Token
	PropertyName *SimpleIdentifier `print:"named"`
}

func (a *PropertyAccess) Offset() int { return a.Target.Offset() }
func (a *PropertyAccess) End() int    { return a.PropertyName.End() }
func (a *PropertyAccess) Kind() Kind  { return KindPropertyAccess }

// MethodInvocation is the invocation of a method or function, with or without an explicit target, such as
//
//	a.b(1)
type MethodInvocation struct {
	node
	Target       Expr `print:"named"`
	Period       token.Token
	MethodName   *SimpleIdentifier `print:"named"`
	ArgumentList *ArgumentList     `print:"named"`
}

func (i *MethodInvocation) Offset() int {
	if i.Target != nil {
		return i.Target.Offset()
	}
	return i.MethodName.Offset()
}
func (i *MethodInvocation) End() int   { return i.ArgumentList.End() }
func (i *MethodInvocation) Kind() Kind { return KindMethodInvocation }

// FunctionExpressionInvocation is the invocation of the result of an expression, such as
//
//	f()()
type FunctionExpressionInvocation struct {
	node
	Function     Expr          `print:"named"`
	ArgumentList *ArgumentList `print:"named"`
}

func (i *FunctionExpressionInvocation) Offset() int { return i.Function.Offset() }
func (i *FunctionExpressionInvocation) End() int    { return i.ArgumentList.End() }
func (i *FunctionExpressionInvocation) Kind() Kind  { return KindFunctionExpressionInvocation }

// ArgumentList is the arguments passed to an invocation.
type ArgumentList struct {
	node
	LeftParen  token.Token
	Arguments  []Expr `print:"unnamed"`
	RightParen token.Token
}

func (l *ArgumentList) Offset() int { return l.LeftParen.Offset }
func (l *ArgumentList) End() int    { return l.RightParen.End() }
func (l *ArgumentList) Kind() Kind  { return KindArgumentList }

// NamedExpression is a named argument, such as
//
//	radix: 16
type NamedExpression struct {
	node
	Name       *SimpleIdentifier `print:"named"`
	Colon      token.Token
	Expression Expr `print:"named"`
}

func (e *NamedExpression) Offset() int { return e.Name.Offset() }
func (e *NamedExpression) End() int    { return e.Expression.End() }
func (e *NamedExpression) Kind() Kind  { return KindNamedExpression }

// InstanceCreationExpression is the creation of an instance of a class, such as
//
//	new Point.origin()
type InstanceCreationExpression struct {
	node
	Keyword         token.Token      `print:"named"`
	ConstructorName *ConstructorName `print:"named"`
	ArgumentList    *ArgumentList    `print:"named"`
}

func (e *InstanceCreationExpression) Offset() int { return e.Keyword.Offset }
func (e *InstanceCreationExpression) End() int    { return e.ArgumentList.End() }
func (e *InstanceCreationExpression) Kind() Kind  { return KindInstanceCreationExpression }

// ConstructorName is the name of the constructor invoked by an instance creation, such as
//
//	Point.origin
type ConstructorName struct {
	node
	Type   *TypeName `print:"named"`
	Period token.Token
	Name   *SimpleIdentifier `print:"named"`
}

func (n *ConstructorName) Offset() int { return n.Type.Offset() }
func (n *ConstructorName) End() int {
	if n.Name != nil {
		return n.Name.End()
	}
	return n.Type.End()
}
func (n *ConstructorName) Kind() Kind { return KindConstructorName }

// AssignmentExpression is an assignment, such as
//
//	a += 1
type AssignmentExpression struct {
	node
	LeftHandSide  Expr        `print:"unnamed"`
	Operator      token.Token `print:"unnamed"`
	RightHandSide Expr        `print:"unnamed"`
}

func (e *AssignmentExpression) Offset() int { return e.LeftHandSide.Offset() }
func (e *AssignmentExpression) End() int    { return e.RightHandSide.End() }
func (e *AssignmentExpression) Kind() Kind  { return KindAssignmentExpression }

// BinaryExpression is an infix operator expression, such as
//
//	a + b
type BinaryExpression struct {
	node
	Left     Expr        `print:"unnamed"`
	Operator token.Token `print:"unnamed"`
	Right    Expr        `print:"unnamed"`
}

func (e *BinaryExpression) Offset() int { return e.Left.Offset() }
func (e *BinaryExpression) End() int    { return e.Right.End() }
func (e *BinaryExpression) Kind() Kind  { return KindBinaryExpression }

// PrefixExpression is a prefix operator expression, such as
//
//	-a
type PrefixExpression struct {
	node
	Operator token.Token `print:"unnamed"`
	Operand  Expr        `print:"unnamed"`
}

func (e *PrefixExpression) Offset() int { return e.Operator.Offset }
func (e *PrefixExpression) End() int    { return e.Operand.End() }
func (e *PrefixExpression) Kind() Kind  { return KindPrefixExpression }

// PostfixExpression is a postfix operator expression, such as
//
//	i++
type PostfixExpression struct {
	node
	Operand  Expr        `print:"unnamed"`
	Operator token.Token `print:"unnamed"`
}

func (e *PostfixExpression) Offset() int { return e.Operand.Offset() }
func (e *PostfixExpression) End() int    { return e.Operator.End() }
func (e *PostfixExpression) Kind() Kind  { return KindPostfixExpression }

// ConditionalExpression is a ternary expression, such as
//
//	a ? b : c
type ConditionalExpression struct {
	node
	Condition Expr `print:"unnamed"`
	Question  token.Token
	Then      Expr `print:"unnamed"`
	Colon     token.Token
	Else      Expr `print:"unnamed"`
}

func (e *ConditionalExpression) Offset() int { return e.Condition.Offset() }
func (e *ConditionalExpression) End() int    { return e.Else.End() }
func (e *ConditionalExpression) Kind() Kind  { return KindConditionalExpression }

// IsExpression is a type test, such as
//
//	a is! String
type IsExpression struct {
	node
	Expression  Expr `print:"unnamed"`
	IsOperator  token.Token
	NotOperator token.Token `print:"named"`
	Type        *TypeName   `print:"unnamed"`
}

func (e *IsExpression) Offset() int { return e.Expression.Offset() }
func (e *IsExpression) End() int    { return e.Type.End() }
func (e *IsExpression) Kind() Kind  { return KindIsExpression }

// ParenthesizedExpression is an expression enclosed in parentheses.
type ParenthesizedExpression struct {
	node
	LeftParen  token.Token
	Expression Expr `print:"unnamed"`
	RightParen token.Token
}

func (e *ParenthesizedExpression) Offset() int { return e.LeftParen.Offset }
func (e *ParenthesizedExpression) End() int    { return e.RightParen.End() }
func (e *ParenthesizedExpression) Kind() Kind  { return KindParenthesizedExpression }

// ThisExpression is the this keyword.
type ThisExpression struct {
	node
	Keyword token.Token
}

func (e *ThisExpression) Offset() int { return e.Keyword.Offset }
func (e *ThisExpression) End() int    { return e.Keyword.End() }
func (e *ThisExpression) Kind() Kind  { return KindThisExpression }

// SuperExpression is the super keyword.
type SuperExpression struct {
	node
	Keyword token.Token
}

func (e *SuperExpression) Offset() int { return e.Keyword.Offset }
func (e *SuperExpression) End() int    { return e.Keyword.End() }
func (e *SuperExpression) Kind() Kind  { return KindSuperExpression }

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	node
	Literal token.Token `print:"unnamed"`
}

func (l *BooleanLiteral) Offset() int        { return l.Literal.Offset }
func (l *BooleanLiteral) End() int           { return l.Literal.End() }
func (l *BooleanLiteral) Kind() Kind         { return KindBooleanLiteral }
func (l *BooleanLiteral) Token() token.Token { return l.Literal }

// Value returns the value of the literal.
func (l *BooleanLiteral) Value() bool { return l.Literal.Type == token.True }

// NullLiteral is null.
type NullLiteral struct {
	node
	Literal token.Token `print:"unnamed"`
}

func (l *NullLiteral) Offset() int        { return l.Literal.Offset }
func (l *NullLiteral) End() int           { return l.Literal.End() }
func (l *NullLiteral) Kind() Kind         { return KindNullLiteral }
func (l *NullLiteral) Token() token.Token { return l.Literal }

// IntegerLiteral is an integer literal.
type IntegerLiteral struct {
	node
	Literal token.Token `print:"unnamed"`
}

func (l *IntegerLiteral) Offset() int        { return l.Literal.Offset }
func (l *IntegerLiteral) End() int           { return l.Literal.End() }
func (l *IntegerLiteral) Kind() Kind         { return KindIntegerLiteral }
func (l *IntegerLiteral) Token() token.Token { return l.Literal }

// DoubleLiteral is a floating point literal.
type DoubleLiteral struct {
	node
	Literal token.Token `print:"unnamed"`
}

func (l *DoubleLiteral) Offset() int        { return l.Literal.Offset }
func (l *DoubleLiteral) End() int           { return l.Literal.End() }
func (l *DoubleLiteral) Kind() Kind         { return KindDoubleLiteral }
func (l *DoubleLiteral) Token() token.Token { return l.Literal }

// StringLiteral is a single or double quoted string literal without interpolation.
type StringLiteral struct {
	node
	Literal token.Token `print:"unnamed"`
}

func (l *StringLiteral) Offset() int        { return l.Literal.Offset }
func (l *StringLiteral) End() int           { return l.Literal.End() }
func (l *StringLiteral) Kind() Kind         { return KindStringLiteral }
func (l *StringLiteral) Token() token.Token { return l.Literal }

// Value returns the contents of the string without its quotes.
func (l *StringLiteral) Value() string {
	lexeme := l.Literal.Lexeme
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[1 : len(lexeme)-1]
}

func (*ClassDeclaration) declarationNode()            {}
func (*ClassTypeAlias) declarationNode()              {}
func (*FunctionTypeAlias) declarationNode()           {}
func (*FunctionDeclaration) declarationNode()         {}
func (*TopLevelVariableDeclaration) declarationNode() {}
func (*FieldDeclaration) declarationNode()            {}
func (*MethodDeclaration) declarationNode()           {}
func (*ConstructorDeclaration) declarationNode()      {}
func (*VariableDeclaration) declarationNode()         {}
func (*TypeParameter) declarationNode()               {}

func (*ClassDeclaration) compilationUnitMemberNode()            {}
func (*ClassTypeAlias) compilationUnitMemberNode()              {}
func (*FunctionTypeAlias) compilationUnitMemberNode()           {}
func (*FunctionDeclaration) compilationUnitMemberNode()         {}
func (*TopLevelVariableDeclaration) compilationUnitMemberNode() {}
func (*Illegal) compilationUnitMemberNode()                     {}

func (*FieldDeclaration) classMemberNode()       {}
func (*MethodDeclaration) classMemberNode()      {}
func (*ConstructorDeclaration) classMemberNode() {}
func (*Illegal) classMemberNode()                {}

func (*Block) stmtNode()                        {}
func (*VariableDeclarationStatement) stmtNode() {}
func (*ExpressionStatement) stmtNode()          {}
func (*ReturnStatement) stmtNode()              {}
func (*IfStatement) stmtNode()                  {}
func (*WhileStatement) stmtNode()               {}
func (*ForStatement) stmtNode()                 {}
func (*FunctionDeclarationStatement) stmtNode() {}
func (*EmptyStatement) stmtNode()               {}
func (*Illegal) stmtNode()                      {}

func (*SimpleIdentifier) exprNode()             {}
func (*PrefixedIdentifier) exprNode()           {}
func (*PropertyAccess) exprNode()               {}
func (*MethodInvocation) exprNode()             {}
func (*FunctionExpressionInvocation) exprNode() {}
func (*NamedExpression) exprNode()              {}
func (*InstanceCreationExpression) exprNode()   {}
func (*AssignmentExpression) exprNode()         {}
func (*BinaryExpression) exprNode()             {}
func (*PrefixExpression) exprNode()             {}
func (*PostfixExpression) exprNode()            {}
func (*ConditionalExpression) exprNode()        {}
func (*IsExpression) exprNode()                 {}
func (*ParenthesizedExpression) exprNode()      {}
func (*ThisExpression) exprNode()               {}
func (*SuperExpression) exprNode()              {}
func (*BooleanLiteral) exprNode()               {}
func (*NullLiteral) exprNode()                  {}
func (*IntegerLiteral) exprNode()               {}
func (*DoubleLiteral) exprNode()                {}
func (*StringLiteral) exprNode()                {}

func (*SimpleIdentifier) identifierNode()   {}
func (*PrefixedIdentifier) identifierNode() {}

func (*SimpleFormalParameter) formalParameterNode()  {}
func (*FieldFormalParameter) formalParameterNode()   {}
func (*DefaultFormalParameter) formalParameterNode() {}

func (*SimpleFormalParameter) normalFormalParameterNode() {}
func (*FieldFormalParameter) normalFormalParameterNode()  {}

func (*BlockFunctionBody) functionBodyNode()      {}
func (*ExpressionFunctionBody) functionBodyNode() {}
func (*EmptyFunctionBody) functionBodyNode()      {}

func (*ConstructorFieldInitializer) constructorInitializerNode()      {}
func (*SuperConstructorInvocation) constructorInitializerNode()       {}
func (*RedirectingConstructorInvocation) constructorInitializerNode() {}
