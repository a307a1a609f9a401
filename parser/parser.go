// Package parser implements a parser for Dart source code which recovers from syntax errors.
package parser

import (
	"fmt"
	"io"
	"slices"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/token"
)

// Parse parses the source code read from r.
// The returned tree is always complete, even if the source contains syntax errors: missing identifiers and delimiters
// are replaced by synthetic ones and declarations which can't be parsed are replaced by [*ast.Illegal] nodes. If there
// are syntax errors, the returned error is a [token.Errors] containing all of them.
func Parse(r io.Reader, filename string) (*ast.CompilationUnit, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	unit, errs := parse(src, filename)
	return unit, errs.Err()
}

// ParseSource parses the given source code. It behaves the same as [Parse].
func ParseSource(src []byte, filename string) (*ast.CompilationUnit, error) {
	unit, errs := parse(src, filename)
	return unit, errs.Err()
}

func parse(src []byte, filename string) (*ast.CompilationUnit, token.Errors) {
	p := &parser{
		file:          token.NewFile(filename, src),
		lastErrOffset: -1,
	}
	lexer := newLexer(src)
	lexer.SetErrorHandler(func(tok token.Token, format string, args ...any) {
		p.errs.Addf(p.file, tok.Span(), format, args...)
	})
	for {
		tok := lexer.Next()
		p.toks = append(p.toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	p.tok = p.toks[0]

	unit := p.parseCompilationUnit()
	ast.SetParents(unit)
	p.errs.Sort()
	return unit, p.errs
}

type parser struct {
	file          *token.File
	toks          []token.Token
	pos           int         // index of tok in toks
	tok           token.Token // token currently being considered
	className     string      // name of the class whose body is being parsed
	errs          token.Errors
	lastErrOffset int
}

// compilationUnit = importDirective* compilationUnitMember* EOF ;
func (p *parser) parseCompilationUnit() *ast.CompilationUnit {
	unit := &ast.CompilationUnit{File: p.file}
	for p.tok.Type != token.EOF {
		if p.tok.Type == token.Import {
			unit.Directives = append(unit.Directives, p.parseImportDirective())
			continue
		}
		start := p.pos
		decl := p.parseCompilationUnitMember()
		if p.pos == start {
			decl = p.skipToken()
		}
		unit.Declarations = append(unit.Declarations, decl)
	}
	unit.EOF = p.tok
	return unit
}

// importDirective = "import" STRING ( "as" IDENT )? ";" ;
func (p *parser) parseImportDirective() *ast.ImportDirective {
	directive := &ast.ImportDirective{Keyword: p.advance()}
	if tok, ok := p.match(token.String); ok {
		directive.URI = &ast.StringLiteral{Literal: tok}
	} else {
		directive.URI = &ast.StringLiteral{Literal: p.syntheticToken(token.String)}
		p.addErrorf(p.tok.Span(), "expected library URI")
	}
	if tok, ok := p.match(token.As); ok {
		directive.AsKeyword = tok
		directive.Prefix = p.expectIdent()
	}
	directive.Semicolon = p.expect(token.Semicolon)
	return directive
}

// compilationUnitMember = classDeclaration | typeAlias | functionDeclaration | topLevelVariableDeclaration ;
func (p *parser) parseCompilationUnitMember() ast.CompilationUnitMember {
	switch p.tok.Type {
	case token.Abstract, token.Class:
		return p.parseClassDeclaration()
	case token.Typedef:
		return p.parseTypeAlias()
	case token.Var, token.Final, token.Const:
		keyword := p.advance()
		var typ *ast.TypeName
		if p.isTypeFollowedByName() {
			typ = p.parseTypeName()
		}
		return p.parseTopLevelVariableDeclaration(keyword, typ)
	case token.Ident, token.Void, token.Get, token.Set:
		var returnType *ast.TypeName
		if p.isTypeFollowedByName() {
			returnType = p.parseTypeName()
		}
		var propertyKeyword token.Token
		if p.check(token.Get, token.Set) && p.peek(1).Type == token.Ident {
			propertyKeyword = p.advance()
		}
		if p.tok.Type == token.Ident && (p.peek(1).Type == token.LeftParen || !propertyKeyword.IsAbsent()) {
			return p.parseFunctionDeclaration(returnType, propertyKeyword)
		}
		if p.tok.Type != token.Ident {
			p.addErrorf(p.tok.Span(), "expected declaration")
			return p.parseIllegal(token.Class, token.Abstract, token.Typedef, token.Import)
		}
		return p.parseTopLevelVariableDeclaration(token.Token{}, returnType)
	default:
		p.addErrorf(p.tok.Span(), "expected declaration")
		return p.parseIllegal(token.Class, token.Abstract, token.Typedef, token.Import)
	}
}

func (p *parser) parseTopLevelVariableDeclaration(keyword token.Token, typ *ast.TypeName) *ast.TopLevelVariableDeclaration {
	return &ast.TopLevelVariableDeclaration{
		Variables: p.parseVariableDeclarationList(keyword, typ),
		Semicolon: p.expect(token.Semicolon),
	}
}

// functionDeclaration = type? ( "get" | "set" )? IDENT formalParameterList? functionBody ;
func (p *parser) parseFunctionDeclaration(returnType *ast.TypeName, propertyKeyword token.Token) *ast.FunctionDeclaration {
	decl := &ast.FunctionDeclaration{
		ReturnType:      returnType,
		PropertyKeyword: propertyKeyword,
		Name:            p.expectIdent(),
	}
	function := &ast.FunctionExpression{}
	if propertyKeyword.Type != token.Get || p.tok.Type == token.LeftParen {
		function.Parameters = p.parseFormalParameterList()
	}
	function.Body = p.parseFunctionBody()
	decl.FunctionExpression = function
	return decl
}

// classDeclaration = "abstract"? "class" IDENT typeParameterList? extendsClause? withClause? implementsClause?
//
//	"{" classMember* "}" ;
func (p *parser) parseClassDeclaration() *ast.ClassDeclaration {
	decl := &ast.ClassDeclaration{}
	if tok, ok := p.match(token.Abstract); ok {
		decl.AbstractKeyword = tok
	}
	decl.ClassKeyword = p.expect(token.Class)
	decl.Name = p.expectIdent()
	if p.tok.Type == token.Less {
		decl.TypeParameters = p.parseTypeParameterList()
	}
	if tok, ok := p.match(token.Extends); ok {
		decl.ExtendsClause = &ast.ExtendsClause{Keyword: tok, Superclass: p.parseTypeName()}
	}
	if p.tok.Type == token.With {
		decl.WithClause = p.parseWithClause()
	}
	if p.tok.Type == token.Implements {
		decl.ImplementsClause = p.parseImplementsClause()
	}

	leftBrace, ok := p.match(token.LeftBrace)
	if !ok {
		p.addErrorf(p.tok.Span(), "expected %m", token.LeftBrace)
		decl.LeftBrace = p.syntheticToken(token.LeftBrace)
		decl.RightBrace = p.syntheticToken(token.RightBrace)
		return decl
	}
	decl.LeftBrace = leftBrace

	enclosingClassName := p.className
	p.className = decl.Name.Name()
	defer func() { p.className = enclosingClassName }()
	for !p.check(token.RightBrace, token.EOF) && !p.atTopLevelDeclarationStart() {
		start := p.pos
		member := p.parseClassMember()
		if p.pos == start {
			member = p.skipToken()
		}
		decl.Members = append(decl.Members, member)
	}
	decl.RightBrace = p.expect(token.RightBrace)
	return decl
}

// atTopLevelDeclarationStart reports whether the current token can only begin a top-level declaration. It's used to
// stop parsing a class body which is missing its closing brace.
func (p *parser) atTopLevelDeclarationStart() bool {
	switch p.tok.Type {
	case token.Class, token.Typedef, token.Import:
		return true
	case token.Abstract:
		return p.peek(1).Type == token.Class
	default:
		return false
	}
}

func (p *parser) parseWithClause() *ast.WithClause {
	clause := &ast.WithClause{Keyword: p.advance()}
	clause.MixinTypes = p.parseTypeNameList()
	return clause
}

func (p *parser) parseImplementsClause() *ast.ImplementsClause {
	clause := &ast.ImplementsClause{Keyword: p.advance()}
	clause.Interfaces = p.parseTypeNameList()
	return clause
}

func (p *parser) parseTypeNameList() []*ast.TypeName {
	typeNames := []*ast.TypeName{p.parseTypeName()}
	for {
		if _, ok := p.match(token.Comma); !ok {
			return typeNames
		}
		typeNames = append(typeNames, p.parseTypeName())
	}
}

// typeAlias = "typedef" ( classTypeAlias | functionTypeAlias ) ;
// classTypeAlias = IDENT typeParameterList? "=" "abstract"? typeName withClause implementsClause? ";" ;
// functionTypeAlias = type? IDENT typeParameterList? formalParameterList ";" ;
func (p *parser) parseTypeAlias() ast.CompilationUnitMember {
	keyword := p.advance()
	if p.isClassTypeAlias() {
		alias := &ast.ClassTypeAlias{Keyword: keyword, Name: p.expectIdent()}
		if p.tok.Type == token.Less {
			alias.TypeParameters = p.parseTypeParameterList()
		}
		alias.Equals = p.expect(token.Equal)
		if tok, ok := p.match(token.Abstract); ok {
			alias.AbstractKeyword = tok
		}
		alias.Superclass = p.parseTypeName()
		if p.tok.Type == token.With {
			alias.WithClause = p.parseWithClause()
		} else {
			p.addErrorf(p.tok.Span(), "expected %m", token.With)
		}
		if p.tok.Type == token.Implements {
			alias.ImplementsClause = p.parseImplementsClause()
		}
		alias.Semicolon = p.expect(token.Semicolon)
		return alias
	}

	alias := &ast.FunctionTypeAlias{Keyword: keyword}
	if p.isTypeFollowedByName() {
		alias.ReturnType = p.parseTypeName()
	}
	alias.Name = p.expectIdent()
	if p.tok.Type == token.Less {
		alias.TypeParameters = p.parseTypeParameterList()
	}
	alias.Parameters = p.parseFormalParameterList()
	alias.Semicolon = p.expect(token.Semicolon)
	return alias
}

func (p *parser) isClassTypeAlias() bool {
	if p.tok.Type != token.Ident {
		return false
	}
	switch p.peek(1).Type {
	case token.Equal:
		return true
	case token.Less:
		end := p.skipAngleBrackets(p.pos + 1)
		return end >= 0 && p.toks[end].Type == token.Equal
	default:
		return false
	}
}

// typeParameterList = "<" typeParameter ( "," typeParameter )* ">" ;
// typeParameter = IDENT ( "extends" typeName )? ;
func (p *parser) parseTypeParameterList() *ast.TypeParameterList {
	list := &ast.TypeParameterList{LeftBracket: p.advance()}
	for {
		param := &ast.TypeParameter{Name: p.expectIdent()}
		if tok, ok := p.match(token.Extends); ok {
			param.Keyword = tok
			param.Bound = p.parseTypeName()
		}
		list.TypeParameters = append(list.TypeParameters, param)
		if _, ok := p.match(token.Comma); !ok {
			break
		}
	}
	list.RightBracket = p.expect(token.Greater)
	return list
}

// classMember = constructorDeclaration | methodDeclaration | fieldDeclaration ;
func (p *parser) parseClassMember() ast.ClassMember {
	switch {
	case p.tok.Type == token.Factory:
		factoryKeyword := p.advance()
		return p.parseConstructorDeclaration(token.Token{}, factoryKeyword)
	case p.tok.Type == token.Const && p.isConstructorStart(1):
		constKeyword := p.advance()
		return p.parseConstructorDeclaration(constKeyword, token.Token{})
	case p.isConstructorStart(0):
		return p.parseConstructorDeclaration(token.Token{}, token.Token{})
	}

	var staticKeyword token.Token
	if tok, ok := p.match(token.Static); ok {
		staticKeyword = tok
	}

	if p.check(token.Var, token.Final) || p.tok.Type == token.Const && !(p.peek(1).Type == token.Ident && p.peek(2).Type == token.LeftParen) {
		keyword := p.advance()
		var typ *ast.TypeName
		if p.isTypeFollowedByName() {
			typ = p.parseTypeName()
		}
		return p.parseFieldDeclaration(staticKeyword, keyword, typ)
	}

	modifierKeyword := staticKeyword
	if tok, ok := p.match(token.Const); ok && modifierKeyword.IsAbsent() {
		modifierKeyword = tok
	}

	var returnType *ast.TypeName
	if p.isTypeFollowedByName() {
		returnType = p.parseTypeName()
	}

	var propertyKeyword, operatorKeyword token.Token
	switch {
	case p.check(token.Get, token.Set) && p.peek(1).Type == token.Ident:
		propertyKeyword = p.advance()
	case p.tok.Type == token.Operator:
		operatorKeyword = p.advance()
	}

	switch {
	case !operatorKeyword.IsAbsent():
		return p.parseMethodDeclaration(modifierKeyword, returnType, propertyKeyword, operatorKeyword, p.parseOperatorName())
	case p.tok.Type == token.Ident && (p.peek(1).Type == token.LeftParen || !propertyKeyword.IsAbsent()):
		return p.parseMethodDeclaration(modifierKeyword, returnType, propertyKeyword, operatorKeyword, p.expectIdent())
	case returnType == nil && p.check(token.Ident, token.Void) && p.peek(1).Type != token.Equal && p.peek(1).Type != token.Comma:
		// A lone type, such as "class A { Map }", is a field which is missing its name.
		return p.parseFieldDeclaration(staticKeyword, token.Token{}, p.parseTypeName())
	case p.tok.Type == token.Ident:
		return p.parseFieldDeclaration(staticKeyword, token.Token{}, returnType)
	default:
		p.addErrorf(p.tok.Span(), "expected class member")
		return p.parseIllegal(token.RightBrace)
	}
}

// isConstructorStart reports whether the token n tokens ahead begins a constructor of the class being parsed.
func (p *parser) isConstructorStart(n int) bool {
	tok := p.peek(n)
	if tok.Type != token.Ident || tok.Lexeme != p.className {
		return false
	}
	next := p.peek(n + 1).Type
	return next == token.LeftParen || next == token.Dot
}

// fieldDeclaration = "static"? ( "var" | "final" | "const" )? type? variableDeclaration ( "," variableDeclaration )* ";" ;
func (p *parser) parseFieldDeclaration(staticKeyword, keyword token.Token, typ *ast.TypeName) *ast.FieldDeclaration {
	return &ast.FieldDeclaration{
		StaticKeyword: staticKeyword,
		Variables:     p.parseVariableDeclarationList(keyword, typ),
		Semicolon:     p.expect(token.Semicolon),
	}
}

// methodDeclaration = ( "static" | "const" )? type? ( "get" | "set" | "operator" )? name formalParameterList?
//
//	functionBody ;
func (p *parser) parseMethodDeclaration(modifierKeyword token.Token, returnType *ast.TypeName, propertyKeyword, operatorKeyword token.Token, name *ast.SimpleIdentifier) *ast.MethodDeclaration {
	decl := &ast.MethodDeclaration{
		ModifierKeyword: modifierKeyword,
		ReturnType:      returnType,
		PropertyKeyword: propertyKeyword,
		OperatorKeyword: operatorKeyword,
		Name:            name,
	}
	if propertyKeyword.Type != token.Get || p.tok.Type == token.LeftParen {
		decl.Parameters = p.parseFormalParameterList()
	}
	decl.Body = p.parseFunctionBody()
	return decl
}

var operatorTypes = []token.Type{
	token.EqualEqual, token.Plus, token.Minus, token.Asterisk, token.Slash, token.Percent, token.Less,
	token.LessEqual, token.Greater, token.GreaterEqual,
}

func (p *parser) parseOperatorName() *ast.SimpleIdentifier {
	if tok, ok := p.match(operatorTypes...); ok {
		return &ast.SimpleIdentifier{Token: tok}
	}
	p.addErrorf(p.tok.Span(), "expected operator")
	return &ast.SimpleIdentifier{Token: p.syntheticToken(token.Ident)}
}

// constructorDeclaration = ( "const" | "factory" )? IDENT ( "." IDENT )? formalParameterList
//
//	( ":" initializer ( "," initializer )* )? functionBody ;
func (p *parser) parseConstructorDeclaration(constKeyword, factoryKeyword token.Token) *ast.ConstructorDeclaration {
	decl := &ast.ConstructorDeclaration{
		ConstKeyword:   constKeyword,
		FactoryKeyword: factoryKeyword,
		ReturnType:     p.expectIdent(),
	}
	if tok, ok := p.match(token.Dot); ok {
		decl.Period = tok
		decl.Name = p.expectIdent()
	}
	decl.Parameters = p.parseFormalParameterList()
	if tok, ok := p.match(token.Colon); ok {
		decl.Separator = tok
		for {
			initializer, ok := p.parseConstructorInitializer()
			if !ok {
				break
			}
			decl.Initializers = append(decl.Initializers, initializer)
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	decl.Body = p.parseFunctionBody()
	return decl
}

// initializer = "super" ( "." IDENT )? argumentList
//
//	| "this" ( "." IDENT )? argumentList
//	| ( "this" "." )? IDENT "=" expression ;
func (p *parser) parseConstructorInitializer() (ast.ConstructorInitializer, bool) {
	switch {
	case p.tok.Type == token.Super:
		invocation := &ast.SuperConstructorInvocation{Keyword: p.advance()}
		if tok, ok := p.match(token.Dot); ok {
			invocation.Period = tok
			invocation.ConstructorName = p.expectIdent()
		}
		invocation.ArgumentList = p.parseArgumentList()
		return invocation, true
	case p.tok.Type == token.This && (p.peek(1).Type == token.LeftParen || p.peek(2).Type == token.Ident && p.peek(3).Type == token.LeftParen):
		invocation := &ast.RedirectingConstructorInvocation{Keyword: p.advance()}
		if tok, ok := p.match(token.Dot); ok {
			invocation.Period = tok
			invocation.ConstructorName = p.expectIdent()
		}
		invocation.ArgumentList = p.parseArgumentList()
		return invocation, true
	case p.tok.Type == token.This || p.tok.Type == token.Ident:
		initializer := &ast.ConstructorFieldInitializer{}
		if tok, ok := p.match(token.This); ok {
			initializer.Keyword = tok
			initializer.Period = p.expect(token.Dot)
		}
		initializer.FieldName = p.expectIdent()
		initializer.Equals = p.expect(token.Equal)
		initializer.Expression = p.parseConditional()
		return initializer, true
	default:
		p.addErrorf(p.tok.Span(), "expected initializer")
		return nil, false
	}
}

// functionBody = block | "=>" expression ";" | ";" ;
func (p *parser) parseFunctionBody() ast.FunctionBody {
	switch p.tok.Type {
	case token.LeftBrace:
		return &ast.BlockFunctionBody{Block: p.parseBlock()}
	case token.Arrow:
		body := &ast.ExpressionFunctionBody{Arrow: p.advance()}
		body.Expression = p.parseExpression()
		body.Semicolon = p.expect(token.Semicolon)
		return body
	case token.Semicolon:
		return &ast.EmptyFunctionBody{Semicolon: p.advance()}
	default:
		p.addErrorf(p.tok.Span(), "expected function body")
		return &ast.EmptyFunctionBody{Semicolon: p.syntheticToken(token.Semicolon)}
	}
}

// formalParameterList = "(" normalParameters? ( "," optionalParameters )? ")" ;
// optionalParameters = "[" defaultParameters "]" | "{" defaultParameters "}" ;
func (p *parser) parseFormalParameterList() *ast.FormalParameterList {
	list := &ast.FormalParameterList{}
	leftParen, ok := p.match(token.LeftParen)
	if !ok {
		p.addErrorf(p.tok.Span(), "expected %m", token.LeftParen)
		list.LeftParen = p.syntheticToken(token.LeftParen)
		list.RightParen = p.syntheticToken(token.RightParen)
		return list
	}
	list.LeftParen = leftParen

	kind := ast.ParameterRequired
	closingDelimiter := token.RightParen
	for p.tok.Type != token.RightParen || len(list.Parameters) > 0 {
		if kind == ast.ParameterRequired && p.check(token.LeftBracket, token.LeftBrace) {
			list.LeftDelimiter = p.advance()
			kind = ast.ParameterPositional
			closingDelimiter = token.RightBracket
			if list.LeftDelimiter.Type == token.LeftBrace {
				kind = ast.ParameterNamed
				closingDelimiter = token.RightBrace
			}
		}
		// A parameter list ending in a comma, as in "(a, )", gets a synthetic parameter after the comma.
		list.Parameters = append(list.Parameters, p.parseFormalParameter(kind))
		if _, ok := p.match(token.Comma); !ok {
			break
		}
	}
	if kind != ast.ParameterRequired {
		list.RightDelimiter = p.expect(closingDelimiter)
	}
	list.RightParen = p.expect(token.RightParen)
	return list
}

// formalParameter = ( "var" | "final" | "const" )? type? ( "this" "." )? IDENT ( ( "=" | ":" ) expression )? ;
func (p *parser) parseFormalParameter(kind ast.ParameterKind) ast.FormalParameter {
	var keyword token.Token
	if tok, ok := p.match(token.Var, token.Final, token.Const); ok {
		keyword = tok
	}
	var typ *ast.TypeName
	if p.isTypeFollowedByName() || p.check(token.Ident, token.Void) && p.peek(1).Type == token.This {
		typ = p.parseTypeName()
	}

	var param ast.NormalFormalParameter
	if thisKeyword, ok := p.match(token.This); ok {
		param = &ast.FieldFormalParameter{
			Keyword:     keyword,
			Type:        typ,
			ThisKeyword: thisKeyword,
			Period:      p.expect(token.Dot),
			Identifier:  p.expectIdent(),
		}
	} else {
		param = &ast.SimpleFormalParameter{
			Keyword:    keyword,
			Type:       typ,
			Identifier: p.expectIdent(),
		}
	}

	if kind == ast.ParameterRequired {
		return param
	}
	defaultParam := &ast.DefaultFormalParameter{Parameter: param, ParameterKind: kind}
	if tok, ok := p.match(token.Equal, token.Colon); ok {
		defaultParam.Separator = tok
		defaultParam.DefaultValue = p.parseConditional()
	}
	return defaultParam
}

// block = "{" statement* "}" ;
func (p *parser) parseBlock() *ast.Block {
	block := &ast.Block{LeftBrace: p.expect(token.LeftBrace)}
	if block.LeftBrace.Synthetic {
		block.RightBrace = p.syntheticToken(token.RightBrace)
		return block
	}
	for !p.check(token.RightBrace, token.EOF) && !p.atTopLevelDeclarationStart() {
		start := p.pos
		stmt := p.parseStatement()
		if p.pos == start {
			// The statement is made up of synthetic nodes, so the current token can't start a statement.
			p.addErrorf(p.tok.Span(), "expected statement")
			stmt = p.skipToken()
		}
		block.Statements = append(block.Statements, stmt)
	}
	block.RightBrace = p.expect(token.RightBrace)
	return block
}

// statement = block | ";" | returnStatement | ifStatement | whileStatement | forStatement
//
//	| variableDeclarationStatement | functionDeclarationStatement | expressionStatement ;
func (p *parser) parseStatement() ast.Stmt {
	switch p.tok.Type {
	case token.LeftBrace:
		return p.parseBlock()
	case token.Semicolon:
		return &ast.EmptyStatement{Semicolon: p.advance()}
	case token.Return:
		stmt := &ast.ReturnStatement{Keyword: p.advance()}
		if !p.check(token.Semicolon, token.RightBrace, token.EOF) {
			stmt.Expression = p.parseExpression()
		}
		stmt.Semicolon = p.expect(token.Semicolon)
		return stmt
	case token.If:
		return p.parseIfStatement()
	case token.While:
		stmt := &ast.WhileStatement{Keyword: p.advance()}
		stmt.LeftParen = p.expect(token.LeftParen)
		stmt.Condition = p.parseExpression()
		stmt.RightParen = p.expect(token.RightParen)
		stmt.Body = p.parseStatement()
		return stmt
	case token.For:
		return p.parseForStatement()
	case token.Var, token.Final, token.Const:
		if p.tok.Type == token.Const && p.peek(1).Type == token.Ident && p.peek(2).Type == token.LeftParen {
			break
		}
		keyword := p.advance()
		var typ *ast.TypeName
		if p.isTypeFollowedByName() {
			typ = p.parseTypeName()
		}
		return p.parseVariableDeclarationStatement(keyword, typ)
	case token.Void:
		returnType := p.parseTypeName()
		return &ast.FunctionDeclarationStatement{FunctionDeclaration: p.parseFunctionDeclaration(returnType, token.Token{})}
	case token.Ident:
		if p.isTypeFollowedByName() {
			typ := p.parseTypeName()
			if p.peek(1).Type == token.LeftParen {
				return &ast.FunctionDeclarationStatement{FunctionDeclaration: p.parseFunctionDeclaration(typ, token.Token{})}
			}
			return p.parseVariableDeclarationStatement(token.Token{}, typ)
		}
		if p.isLocalFunctionStart() {
			return &ast.FunctionDeclarationStatement{FunctionDeclaration: p.parseFunctionDeclaration(nil, token.Token{})}
		}
	}
	stmt := &ast.ExpressionStatement{Expression: p.parseExpression()}
	stmt.Semicolon = p.expect(token.Semicolon)
	return stmt
}

// isLocalFunctionStart reports whether the current token begins a function declaration without a return type, such
// as "f(a) {" or "f(a) =>".
func (p *parser) isLocalFunctionStart() bool {
	if p.tok.Type != token.Ident || p.peek(1).Type != token.LeftParen {
		return false
	}
	depth := 0
	for i := p.pos + 1; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.LeftParen:
			depth++
		case token.RightParen:
			depth--
			if depth == 0 {
				next := p.at(i + 1).Type
				return next == token.LeftBrace || next == token.Arrow
			}
		case token.EOF, token.Semicolon, token.LeftBrace, token.RightBrace:
			return false
		}
	}
	return false
}

func (p *parser) parseVariableDeclarationStatement(keyword token.Token, typ *ast.TypeName) *ast.VariableDeclarationStatement {
	return &ast.VariableDeclarationStatement{
		Variables: p.parseVariableDeclarationList(keyword, typ),
		Semicolon: p.expect(token.Semicolon),
	}
}

// variableDeclarationList = variableDeclaration ( "," variableDeclaration )* ;
// variableDeclaration = IDENT ( "=" expression )? ;
func (p *parser) parseVariableDeclarationList(keyword token.Token, typ *ast.TypeName) *ast.VariableDeclarationList {
	list := &ast.VariableDeclarationList{Keyword: keyword, Type: typ}
	for {
		decl := &ast.VariableDeclaration{Name: p.expectIdent()}
		if tok, ok := p.match(token.Equal); ok {
			decl.Equals = tok
			decl.Initializer = p.parseExpression()
		}
		list.Variables = append(list.Variables, decl)
		if _, ok := p.match(token.Comma); !ok {
			return list
		}
	}
}

// ifStatement = "if" "(" expression ")" statement ( "else" statement )? ;
func (p *parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Keyword: p.advance()}
	stmt.LeftParen = p.expect(token.LeftParen)
	stmt.Condition = p.parseExpression()
	stmt.RightParen = p.expect(token.RightParen)
	stmt.Then = p.parseStatement()
	if tok, ok := p.match(token.Else); ok {
		stmt.ElseKeyword = tok
		stmt.Else = p.parseStatement()
	}
	return stmt
}

// forStatement = "for" "(" ( variableDeclarationList | expression )? ";" expression? ";" expressionList? ")" statement ;
func (p *parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Keyword: p.advance()}
	stmt.LeftParen = p.expect(token.LeftParen)
	switch {
	case p.check(token.Var, token.Final, token.Const):
		keyword := p.advance()
		var typ *ast.TypeName
		if p.isTypeFollowedByName() {
			typ = p.parseTypeName()
		}
		stmt.Variables = p.parseVariableDeclarationList(keyword, typ)
	case p.isTypeFollowedByName():
		stmt.Variables = p.parseVariableDeclarationList(token.Token{}, p.parseTypeName())
	case p.tok.Type != token.Semicolon:
		stmt.Initialization = p.parseExpression()
	}
	stmt.LeftSeparator = p.expect(token.Semicolon)
	if p.tok.Type != token.Semicolon {
		stmt.Condition = p.parseExpression()
	}
	stmt.RightSeparator = p.expect(token.Semicolon)
	for p.tok.Type != token.RightParen {
		start := p.pos
		stmt.Updaters = append(stmt.Updaters, p.parseExpression())
		if _, ok := p.match(token.Comma); !ok || p.pos == start {
			break
		}
	}
	stmt.RightParen = p.expect(token.RightParen)
	stmt.Body = p.parseStatement()
	return stmt
}

// expression = conditional ( ( "=" | "+=" | "-=" ) expression )? ;
func (p *parser) parseExpression() ast.Expr {
	expr := p.parseConditional()
	if op, ok := p.match(token.Equal, token.PlusEqual, token.MinusEqual); ok {
		return &ast.AssignmentExpression{LeftHandSide: expr, Operator: op, RightHandSide: p.parseExpression()}
	}
	return expr
}

// conditional = logicalOr ( "?" expression ":" expression )? ;
func (p *parser) parseConditional() ast.Expr {
	expr := p.parseLogicalOr()
	if question, ok := p.match(token.Question); ok {
		cond := &ast.ConditionalExpression{Condition: expr, Question: question}
		cond.Then = p.parseExpression()
		cond.Colon = p.expect(token.Colon)
		cond.Else = p.parseExpression()
		return cond
	}
	return expr
}

// logicalOr = logicalAnd ( "||" logicalAnd )* ;
func (p *parser) parseLogicalOr() ast.Expr {
	return p.parseBinary(p.parseLogicalAnd, token.PipePipe)
}

// logicalAnd = equality ( "&&" equality )* ;
func (p *parser) parseLogicalAnd() ast.Expr {
	return p.parseBinary(p.parseEquality, token.AmpAmp)
}

// equality = relational ( ( "==" | "!=" ) relational )* ;
func (p *parser) parseEquality() ast.Expr {
	return p.parseBinary(p.parseRelational, token.EqualEqual, token.BangEqual)
}

// relational = additive ( ( "<" | "<=" | ">" | ">=" ) additive | "is" "!"? typeName )? ;
func (p *parser) parseRelational() ast.Expr {
	expr := p.parseAdditive()
	if isOperator, ok := p.match(token.Is); ok {
		isExpr := &ast.IsExpression{Expression: expr, IsOperator: isOperator}
		if tok, ok := p.match(token.Bang); ok {
			isExpr.NotOperator = tok
		}
		isExpr.Type = p.parseTypeName()
		return isExpr
	}
	if op, ok := p.match(token.Less, token.LessEqual, token.Greater, token.GreaterEqual); ok {
		return &ast.BinaryExpression{Left: expr, Operator: op, Right: p.parseAdditive()}
	}
	return expr
}

// additive = multiplicative ( ( "+" | "-" ) multiplicative )* ;
func (p *parser) parseAdditive() ast.Expr {
	return p.parseBinary(p.parseMultiplicative, token.Plus, token.Minus)
}

// multiplicative = unary ( ( "*" | "/" | "%" ) unary )* ;
func (p *parser) parseMultiplicative() ast.Expr {
	return p.parseBinary(p.parseUnary, token.Asterisk, token.Slash, token.Percent)
}

func (p *parser) parseBinary(parseOperand func() ast.Expr, operators ...token.Type) ast.Expr {
	expr := parseOperand()
	for {
		op, ok := p.match(operators...)
		if !ok {
			return expr
		}
		expr = &ast.BinaryExpression{Left: expr, Operator: op, Right: parseOperand()}
	}
}

// unary = ( "-" | "!" | "++" | "--" ) unary | postfix ;
func (p *parser) parseUnary() ast.Expr {
	if op, ok := p.match(token.Minus, token.Bang, token.PlusPlus, token.MinusMinus); ok {
		return &ast.PrefixExpression{Operator: op, Operand: p.parseUnary()}
	}
	return p.parsePostfix()
}

// postfix = primary ( "." IDENT argumentList? | argumentList | "++" | "--" )* ;
func (p *parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.tok.Type {
		case token.Dot:
			period := p.advance()
			name := p.expectIdent()
			switch target := expr.(type) {
			case *ast.SimpleIdentifier:
				if p.tok.Type == token.LeftParen {
					expr = &ast.MethodInvocation{Target: target, Period: period, MethodName: name, ArgumentList: p.parseArgumentList()}
				} else {
					expr = &ast.PrefixedIdentifier{Prefix: target, Period: period, Identifier: name}
				}
			default:
				if p.tok.Type == token.LeftParen {
					expr = &ast.MethodInvocation{Target: target, Period: period, MethodName: name, ArgumentList: p.parseArgumentList()}
				} else {
					expr = &ast.PropertyAccess{Target: target, Operator: period, PropertyName: name}
				}
			}
		case token.LeftParen:
			if ident, ok := expr.(*ast.SimpleIdentifier); ok {
				expr = &ast.MethodInvocation{MethodName: ident, ArgumentList: p.parseArgumentList()}
			} else {
				expr = &ast.FunctionExpressionInvocation{Function: expr, ArgumentList: p.parseArgumentList()}
			}
		case token.PlusPlus, token.MinusMinus:
			expr = &ast.PostfixExpression{Operand: expr, Operator: p.advance()}
		default:
			return expr
		}
	}
}

// primary = IDENT | "this" | "super" | literal | "(" expression ")" | instanceCreation ;
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok.Type {
	case token.Ident:
		return &ast.SimpleIdentifier{Token: p.advance()}
	case token.This:
		return &ast.ThisExpression{Keyword: p.advance()}
	case token.Super:
		return &ast.SuperExpression{Keyword: p.advance()}
	case token.True, token.False:
		return &ast.BooleanLiteral{Literal: p.advance()}
	case token.Null:
		return &ast.NullLiteral{Literal: p.advance()}
	case token.Int:
		return &ast.IntegerLiteral{Literal: p.advance()}
	case token.Double:
		return &ast.DoubleLiteral{Literal: p.advance()}
	case token.String:
		return &ast.StringLiteral{Literal: p.advance()}
	case token.LeftParen:
		expr := &ast.ParenthesizedExpression{LeftParen: p.advance()}
		expr.Expression = p.parseExpression()
		expr.RightParen = p.expect(token.RightParen)
		return expr
	case token.New, token.Const:
		return p.parseInstanceCreationExpression()
	default:
		p.addErrorf(p.tok.Span(), "expected expression")
		return &ast.SimpleIdentifier{Token: p.syntheticToken(token.Ident)}
	}
}

// instanceCreation = ( "new" | "const" ) typeName ( "." IDENT )? argumentList ;
func (p *parser) parseInstanceCreationExpression() *ast.InstanceCreationExpression {
	expr := &ast.InstanceCreationExpression{Keyword: p.advance()}
	name := &ast.ConstructorName{}
	// "new a.B.c()" has a prefixed type and a constructor name. "new A.c()" is ambiguous between a prefixed type and a
	// named constructor; it's parsed as the latter.
	prefixed := p.tok.Type == token.Ident && p.peek(1).Type == token.Dot && p.peek(2).Type == token.Ident && p.peek(3).Type == token.Dot
	name.Type = p.parseTypeNameWithPrefix(prefixed)
	if tok, ok := p.match(token.Dot); ok {
		name.Period = tok
		name.Name = p.expectIdent()
	}
	expr.ConstructorName = name
	expr.ArgumentList = p.parseArgumentList()
	return expr
}

// argumentList = "(" ( argument ( "," argument )* )? ")" ;
// argument = ( IDENT ":" )? expression ;
func (p *parser) parseArgumentList() *ast.ArgumentList {
	list := &ast.ArgumentList{}
	leftParen, ok := p.match(token.LeftParen)
	if !ok {
		p.addErrorf(p.tok.Span(), "expected %m", token.LeftParen)
		list.LeftParen = p.syntheticToken(token.LeftParen)
		list.RightParen = p.syntheticToken(token.RightParen)
		return list
	}
	list.LeftParen = leftParen
	for p.tok.Type != token.RightParen {
		start := p.pos
		var arg ast.Expr
		if p.tok.Type == token.Ident && p.peek(1).Type == token.Colon {
			named := &ast.NamedExpression{Name: &ast.SimpleIdentifier{Token: p.advance()}, Colon: p.advance()}
			named.Expression = p.parseExpression()
			arg = named
		} else {
			arg = p.parseExpression()
		}
		list.Arguments = append(list.Arguments, arg)
		if _, ok := p.match(token.Comma); !ok || p.pos == start {
			break
		}
	}
	list.RightParen = p.expect(token.RightParen)
	return list
}

// typeName = "void" | IDENT ( "." IDENT )? typeArguments? ;
func (p *parser) parseTypeName() *ast.TypeName {
	prefixed := p.tok.Type == token.Ident && p.peek(1).Type == token.Dot && p.peek(2).Type == token.Ident
	return p.parseTypeNameWithPrefix(prefixed)
}

func (p *parser) parseTypeNameWithPrefix(prefixed bool) *ast.TypeName {
	if tok, ok := p.match(token.Void); ok {
		return &ast.TypeName{Name: &ast.SimpleIdentifier{Token: tok}}
	}
	typeName := &ast.TypeName{}
	ident := p.expectIdent()
	if prefixed {
		typeName.Name = &ast.PrefixedIdentifier{Prefix: ident, Period: p.advance(), Identifier: p.expectIdent()}
	} else {
		typeName.Name = ident
	}
	if p.tok.Type == token.Less {
		args := &ast.TypeArgumentList{LeftBracket: p.advance()}
		for {
			args.Arguments = append(args.Arguments, p.parseTypeName())
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
		args.RightBracket = p.expect(token.Greater)
		typeName.TypeArguments = args
	}
	return typeName
}

// isTypeFollowedByName reports whether the tokens starting at the current one are a type followed by the name of a
// declaration, as in "int x" or "List<int> get xs".
func (p *parser) isTypeFollowedByName() bool {
	end := p.skipType(p.pos)
	if end < 0 {
		return false
	}
	switch p.at(end).Type {
	case token.Ident:
		return true
	case token.Get, token.Set:
		return p.at(end+1).Type == token.Ident
	case token.Operator:
		return true
	case token.This:
		return p.at(end+1).Type == token.Dot
	default:
		return false
	}
}

// skipType returns the index of the token following the type which starts at index i, or -1 if there's no type at
// index i.
func (p *parser) skipType(i int) int {
	switch p.at(i).Type {
	case token.Void:
		return i + 1
	case token.Ident:
	default:
		return -1
	}
	i++
	if p.at(i).Type == token.Dot && p.at(i+1).Type == token.Ident {
		i += 2
	}
	if p.at(i).Type == token.Less {
		return p.skipAngleBrackets(i)
	}
	return i
}

// skipAngleBrackets returns the index of the token following the type argument or parameter list which starts at
// index i, or -1 if there isn't one.
func (p *parser) skipAngleBrackets(i int) int {
	depth := 0
	for ; ; i++ {
		switch p.at(i).Type {
		case token.Less:
			depth++
		case token.Greater:
			depth--
			if depth == 0 {
				return i + 1
			}
		case token.Ident, token.Comma, token.Dot, token.Void, token.Extends:
		default:
			return -1
		}
	}
}

// parseIllegal consumes tokens up to and including the next semicolon. It stops early before EOF or any of the given
// token types. Braces are skipped in balanced pairs.
func (p *parser) parseIllegal(stop ...token.Type) *ast.Illegal {
	illegal := &ast.Illegal{From: p.tok, To: p.tok}
	for p.tok.Type != token.EOF && !slices.Contains(stop, p.tok.Type) {
		switch p.tok.Type {
		case token.Semicolon:
			illegal.To = p.advance()
			return illegal
		case token.LeftBrace:
			illegal.To = p.skipBraces()
			if p.tok.Type == token.Semicolon {
				illegal.To = p.advance()
			}
			return illegal
		default:
			illegal.To = p.advance()
		}
	}
	return illegal
}

// skipToken consumes the current token as an illegal node.
func (p *parser) skipToken() *ast.Illegal {
	tok := p.advance()
	return &ast.Illegal{From: tok, To: tok}
}

// skipBraces consumes a balanced pair of braces and everything between them, returning the last token consumed.
func (p *parser) skipBraces() token.Token {
	depth := 0
	last := p.tok
	for p.tok.Type != token.EOF {
		switch p.tok.Type {
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			depth--
		}
		last = p.advance()
		if depth == 0 {
			break
		}
	}
	return last
}

// at returns the token at index i, or the EOF token if i is out of range.
func (p *parser) at(i int) token.Token {
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// peek returns the token n tokens ahead of the current one.
func (p *parser) peek(n int) token.Token {
	return p.at(p.pos + n)
}

// advance consumes the current token and returns it.
func (p *parser) advance() token.Token {
	tok := p.tok
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.tok = p.toks[p.pos]
	return tok
}

// check reports whether the current token has one of the given types.
func (p *parser) check(types ...token.Type) bool {
	return slices.Contains(types, p.tok.Type)
}

// match consumes and returns the current token if it has one of the given types.
func (p *parser) match(types ...token.Type) (token.Token, bool) {
	if p.check(types...) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes and returns the current token if it has the given type. Otherwise, a syntax error is recorded and a
// synthetic token of the given type is returned.
func (p *parser) expect(t token.Type) token.Token {
	if tok, ok := p.match(t); ok {
		return tok
	}
	p.addErrorf(p.tok.Span(), "expected %m", t)
	return p.syntheticToken(t)
}

// expectIdent consumes the current token and returns it as an identifier if it's an identifier. Otherwise, a syntax
// error is recorded and a synthetic identifier is returned.
func (p *parser) expectIdent() *ast.SimpleIdentifier {
	if tok, ok := p.match(token.Ident); ok {
		return &ast.SimpleIdentifier{Token: tok}
	}
	p.addErrorf(p.tok.Span(), "expected identifier")
	return &ast.SimpleIdentifier{Token: p.syntheticToken(token.Ident)}
}

// syntheticToken returns a zero-length token of the given type positioned at the current token.
func (p *parser) syntheticToken(t token.Type) token.Token {
	return token.Token{Type: t, Offset: p.tok.Offset, Synthetic: true}
}

// addErrorf records a syntax error. Only the first error at each offset is kept since errors at the same position
// are usually caused by the same mistake.
func (p *parser) addErrorf(rang token.Range, format string, args ...any) {
	if rang.Offset() == p.lastErrOffset {
		return
	}
	p.errs.Addf(p.file, rang, format, args...)
	p.lastErrOffset = rang.Offset()
}
