package ast

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -trimprefix Kind

// Kind is the syntactic kind of an AST node.
type Kind int

// The list of all node kinds.
const (
	KindCompilationUnit Kind = iota
	KindImportDirective
	KindClassDeclaration
	KindClassTypeAlias
	KindFunctionTypeAlias
	KindFunctionDeclaration
	KindFunctionExpression
	KindTopLevelVariableDeclaration
	KindFieldDeclaration
	KindMethodDeclaration
	KindConstructorDeclaration
	KindConstructorFieldInitializer
	KindSuperConstructorInvocation
	KindRedirectingConstructorInvocation
	KindTypeParameterList
	KindTypeParameter
	KindExtendsClause
	KindWithClause
	KindImplementsClause
	KindTypeName
	KindTypeArgumentList
	KindFormalParameterList
	KindSimpleFormalParameter
	KindFieldFormalParameter
	KindDefaultFormalParameter
	KindBlockFunctionBody
	KindExpressionFunctionBody
	KindEmptyFunctionBody
	KindBlock
	KindVariableDeclarationStatement
	KindVariableDeclarationList
	KindVariableDeclaration
	KindExpressionStatement
	KindReturnStatement
	KindIfStatement
	KindWhileStatement
	KindForStatement
	KindFunctionDeclarationStatement
	KindEmptyStatement
	KindIllegal
	KindSimpleIdentifier
	KindPrefixedIdentifier
	KindPropertyAccess
	KindMethodInvocation
	KindFunctionExpressionInvocation
	KindArgumentList
	KindNamedExpression
	KindInstanceCreationExpression
	KindConstructorName
	KindAssignmentExpression
	KindBinaryExpression
	KindPrefixExpression
	KindPostfixExpression
	KindConditionalExpression
	KindIsExpression
	KindParenthesizedExpression
	KindThisExpression
	KindSuperExpression
	KindBooleanLiteral
	KindNullLiteral
	KindIntegerLiteral
	KindDoubleLiteral
	KindStringLiteral
)
