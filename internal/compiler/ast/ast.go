// Package ast defines the node types produced by the parser and
// consumed by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/nettle-lang/nettle/internal/compiler/lexer"
)

// Node is implemented by every statement and expression. TokenLiteral
// returns the literal of the token that begins the node; String renders
// the node back to source-like text, used by tests and by the `str`
// builtin.
type Node interface {
	TokenLiteral() string
	String() string
	node()
}

// Statement is a Node that appears at statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears at expression position.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node produced by parsing a whole source file.
type Program struct {
	Statements []Statement
}

func (p *Program) node() {}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// Identifier names a binding.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) node()               {}
func (i *Identifier) expressionNode()     {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// LetStatement binds the value of Value to Name in the current scope.
type LetStatement struct {
	Token lexer.Token // the LET token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) node()               {}
func (ls *LetStatement) statementNode()      {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement evaluates ReturnValue and unwinds the enclosing
// function call with it.
type ReturnStatement struct {
	Token       lexer.Token // the RETURN token
	ReturnValue Expression
}

func (rs *ReturnStatement) node()                {}
func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(rs.TokenLiteral() + " ")
	if rs.ReturnValue != nil {
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement wraps an expression evaluated for its own side
// effects or value, such as a bare call.
type ExpressionStatement struct {
	Token      lexer.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) node()                {}
func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// BlockStatement is a brace-delimited sequence of statements.
type BlockStatement struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) node()                {}
func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// WhileStatement loops over Body while Condition is truthy.
type WhileStatement struct {
	Token     lexer.Token // the WHILE token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) node()                {}
func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	out.WriteString(ws.Condition.String())
	out.WriteString(") { ")
	out.WriteString(ws.Body.String())
	out.WriteString(" }")
	return out.String()
}

// Comment is a no-op statement carrying the comment text, kept in the
// tree so --parse dumps and round-trip rendering can see it.
type Comment struct {
	Token lexer.Token // the COMMENT token
	Text  string
}

func (c *Comment) node()                {}
func (c *Comment) statementNode()       {}
func (c *Comment) TokenLiteral() string { return c.Token.Literal }
func (c *Comment) String() string       { return "//" + c.Text }

// joinExpressions renders a slice of expressions comma-separated, used
// by ArrayLiteral and CallExpression.
func joinExpressions(exprs []Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}
