package ast

import (
	"bytes"

	"github.com/nettle-lang/nettle/internal/compiler/lexer"
)

// IntegerLiteral is a signed 64-bit integer literal.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) node()                {}
func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// Boolean is a true/false literal.
type Boolean struct {
	Token lexer.Token
	Value bool
}

func (b *Boolean) node()                {}
func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) String() string       { return b.Token.Literal }

// StringLiteral is a double-quoted string literal; Value holds the
// contents with no escape processing applied.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) node()                {}
func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return sl.Token.Literal }

// ArrayLiteral is a bracketed, comma-separated list of expressions.
type ArrayLiteral struct {
	Token    lexer.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) node()                {}
func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	out.WriteString(joinExpressions(al.Elements, ", "))
	out.WriteString("]")
	return out.String()
}

// HashLiteral is a braced, comma-separated list of key:value pairs.
// Pairs preserve insertion order for rendering purposes only.
type HashLiteral struct {
	Token lexer.Token // the '{' token
	Keys  []Expression
	Pairs map[Expression]Expression
}

func (hl *HashLiteral) node()                {}
func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	pairs := make([]string, 0, len(hl.Keys))
	for _, k := range hl.Keys {
		pairs = append(pairs, k.String()+":"+hl.Pairs[k].String())
	}
	for i, p := range pairs {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p)
	}
	out.WriteString("}")
	return out.String()
}

// FunctionLiteral is an `fn(params) { body }` closure expression.
type FunctionLiteral struct {
	Token      lexer.Token // the FUNCTION token
	Parameters []*Identifier
	Body       *BlockStatement
	Name       string // set when bound directly by a let, for diagnostics only
}

func (fl *FunctionLiteral) node()                {}
func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	var out bytes.Buffer
	params := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.String()
	}
	out.WriteString(fl.TokenLiteral())
	out.WriteString("(")
	out.WriteString(joinIdentStrings(params))
	out.WriteString(") {")
	out.WriteString(fl.Body.String())
	out.WriteString("}")
	return out.String()
}

func joinIdentStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

// PrefixExpression is a unary `!` or `-` applied to Right.
type PrefixExpression struct {
	Token    lexer.Token // the prefix operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) node()                {}
func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// InfixExpression is a binary operator applied to Left and Right.
type InfixExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) node()                {}
func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// IfExpression evaluates Condition and takes Consequence or
// Alternative accordingly; Alternative may be nil.
type IfExpression struct {
	Token       lexer.Token // the IF token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) node()                {}
func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if")
	out.WriteString(ie.Condition.String())
	out.WriteString(" { ")
	out.WriteString(ie.Consequence.String())
	out.WriteString(" }")
	if ie.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

// CallExpression invokes Function with Arguments.
type CallExpression struct {
	Token     lexer.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) node()                {}
func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(joinExpressions(ce.Arguments, ", "))
	out.WriteString(")")
	return out.String()
}

// IndexExpression evaluates Left then looks up Index within it.
type IndexExpression struct {
	Token lexer.Token // the '[' token
	Left  Expression
	Index Expression
}

func (ix *IndexExpression) node()                {}
func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ix.Left.String())
	out.WriteString("[")
	out.WriteString(ix.Index.String())
	out.WriteString("])")
	return out.String()
}

// ImportExpression loads another source file as a Module. Name must
// evaluate to a StringLiteral; RequestorDir is the directory of the
// file that contains this expression, used to resolve relative paths.
type ImportExpression struct {
	Token        lexer.Token // the IMPORT token
	RequestorDir string
	Name         Expression
}

func (ie *ImportExpression) node()                {}
func (ie *ImportExpression) expressionNode()      {}
func (ie *ImportExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *ImportExpression) String() string {
	var out bytes.Buffer
	out.WriteString("import(")
	out.WriteString(ie.Name.String())
	out.WriteString(")")
	return out.String()
}
