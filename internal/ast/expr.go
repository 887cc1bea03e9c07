package ast

import "github.com/hassan/semalyzer/internal/lexer"

// Literal is a CONST_INT or CONST_FLOAT token reduced straight to an
// expression.
type Literal struct {
	IsFloat  bool
	Text     string
	Position lexer.Position
}

func (l *Literal) Pos() lexer.Position { return l.Position }
func (l *Literal) Accept(v Visitor) Attr { return v.VisitLiteral(l) }

// Identifier is a bare `id` reference.
type Identifier struct {
	Name     string
	Position lexer.Position
}

func (i *Identifier) Pos() lexer.Position { return i.Position }
func (i *Identifier) Accept(v Visitor) Attr { return v.VisitIdentifier(i) }

// IndexExpr is `id [ expression ]`.
type IndexExpr struct {
	Name     string
	Index    Expr
	Position lexer.Position
}

func (e *IndexExpr) Pos() lexer.Position { return e.Position }
func (e *IndexExpr) Accept(v Visitor) Attr { return v.VisitIndexExpr(e) }

// CallExpr is `id ( argument_list )`.
type CallExpr struct {
	Name     string
	Args     []Expr
	Position lexer.Position
}

func (e *CallExpr) Pos() lexer.Position { return e.Position }
func (e *CallExpr) Accept(v Visitor) Attr { return v.VisitCallExpr(e) }

// BinaryExpr covers ADDOP, MULOP, RELOP, and LOGICOP productions.
// OpCategory carries the grouped token kind; Lexeme the exact spelling the analyzer
// needs for the textual literal-zero check.
type BinaryExpr struct {
	OpCategory string // "ADDOP" | "MULOP" | "RELOP" | "LOGICOP"
	Lexeme     string
	Left       Expr
	Right      Expr
	Position   lexer.Position
}

func (e *BinaryExpr) Pos() lexer.Position { return e.Position }
func (e *BinaryExpr) Accept(v Visitor) Attr { return v.VisitBinaryExpr(e) }

// UnaryExpr covers prefix `+`, `-`, `!`.
type UnaryExpr struct {
	Lexeme   string
	Operand  Expr
	Position lexer.Position
}

func (e *UnaryExpr) Pos() lexer.Position { return e.Position }
func (e *UnaryExpr) Accept(v Visitor) Attr { return v.VisitUnaryExpr(e) }

// PostfixExpr covers post-increment/post-decrement.
type PostfixExpr struct {
	Lexeme   string // "++" | "--"
	Operand  Expr
	Position lexer.Position
}

func (e *PostfixExpr) Pos() lexer.Position { return e.Position }
func (e *PostfixExpr) Accept(v Visitor) Attr { return v.VisitPostfixExpr(e) }

// AssignExpr is `variable = expression`.
type AssignExpr struct {
	Target   Expr
	Value    Expr
	Position lexer.Position
}

func (e *AssignExpr) Pos() lexer.Position { return e.Position }
func (e *AssignExpr) Accept(v Visitor) Attr { return v.VisitAssignExpr(e) }

// ParenExpr is a parenthesized expression; it inherits the inner type.
type ParenExpr struct {
	Inner    Expr
	Position lexer.Position
}

func (e *ParenExpr) Pos() lexer.Position { return e.Position }
func (e *ParenExpr) Accept(v Visitor) Attr { return v.VisitParenExpr(e) }
