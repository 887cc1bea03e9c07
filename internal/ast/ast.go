// Package ast defines the syntax tree the parser builds and the semantic
// analyzer walks. Node kinds are a tagged variant — one Go type per
// grammar construct — rather than one heterogeneous struct with a pile of
// optional fields.
package ast

import (
	"github.com/hassan/semalyzer/internal/lexer"
	"github.com/hassan/semalyzer/internal/symtab"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() lexer.Position
}

// Attr is the attribute a production synthesizes for its parent: a rendered
// name (used for pretty-printing and for composing diagnostic text), the
// node's syntactic role, and its propagated data type. Every semantic
// check is expressed in terms of exactly these three fields.
type Attr struct {
	Name string
	Kind symtab.NodeKind
	Type symtab.DataType
}

// Expr is any node that produces a value. Accept drives the semantic
// action dispatcher: each Expr's Accept method lets the Visitor visit its
// children first (bottom-up) before producing its own Attr, matching the
// parser's bottom-up reduction order.
type Expr interface {
	Node
	Accept(v Visitor) Attr
}

// Stmt is any node that performs an action rather than producing a value.
type Stmt interface {
	Node
	Accept(v Visitor) error
}

// Visitor is implemented by the semantic analyzer, and could equally be
// implemented by a pretty-printer or any other AST consumer without
// touching these node types.
type Visitor interface {
	// Expressions
	VisitLiteral(e *Literal) Attr
	VisitIdentifier(e *Identifier) Attr
	VisitIndexExpr(e *IndexExpr) Attr
	VisitCallExpr(e *CallExpr) Attr
	VisitBinaryExpr(e *BinaryExpr) Attr
	VisitUnaryExpr(e *UnaryExpr) Attr
	VisitPostfixExpr(e *PostfixExpr) Attr
	VisitAssignExpr(e *AssignExpr) Attr
	VisitParenExpr(e *ParenExpr) Attr

	// Statements
	VisitVarDecl(s *VarDecl) error
	VisitFuncDecl(s *FuncDecl) error
	VisitBlock(s *Block) error
	VisitIf(s *If) error
	VisitWhile(s *While) error
	VisitFor(s *For) error
	VisitReturn(s *Return) error
	VisitPrintStmt(s *PrintStmt) error
	VisitExprStmt(s *ExprStmt) error
}

// Program is the root node: a sequence of top-level units (variable/array
// declarations and function definitions), in source order.
type Program struct {
	Units    []Stmt
	Position lexer.Position
}

func (p *Program) Pos() lexer.Position { return p.Position }
