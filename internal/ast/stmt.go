package ast

import "github.com/hassan/semalyzer/internal/lexer"

// DeclName is one entry in a comma-separated declaration list: either a
// plain variable (`id`) or an array (`id [ const_int ]`).
type DeclName struct {
	Name      string
	IsArray   bool
	ArraySize int
	Position  lexer.Position
}

// VarDecl is a variable/array declaration list sharing one type specifier.
// It is a Stmt so it can appear both at top level (Program units) and
// inside a compound statement's local declarations.
type VarDecl struct {
	TypeName string
	Names    []DeclName
	Position lexer.Position
}

func (s *VarDecl) Pos() lexer.Position { return s.Position }
func (s *VarDecl) Accept(v Visitor) error { return v.VisitVarDecl(s) }

// Param is one (type, formal-name) pair in a function header's parameter
// list. Name may be empty for a prototype-only form.
type Param struct {
	TypeName string
	Name     string
	Position lexer.Position
}

// FuncDecl is `type_specifier id ( parameter_list ) compound_statement`.
type FuncDecl struct {
	ReturnType string
	Name       string
	Params     []Param
	Body       *Block
	Position   lexer.Position
}

func (s *FuncDecl) Pos() lexer.Position { return s.Position }
func (s *FuncDecl) Accept(v Visitor) error { return v.VisitFuncDecl(s) }

// Block is a compound statement: `{ statement* }`.
type Block struct {
	Stmts    []Stmt
	Position lexer.Position
}

func (s *Block) Pos() lexer.Position { return s.Position }
func (s *Block) Accept(v Visitor) error { return v.VisitBlock(s) }

// If is `if ( expression ) statement [else statement]`.
type If struct {
	Cond     Expr
	Then     Stmt
	Else     Stmt
	Position lexer.Position
}

func (s *If) Pos() lexer.Position { return s.Position }
func (s *If) Accept(v Visitor) error { return v.VisitIf(s) }

// While is `while ( expression ) statement`.
type While struct {
	Cond     Expr
	Body     Stmt
	Position lexer.Position
}

func (s *While) Pos() lexer.Position { return s.Position }
func (s *While) Accept(v Visitor) error { return v.VisitWhile(s) }

// For is `for ( [init]; [cond]; [post] ) statement`. Init is nil when
// omitted; Cond and Post likewise.
type For struct {
	Init     Stmt
	Cond     Expr
	Post     Expr
	Body     Stmt
	Position lexer.Position
}

func (s *For) Pos() lexer.Position { return s.Position }
func (s *For) Accept(v Visitor) error { return v.VisitFor(s) }

// Return is `return [expression];`, recorded verbatim with no return-type
// compatibility check against the enclosing function.
type Return struct {
	Value    Expr
	Position lexer.Position
}

func (s *Return) Pos() lexer.Position { return s.Position }
func (s *Return) Accept(v Visitor) error { return v.VisitReturn(s) }

// PrintStmt is `println ( id );`.
type PrintStmt struct {
	Name     string
	Position lexer.Position
}

func (s *PrintStmt) Pos() lexer.Position { return s.Position }
func (s *PrintStmt) Accept(v Visitor) error { return v.VisitPrintStmt(s) }

// ExprStmt wraps a bare expression used as a statement (e.g. `x = 5;`,
// `f();`).
type ExprStmt struct {
	Expression Expr
	Position   lexer.Position
}

func (s *ExprStmt) Pos() lexer.Position { return s.Position }
func (s *ExprStmt) Accept(v Visitor) error { return v.VisitExprStmt(s) }
