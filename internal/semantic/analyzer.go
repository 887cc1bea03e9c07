// Package semantic implements semantic analysis for the compiler.
//
// SEMANTIC ANALYSIS:
// After parsing, we have a syntactically valid parse tree; semantic
// analysis walks it, maintains a symbol table, enforces the language's
// static rules, and records diagnostics. This package produces the two
// deliverables a run is expected to leave behind: a fully populated symbol
// table, and an ordered list of diagnostics keyed by source line.
//
// DESIGN PHILOSOPHY:
// - Collect every diagnostic, never stop at the first one.
// - Use the visitor pattern to traverse the AST.
// - Thread one Context value through every check rather than rely on
//   process-wide state.
//
// PASSES:
// Analysis is one pass, post-order: every Accept call visits children
// before computing its own attribute, so an enclosing construct's checks
// always fire after its children's, matching a bottom-up parser's
// reduction order without actually driving a parser here.
package semantic

import (
	"fmt"

	"github.com/hassan/semalyzer/internal/ast"
	"github.com/hassan/semalyzer/internal/context"
	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/symtab"
)

// Analyzer performs semantic analysis on an AST, implementing ast.Visitor.
//
// DESIGN CHOICE: visitor pattern over the tagged-variant AST, because it
// separates the AST's structure from this package's analysis rules —
// a pretty-printer could implement the same interface without touching
// node types.
type Analyzer struct {
	ctx *context.Context
}

// New creates an Analyzer with a freshly seeded symbol table (global scope
// only) that records diagnostics and scope dumps into sink. bucketCount is
// forwarded to every scope the table creates; 0 selects the table's own
// default.
func New(sink *diag.Sink, bucketCount int) *Analyzer {
	table := symtab.New(sink, bucketCount)
	return &Analyzer{ctx: context.New(table, sink)}
}

// Context exposes the analyzer's threaded state, so a caller can read the
// symbol table and diagnostic sink after Analyze returns.
func (a *Analyzer) Context() *context.Context {
	return a.ctx
}

// Analyze walks every top-level unit of the program in source order.
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, unit := range prog.Units {
		a.ctx.LineNumber = unit.Pos().Line
		if err := unit.Accept(a); err != nil {
			// Only a malformed AST shape (one that could never come out of
			// a valid parse) reaches here; it is an analyzer-internal bug,
			// not a diagnostic about the program under analysis.
			panic(fmt.Errorf("semantic: unreachable unit shape: %w", err))
		}
	}
}

// VisitVarDecl implements declaration analysis: each entry of a shared-type
// declaration list is classified and checked independently.
func (a *Analyzer) VisitVarDecl(s *ast.VarDecl) error {
	for _, n := range s.Names {
		a.ctx.LineNumber = n.Position.Line

		kind := "variable"
		nodeKind := symtab.NodeVariable
		if n.IsArray {
			kind = "array"
			nodeKind = symtab.NodeArray
		}

		if a.ctx.Table.LookupCurrentScope(n.Name) != nil {
			a.ctx.Error(fmt.Sprintf("Multiple declaration of %s %s", kind, n.Name))
			continue
		}
		if s.TypeName == string(symtab.TypeVoid) && !n.IsArray {
			a.ctx.Error("variable type can not be void")
			continue
		}

		a.ctx.Table.Insert(&symtab.Record{
			Name:      n.Name,
			NodeKind:  nodeKind,
			DataType:  symtab.DataType(s.TypeName),
			ArraySize: n.ArraySize,
			Line:      n.Position.Line,
		})
	}
	return nil
}

// VisitFuncDecl implements function definition analysis: the header is
// checked and inserted before the body is walked in a fresh scope seeded
// with the parameters.
func (a *Analyzer) VisitFuncDecl(s *ast.FuncDecl) error {
	a.ctx.LineNumber = s.Position.Line
	a.ctx.CurrentFuncName = s.Name
	a.ctx.PendingFormals = nil

	for _, p := range s.Params {
		if p.Name != "" && a.ctx.HasDuplicateFormal(p.Name) {
			a.ctx.LineNumber = p.Position.Line
			a.ctx.Error(fmt.Sprintf("Multiple declaration of parameter %s in a parameter of %s", p.Name, s.Name))
			continue
		}
		a.ctx.PendingFormals = append(a.ctx.PendingFormals, symtab.Parameter{
			Type: symtab.DataType(p.TypeName),
			Name: p.Name,
		})
	}

	a.ctx.LineNumber = s.Position.Line
	if a.ctx.Table.LookupCurrentScope(s.Name) != nil {
		a.ctx.Error(fmt.Sprintf("Multiple declaration of function %s", s.Name))
	} else {
		a.ctx.Table.Insert(&symtab.Record{
			Name:       s.Name,
			NodeKind:   symtab.NodeFunction,
			ReturnType: symtab.DataType(s.ReturnType),
			Parameters: append([]symtab.Parameter{}, a.ctx.PendingFormals...),
			Line:       s.Position.Line,
		})
	}

	a.ctx.Table.EnterScope()
	for _, p := range s.Params {
		if p.Name == "" {
			continue
		}
		a.ctx.Table.Insert(&symtab.Record{
			Name:     p.Name,
			NodeKind: symtab.NodeVariable,
			DataType: symtab.DataType(p.TypeName),
			Line:     p.Position.Line,
		})
	}
	if s.Body != nil {
		for _, st := range s.Body.Stmts {
			if err := st.Accept(a); err != nil {
				a.ctx.Table.ExitScope()
				return err
			}
		}
	}
	a.ctx.Table.ExitScope()

	a.ctx.ClearFormals()
	a.ctx.CurrentFuncName = ""
	return nil
}

// VisitBlock enters a fresh scope for a nested compound statement (one not
// already accounted for by VisitFuncDecl's own scope entry).
func (a *Analyzer) VisitBlock(s *ast.Block) error {
	a.ctx.Table.EnterScope()
	for _, st := range s.Stmts {
		if err := st.Accept(a); err != nil {
			a.ctx.Table.ExitScope()
			return err
		}
	}
	a.ctx.Table.ExitScope()
	return nil
}

// VisitIf checks the condition is not a void function call.
func (a *Analyzer) VisitIf(s *ast.If) error {
	a.checkNotVoidCondition(s.Cond)
	if err := s.Then.Accept(a); err != nil {
		return err
	}
	if s.Else != nil {
		return s.Else.Accept(a)
	}
	return nil
}

// VisitWhile checks the condition is not a void function call.
func (a *Analyzer) VisitWhile(s *ast.While) error {
	a.checkNotVoidCondition(s.Cond)
	return s.Body.Accept(a)
}

// VisitFor checks both the condition and the increment expression for a
// void function call.
func (a *Analyzer) VisitFor(s *ast.For) error {
	if s.Init != nil {
		if err := s.Init.Accept(a); err != nil {
			return err
		}
	}
	if s.Cond != nil {
		a.checkNotVoidCondition(s.Cond)
	}
	if s.Post != nil {
		a.checkNotVoidCondition(s.Post)
	}
	return s.Body.Accept(a)
}

func (a *Analyzer) checkNotVoidCondition(e ast.Expr) {
	a.ctx.LineNumber = e.Pos().Line
	if attr := e.Accept(a); attr.Type == symtab.TypeVoid {
		a.ctx.Error("A void function cannot be called as a part of an expression")
	}
}

// VisitReturn records the returned expression's type without checking it
// against the enclosing function's declared return type — no return-type
// compatibility enforcement is performed.
func (a *Analyzer) VisitReturn(s *ast.Return) error {
	if s.Value != nil {
		a.ctx.LineNumber = s.Position.Line
		s.Value.Accept(a)
	}
	return nil
}

// VisitPrintStmt implements `println(id)`: the only check is that id is
// declared.
func (a *Analyzer) VisitPrintStmt(s *ast.PrintStmt) error {
	a.ctx.LineNumber = s.Position.Line
	if a.ctx.Table.Lookup(s.Name) == nil {
		a.ctx.Error("Undeclared variable")
	}
	return nil
}

// VisitExprStmt walks a bare expression used as a statement.
func (a *Analyzer) VisitExprStmt(s *ast.ExprStmt) error {
	a.ctx.LineNumber = s.Position.Line
	s.Expression.Accept(a)
	return nil
}
