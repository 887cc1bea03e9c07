package semantic

import (
	"fmt"
	"strings"

	"github.com/hassan/semalyzer/internal/ast"
	"github.com/hassan/semalyzer/internal/context"
	"github.com/hassan/semalyzer/internal/symtab"
)

// VisitLiteral classifies a literal: an integer literal is int, a
// floating-point literal is float. The literal's own text is kept as the
// node's rendered name, which is what the textual literal-zero check
// (division/modulus by 0) inspects on the right-hand operand of a MULOP.
func (a *Analyzer) VisitLiteral(e *ast.Literal) ast.Attr {
	t := symtab.TypeInt
	if e.IsFloat {
		t = symtab.TypeFloat
	}
	return ast.Attr{Name: e.Text, Kind: symtab.NodeFactor, Type: t}
}

// VisitIdentifier resolves a bare identifier reference.
func (a *Analyzer) VisitIdentifier(e *ast.Identifier) ast.Attr {
	rec := a.ctx.Table.Lookup(e.Name)
	if rec == nil {
		a.ctx.Error(fmt.Sprintf("Undeclared variable: %s", e.Name))
		return ast.Attr{Name: e.Name, Kind: symtab.NodeVariable, Type: symtab.TypeInt}
	}
	if rec.NodeKind == symtab.NodeArray {
		a.ctx.Error(fmt.Sprintf("variable is of array type : %s", e.Name))
	}
	return ast.Attr{Name: e.Name, Kind: rec.NodeKind, Type: rec.DataType}
}

// VisitIndexExpr resolves an indexed array reference.
func (a *Analyzer) VisitIndexExpr(e *ast.IndexExpr) ast.Attr {
	idx := e.Index.Accept(a)

	rec := a.ctx.Table.Lookup(e.Name)
	elemType := symtab.TypeInt
	if rec == nil || rec.NodeKind != symtab.NodeArray {
		a.ctx.Error(fmt.Sprintf("variable is not of array type : %s", e.Name))
	} else {
		elemType = rec.DataType
	}
	if idx.Type != symtab.TypeInt {
		a.ctx.Error(fmt.Sprintf("array index is not of integer type : %s", e.Name))
	}
	return ast.Attr{Name: e.Name + "[" + idx.Name + "]", Kind: symtab.NodeArray, Type: elemType}
}

// VisitCallExpr performs function call analysis. Argument attributes are
// appended to the context's pending-arguments buffer as they are evaluated,
// and the buffer is cleared once the call itself has been checked. The
// arity and type checks read this call's own local list of argument
// attributes, not PendingArguments, so a nested call (`f(g(x))`) clearing
// the buffer does not affect the enclosing call's checks.
func (a *Analyzer) VisitCallExpr(e *ast.CallExpr) ast.Attr {
	argAttrs := make([]ast.Attr, 0, len(e.Args))
	names := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		attr := arg.Accept(a)
		argAttrs = append(argAttrs, attr)
		names = append(names, attr.Name)
		a.ctx.PendingArguments = append(a.ctx.PendingArguments, context.PendingArg{Text: attr.Name, Type: attr.Type})
	}

	rec := a.ctx.Table.Lookup(e.Name)
	resultType := symtab.TypeInt
	switch {
	case rec == nil:
		a.ctx.Error(fmt.Sprintf("Undeclared function: %s", e.Name))
	case rec.NodeKind != symtab.NodeFunction:
		a.ctx.Error(fmt.Sprintf("A function call cannot be made with non-function type identifier: %s", e.Name))
	default:
		resultType = rec.ReturnType
		if len(argAttrs) != len(rec.Parameters) {
			a.ctx.Error(fmt.Sprintf("Inconsistencies in number of arguments in function call: %s", e.Name))
		} else {
			for i, p := range rec.Parameters {
				if argAttrs[i].Type != p.Type {
					a.ctx.Error(fmt.Sprintf("argument %d type mismatch in function call: %s", i+1, e.Name))
				}
			}
		}
	}

	a.ctx.ClearArguments()
	return ast.Attr{Name: e.Name + "(" + strings.Join(names, ", ") + ")", Kind: symtab.NodeFactor, Type: resultType}
}

// VisitBinaryExpr implements the ADDOP/MULOP/RELOP/LOGICOP type rules,
// including the modulus non-integer check and the textual literal-zero
// check for division and modulus.
func (a *Analyzer) VisitBinaryExpr(e *ast.BinaryExpr) ast.Attr {
	left := e.Left.Accept(a)
	right := e.Right.Accept(a)
	name := left.Name + " " + e.Lexeme + " " + right.Name

	var resultType symtab.DataType
	switch {
	case e.OpCategory == "RELOP" || e.OpCategory == "LOGICOP":
		resultType = symtab.TypeInt

	case e.OpCategory == "MULOP" && e.Lexeme == "%":
		resultType = symtab.TypeInt
		if left.Type != symtab.TypeInt || right.Type != symtab.TypeInt {
			a.ctx.Error("Modulus operator on non integer type")
		}
		if right.Name == "0" {
			a.ctx.Error("Modulus by 0")
		}

	default: // ADDOP, or MULOP's "*"/"/"
		switch {
		case left.Type == symtab.TypeFloat || right.Type == symtab.TypeFloat:
			resultType = symtab.TypeFloat
		case left.Type == symtab.TypeInt && right.Type == symtab.TypeInt:
			resultType = symtab.TypeInt
		default:
			resultType = left.Type
		}
		if e.OpCategory == "MULOP" && e.Lexeme == "/" && right.Name == "0" {
			a.ctx.Error("Division by 0")
		}
	}

	return ast.Attr{Name: name, Kind: symtab.NodeExpression, Type: resultType}
}

// VisitUnaryExpr: prefix +/-/! inherits the operand's type; no narrowing is
// introduced here.
func (a *Analyzer) VisitUnaryExpr(e *ast.UnaryExpr) ast.Attr {
	operand := e.Operand.Accept(a)
	return ast.Attr{Name: e.Lexeme + operand.Name, Kind: symtab.NodeExpression, Type: operand.Type}
}

// VisitPostfixExpr: post-increment/post-decrement inherits the operand's
// type.
func (a *Analyzer) VisitPostfixExpr(e *ast.PostfixExpr) ast.Attr {
	operand := e.Operand.Accept(a)
	return ast.Attr{Name: operand.Name + e.Lexeme, Kind: symtab.NodeExpression, Type: operand.Type}
}

// VisitAssignExpr implements the assignment rule: a void right-hand side
// is rejected outright; otherwise a type mismatch is either the permitted
// float-to-int narrowing (reported as a warning) or a hard type-mismatch
// error.
func (a *Analyzer) VisitAssignExpr(e *ast.AssignExpr) ast.Attr {
	left := e.Target.Accept(a)
	right := e.Value.Accept(a)

	switch {
	case right.Type == symtab.TypeVoid:
		a.ctx.Error("operation on void type")
	case left.Type != right.Type:
		if left.Type == symtab.TypeInt && right.Type == symtab.TypeFloat {
			a.ctx.Warning("Warning: Assignment of float value into variable of integer type")
		} else {
			a.ctx.Error(fmt.Sprintf("Type mismatch in assignment: %s and %s", left.Type, right.Type))
		}
	}

	return ast.Attr{Name: left.Name + " = " + right.Name, Kind: symtab.NodeExpression, Type: left.Type}
}

// VisitParenExpr: a parenthesized expression inherits the inner
// expression's type.
func (a *Analyzer) VisitParenExpr(e *ast.ParenExpr) ast.Attr {
	inner := e.Inner.Accept(a)
	return ast.Attr{Name: "(" + inner.Name + ")", Kind: inner.Kind, Type: inner.Type}
}
