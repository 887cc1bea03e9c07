package ast

import (
	"fmt"
	"strings"
)

// Render reconstructs source text from a Program, independent of analysis:
// build an AST, then render it separately from the pass that writes
// diagnostics. It is not expected to be byte-identical to the original
// input — only a readable reconstruction for the trace log.
func Render(prog *Program) string {
	var sb strings.Builder
	for _, u := range prog.Units {
		renderStmt(&sb, u, 0)
	}
	return sb.String()
}

func renderStmt(sb *strings.Builder, s Stmt, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n := s.(type) {
	case *VarDecl:
		sb.WriteString(pad + n.TypeName + " " + renderNames(n.Names) + ";\n")

	case *FuncDecl:
		sb.WriteString(pad + n.ReturnType + " " + n.Name + "(" + renderParams(n.Params) + ")")
		if n.Body != nil {
			sb.WriteString(" ")
			renderStmt(sb, n.Body, indent)
		} else {
			sb.WriteString(";\n")
		}

	case *Block:
		sb.WriteString("{\n")
		for _, st := range n.Stmts {
			renderStmt(sb, st, indent+1)
		}
		sb.WriteString(pad + "}\n")

	case *If:
		sb.WriteString(pad + "if (" + RenderExpr(n.Cond) + ")\n")
		renderStmt(sb, n.Then, indent)
		if n.Else != nil {
			sb.WriteString(pad + "else\n")
			renderStmt(sb, n.Else, indent)
		}

	case *While:
		sb.WriteString(pad + "while (" + RenderExpr(n.Cond) + ")\n")
		renderStmt(sb, n.Body, indent)

	case *For:
		init, cond, post := "", "", ""
		if d, ok := n.Init.(*VarDecl); ok {
			init = d.TypeName + " " + renderNames(d.Names)
		} else if e, ok := n.Init.(*ExprStmt); ok {
			init = RenderExpr(e.Expression)
		}
		if n.Cond != nil {
			cond = RenderExpr(n.Cond)
		}
		if n.Post != nil {
			post = RenderExpr(n.Post)
		}
		sb.WriteString(fmt.Sprintf("%sfor (%s; %s; %s)\n", pad, init, cond, post))
		renderStmt(sb, n.Body, indent)

	case *Return:
		val := ""
		if n.Value != nil {
			val = RenderExpr(n.Value)
		}
		sb.WriteString(pad + "return " + val + ";\n")

	case *PrintStmt:
		sb.WriteString(pad + "println(" + n.Name + ");\n")

	case *ExprStmt:
		sb.WriteString(pad + RenderExpr(n.Expression) + ";\n")
	}
}

func renderNames(names []DeclName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n.IsArray {
			parts[i] = fmt.Sprintf("%s[%d]", n.Name, n.ArraySize)
		} else {
			parts[i] = n.Name
		}
	}
	return strings.Join(parts, ", ")
}

func renderParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Name != "" {
			parts[i] = p.TypeName + " " + p.Name
		} else {
			parts[i] = p.TypeName
		}
	}
	return strings.Join(parts, ", ")
}

// RenderExpr reconstructs source text from a single expression node.
func RenderExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return n.Text
	case *Identifier:
		return n.Name
	case *IndexExpr:
		return n.Name + "[" + RenderExpr(n.Index) + "]"
	case *CallExpr:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = RenderExpr(arg)
		}
		return n.Name + "(" + strings.Join(args, ", ") + ")"
	case *BinaryExpr:
		return RenderExpr(n.Left) + " " + n.Lexeme + " " + RenderExpr(n.Right)
	case *UnaryExpr:
		return n.Lexeme + RenderExpr(n.Operand)
	case *PostfixExpr:
		return RenderExpr(n.Operand) + n.Lexeme
	case *AssignExpr:
		return RenderExpr(n.Target) + " = " + RenderExpr(n.Value)
	case *ParenExpr:
		return "(" + RenderExpr(n.Inner) + ")"
	default:
		return ""
	}
}
