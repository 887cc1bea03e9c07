// Package parser implements a thin recursive-descent parser with
// precedence climbing for expressions. It exists only so the analyzer can
// be driven end-to-end from a source file; the grammar itself carries no
// semantic rule — every check lives in internal/semantic.
//
// DESIGN CHOICE: recursive descent for statements/declarations plus
// precedence climbing for expressions, rather than a generated
// parser-table, because the grammar is small and fixed and a hand-written
// parser reads like the grammar it implements.
package parser

import (
	"fmt"
	"strconv"

	"github.com/hassan/semalyzer/internal/ast"
	"github.com/hassan/semalyzer/internal/diag"
	"github.com/hassan/semalyzer/internal/lexer"
	"github.com/hassan/semalyzer/internal/symtab"
)

// Parser holds one token of lookahead over a Lexer and writes a reduction
// trace to sink as it recognizes productions.
type Parser struct {
	lex  *lexer.Lexer
	sink *diag.Sink
	cur  lexer.Token
}

// New creates a Parser over lex, writing its reduction trace to sink. It
// eagerly loads the first token.
func New(lex *lexer.Lexer, sink *diag.Sink) (*Parser, error) {
	p := &Parser{lex: lex, sink: sink}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProgram recognizes `program -> unit*` and returns the root AST node.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{Position: p.cur.Position}
	for p.cur.Kind != lexer.TokenEOF {
		unit, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		prog.Units = append(prog.Units, unit)
	}
	return prog, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", p.cur.Position.String(), fmt.Sprintf(format, args...))
}

func (p *Parser) expect(kind lexer.TokenKind, what string) error {
	if p.cur.Kind != kind {
		return p.errorf("expected %s, got %s", what, p.cur.Kind)
	}
	return p.advance()
}

func (p *Parser) trace(line int, production, rhs string) {
	p.sink.Trace(fmt.Sprintf("At line no: %d %s : %s", line, production, rhs))
}

func typeName(k lexer.TokenKind) string {
	switch k {
	case lexer.TokenInt:
		return string(symtab.TypeInt)
	case lexer.TokenFloat:
		return string(symtab.TypeFloat)
	case lexer.TokenVoid:
		return string(symtab.TypeVoid)
	default:
		return ""
	}
}

// parseUnit recognizes `unit -> var_decl | func_def`. Both begin with a
// type_specifier and an identifier; the token after the identifier (`(`
// vs anything else) disambiguates which production applies.
func (p *Parser) parseUnit() (ast.Stmt, error) {
	pos := p.cur.Position
	if !p.cur.IsTypeSpecifier() {
		return nil, p.errorf("expected type specifier, got %s", p.cur.Kind)
	}
	typeTok := p.cur
	p.trace(pos.Line, "type_specifier", typeTok.Kind.String())
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Kind != lexer.TokenID {
		return nil, p.errorf("expected identifier, got %s", p.cur.Kind)
	}
	nameTok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Kind == lexer.TokenLParen {
		return p.parseFuncDeclRest(typeTok, nameTok, pos)
	}

	names, err := p.parseDeclNameList(nameTok)
	if err != nil {
		return nil, err
	}
	p.trace(pos.Line, "declaration_list", nameTok.Lexeme)
	return &ast.VarDecl{TypeName: typeName(typeTok.Kind), Names: names, Position: pos}, nil
}

// parseDeclNameList recognizes the comma-separated tail of a
// declaration_list, given that firstName has already been consumed
// (`id` or `id [ const_int ]`, repeated). It consumes the
// terminating semicolon.
func (p *Parser) parseDeclNameList(firstName lexer.Token) ([]ast.DeclName, error) {
	var names []ast.DeclName
	nameTok := firstName

	for {
		entry := ast.DeclName{Name: nameTok.Lexeme, Position: nameTok.Position}
		if p.cur.Kind == lexer.TokenLThird {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Kind != lexer.TokenConstInt {
				return nil, p.errorf("expected array size, got %s", p.cur.Kind)
			}
			size, convErr := strconv.Atoi(p.cur.Lexeme)
			if convErr != nil {
				return nil, p.errorf("invalid array size %q", p.cur.Lexeme)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expect(lexer.TokenRThird, "]"); err != nil {
				return nil, err
			}
			entry.IsArray = true
			entry.ArraySize = size
		}
		names = append(names, entry)

		if p.cur.Kind != lexer.TokenComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.TokenID {
			return nil, p.errorf("expected identifier, got %s", p.cur.Kind)
		}
		nameTok = p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
		return nil, err
	}
	return names, nil
}

// parseVarDeclStmt recognizes a local declaration inside a compound
// statement (or a for-init); unlike parseUnit it needs no lookahead past
// the first identifier, since a statement-position declaration is
// distinguished from other statements purely by the leading type_specifier.
func (p *Parser) parseVarDeclStmt() (*ast.VarDecl, error) {
	pos := p.cur.Position
	typeTok := p.cur
	p.trace(pos.Line, "type_specifier", typeTok.Kind.String())
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.TokenID {
		return nil, p.errorf("expected identifier, got %s", p.cur.Kind)
	}
	firstName := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	names, err := p.parseDeclNameList(firstName)
	if err != nil {
		return nil, err
	}
	p.trace(pos.Line, "declaration_list", firstName.Lexeme)
	return &ast.VarDecl{TypeName: typeName(typeTok.Kind), Names: names, Position: pos}, nil
}

// parseFuncDeclRest recognizes `( parameter_list ) compound_statement`
// given the return type and name have already been consumed. p.cur is the
// opening `(`.
func (p *Parser) parseFuncDeclRest(typeTok, nameTok lexer.Token, pos lexer.Position) (*ast.FuncDecl, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var params []ast.Param
	if p.cur.Kind != lexer.TokenRParen {
		for {
			if !p.cur.IsTypeSpecifier() {
				return nil, p.errorf("expected parameter type, got %s", p.cur.Kind)
			}
			ptypeTok := p.cur
			ppos := ptypeTok.Position
			if err := p.advance(); err != nil {
				return nil, err
			}
			pname := ""
			if p.cur.Kind == lexer.TokenID {
				pname = p.cur.Lexeme
				ppos = p.cur.Position
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
			params = append(params, ast.Param{TypeName: typeName(ptypeTok.Kind), Name: pname, Position: ppos})

			if p.cur.Kind != lexer.TokenComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(lexer.TokenRParen, ")"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "func_header", nameTok.Lexeme)

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		ReturnType: typeName(typeTok.Kind),
		Name:       nameTok.Lexeme,
		Params:     params,
		Body:       body,
		Position:   pos,
	}, nil
}

// parseBlock recognizes `compound_statement -> { statement* }`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.cur.Position
	if err := p.expect(lexer.TokenLCurl, "{"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur.Kind != lexer.TokenRCurl {
		if p.cur.Kind == lexer.TokenEOF {
			return nil, p.errorf("unexpected EOF, expected }")
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return &ast.Block{Stmts: stmts, Position: pos}, nil
}

// parseStmt recognizes one of the statement productions, a local
// declaration, or a bare expression statement.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.cur.Kind {
	case lexer.TokenLCurl:
		return p.parseBlock()
	case lexer.TokenIf:
		return p.parseIf()
	case lexer.TokenWhile:
		return p.parseWhile()
	case lexer.TokenFor:
		return p.parseFor()
	case lexer.TokenReturn:
		return p.parseReturn()
	case lexer.TokenPrintln:
		return p.parsePrintln()
	default:
		if p.cur.IsTypeSpecifier() {
			return p.parseVarDeclStmt()
		}
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // 'if'
		return nil, err
	}
	if err := p.expect(lexer.TokenLParen, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRParen, ")"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "if_statement", "IF LPAREN expression RPAREN statement")

	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	var els ast.Stmt
	if p.cur.Kind == lexer.TokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Position: pos}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // 'while'
		return nil, err
	}
	if err := p.expect(lexer.TokenLParen, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRParen, ")"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "while_statement", "WHILE LPAREN expression RPAREN statement")

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Position: pos}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // 'for'
		return nil, err
	}
	if err := p.expect(lexer.TokenLParen, "("); err != nil {
		return nil, err
	}

	var init ast.Stmt
	switch {
	case p.cur.Kind == lexer.TokenSemicolon:
		if err := p.advance(); err != nil {
			return nil, err
		}
	case p.cur.IsTypeSpecifier():
		decl, err := p.parseVarDeclStmt()
		if err != nil {
			return nil, err
		}
		init = decl
	default:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		init = &ast.ExprStmt{Expression: e, Position: e.Pos()}
		if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
			return nil, err
		}
	}

	var cond ast.Expr
	if p.cur.Kind != lexer.TokenSemicolon {
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
		return nil, err
	}

	var post ast.Expr
	if p.cur.Kind != lexer.TokenRParen {
		pe, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		post = pe
	}
	if err := p.expect(lexer.TokenRParen, ")"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "for_statement", "FOR LPAREN ... RPAREN statement")

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Cond: cond, Post: post, Body: body, Position: pos}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // 'return'
		return nil, err
	}
	var val ast.Expr
	if p.cur.Kind != lexer.TokenSemicolon {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		val = e
	}
	if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "return_statement", "RETURN expression SEMICOLON")
	return &ast.Return{Value: val, Position: pos}, nil
}

func (p *Parser) parsePrintln() (ast.Stmt, error) {
	pos := p.cur.Position
	if err := p.advance(); err != nil { // 'println'
		return nil, err
	}
	if err := p.expect(lexer.TokenLParen, "("); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.TokenID {
		return nil, p.errorf("expected identifier, got %s", p.cur.Kind)
	}
	name := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRParen, ")"); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
		return nil, err
	}
	p.trace(pos.Line, "printf_statement", "PRINTLN LPAREN ID RPAREN SEMICOLON")
	return &ast.PrintStmt{Name: name, Position: pos}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	pos := e.Pos()
	if err := p.expect(lexer.TokenSemicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: e, Position: pos}, nil
}

// parseExpr is the expression entry point: `expression -> assignment`.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.TokenAssign {
		pos := p.cur.Position
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		p.trace(pos.Line, "assignment_expression", "variable ASSIGNOP assignment_expression")
		return &ast.AssignExpr{Target: left, Value: right, Position: pos}, nil
	}
	return left, nil
}

func (p *Parser) parseLogic() (ast.Expr, error) {
	left, err := p.parseRel()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.TokenLogicOp {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRel()
		if err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "logic_expression", "logic_expression LOGICOP rel_expression")
		left = &ast.BinaryExpr{OpCategory: "LOGICOP", Lexeme: op.Lexeme, Left: left, Right: right, Position: op.Position}
	}
	return left, nil
}

func (p *Parser) parseRel() (ast.Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.TokenRelOp {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "rel_expression", "simple_expression RELOP simple_expression")
		left = &ast.BinaryExpr{OpCategory: "RELOP", Lexeme: op.Lexeme, Left: left, Right: right, Position: op.Position}
	}
	return left, nil
}

func (p *Parser) parseAdd() (ast.Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.TokenAddOp {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "simple_expression", "simple_expression ADDOP term")
		left = &ast.BinaryExpr{OpCategory: "ADDOP", Lexeme: op.Lexeme, Left: left, Right: right, Position: op.Position}
	}
	return left, nil
}

func (p *Parser) parseMul() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.TokenMulOp {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "term", "term MULOP unary_expression")
		left = &ast.BinaryExpr{OpCategory: "MULOP", Lexeme: op.Lexeme, Left: left, Right: right, Position: op.Position}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur.Kind == lexer.TokenAddOp || p.cur.Kind == lexer.TokenNot {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "unary_expression", "ADDOP unary_expression")
		return &ast.UnaryExpr{Lexeme: op.Lexeme, Operand: operand, Position: op.Position}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.TokenIncOp || p.cur.Kind == lexer.TokenDecOp {
		op := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.trace(op.Position.Line, "variable", "variable INCOP")
		e = &ast.PostfixExpr{Lexeme: op.Lexeme, Operand: e, Position: op.Position}
	}
	return e, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Kind {
	case lexer.TokenConstInt:
		lit := &ast.Literal{IsFloat: false, Text: p.cur.Lexeme, Position: p.cur.Position}
		p.trace(p.cur.Position.Line, "factor", "CONST_INT")
		return lit, p.advance()

	case lexer.TokenConstFloat:
		lit := &ast.Literal{IsFloat: true, Text: p.cur.Lexeme, Position: p.cur.Position}
		p.trace(p.cur.Position.Line, "factor", "CONST_FLOAT")
		return lit, p.advance()

	case lexer.TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenRParen, ")"); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Inner: inner, Position: inner.Pos()}, nil

	case lexer.TokenID:
		pos := p.cur.Position
		name := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case lexer.TokenLParen:
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.TokenRParen, ")"); err != nil {
				return nil, err
			}
			p.trace(pos.Line, "factor", "ID LPAREN argument_list RPAREN")
			return &ast.CallExpr{Name: name, Args: args, Position: pos}, nil

		case lexer.TokenLThird:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.TokenRThird, "]"); err != nil {
				return nil, err
			}
			p.trace(pos.Line, "variable", "ID LTHIRD expression RTHIRD")
			return &ast.IndexExpr{Name: name, Index: idx, Position: pos}, nil

		default:
			p.trace(pos.Line, "variable", "ID")
			return &ast.Identifier{Name: name, Position: pos}, nil
		}

	default:
		return nil, p.errorf("unexpected token %s in expression", p.cur.Kind)
	}
}

// parseArgList recognizes `argument_list -> [] | expression (COMMA expression)*`.
func (p *Parser) parseArgList() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.cur.Kind == lexer.TokenRParen {
		return args, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.cur.Kind != lexer.TokenComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return args, nil
}
