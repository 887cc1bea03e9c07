// Package symtab implements the symbol table: a chained-hash store per
// lexical scope plus a scope stack giving lexical-scope shadowing. It is the
// foundation the semantic analyzer builds declaration checking, reference
// resolution, and function-signature validation on top of.
//
// KEY DESIGN CHOICES:
// - One bucketed hash map per scope, not one flat map for the whole program,
//   because a scope's entries must be destroyed wholesale on exit_scope; a
//   per-scope structure makes that O(size of scope) rather than a sweep over
//   every live name.
// - Buckets are singly-linked chains that preserve insertion order, which
//   keeps scope-dump output deterministic across runs (important for the
//   diagnostic log being test-comparable).
package symtab

import "fmt"

// NodeKind is the syntactic role a record plays in the AST, used by the
// analyzer to decide which checks apply.
type NodeKind int

const (
	NodeVariable NodeKind = iota
	NodeArray
	NodeFunction
	NodeExpression
	NodeFactor
	NodeType
	NodeProgram
)

func (k NodeKind) String() string {
	switch k {
	case NodeVariable:
		return "variable"
	case NodeArray:
		return "array"
	case NodeFunction:
		return "function"
	case NodeExpression:
		return "expression"
	case NodeFactor:
		return "factor"
	case NodeType:
		return "type"
	case NodeProgram:
		return "program"
	default:
		return "unknown"
	}
}

// DataType is the analyzer's static type universe: int, float, void, or
// empty/unknown. TypeUnknown is the zero value; after a failed lookup the
// analyzer propagates TypeInt as the placeholder, not TypeUnknown.
type DataType string

const (
	TypeInt     DataType = "int"
	TypeFloat   DataType = "float"
	TypeVoid    DataType = "void"
	TypeUnknown DataType = ""
)

// Parameter is one (type, formal-name) pair in a function's parameter list.
// The formal name may be empty for a prototype-only declaration.
type Parameter struct {
	Type DataType
	Name string
}

// Record describes one declared name. It is immutable after population: once
// Insert has placed it in a scope, no field is mutated again.
//
// INVARIANTS:
//   - NodeKind == function implies ReturnType is set and Parameters is
//     non-nil (possibly empty).
//   - NodeKind == array implies ArraySize >= 0. Unlike a plain variable, an
//     array's DataType may be void: the declaration check only rejects void
//     for a non-array variable, so `void a[5];` is accepted.
//   - NodeKind == variable (non-array) implies DataType is int or float;
//     void variables are rejected before a Record is ever built.
type Record struct {
	Name       string
	TokenKind  string
	NodeKind   NodeKind
	DataType   DataType
	ReturnType DataType
	Parameters []Parameter
	ArraySize  int
	Line       int
}

// String renders a record the way PrintCurrentScope / PrintAllScopes
// format a bucket-chain entry. Exact whitespace is not part of the external
// contract, so this favors readability over a fixed layout.
func (r *Record) String() string {
	s := fmt.Sprintf("%s: %s %s", r.Name, r.dataTypeLabel(), r.NodeKind)
	if r.NodeKind == NodeArray {
		s += fmt.Sprintf(" [size=%d]", r.ArraySize)
	}
	if r.NodeKind == NodeFunction {
		s += fmt.Sprintf(" [params=(%s)]", r.paramsLabel())
	}
	return s
}

func (r *Record) dataTypeLabel() DataType {
	if r.NodeKind == NodeFunction {
		return r.ReturnType
	}
	return r.DataType
}

func (r *Record) paramsLabel() string {
	out := ""
	for i, p := range r.Parameters {
		if i > 0 {
			out += ", "
		}
		out += string(p.Type)
		if p.Name != "" {
			out += " " + p.Name
		}
	}
	return out
}
