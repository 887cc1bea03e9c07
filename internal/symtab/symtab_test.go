package symtab

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name   string
		record *Record
		want   string
	}{
		{
			name:   "variable",
			record: &Record{Name: "x", NodeKind: NodeVariable, DataType: TypeInt},
			want:   "x: int variable",
		},
		{
			name:   "array carries size",
			record: &Record{Name: "a", NodeKind: NodeArray, DataType: TypeFloat, ArraySize: 10},
			want:   "a: float array [size=10]",
		},
		{
			name: "function carries params and return type",
			record: &Record{
				Name: "add", NodeKind: NodeFunction, ReturnType: TypeInt,
				Parameters: []Parameter{{Type: TypeInt, Name: "a"}, {Type: TypeFloat, Name: "b"}},
			},
			want: "add: int function [params=(int a, float b)]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.String(); got != tt.want {
				t.Errorf("Record.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScope_InsertAndLookupLocal(t *testing.T) {
	s := newScope(0, 4)

	if !s.insert(&Record{Name: "x", DataType: TypeInt}) {
		t.Fatal("first insert of x should succeed")
	}
	if s.insert(&Record{Name: "x", DataType: TypeFloat}) {
		t.Error("second insert of x in the same scope should fail")
	}
	if s.lookupLocal("x") == nil {
		t.Error("expected to find x")
	}
	if s.lookupLocal("y") != nil {
		t.Error("expected not to find y")
	}
}

func TestScope_RecordsPreservesInsertionOrderWithinBucket(t *testing.T) {
	s := newScope(0, 1) // single bucket forces every name into the same chain
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		if !s.insert(&Record{Name: n, DataType: TypeInt}) {
			t.Fatalf("insert(%q) failed", n)
		}
	}

	got := s.records()
	if len(got) != len(names) {
		t.Fatalf("got %d records, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Errorf("record %d = %q, want %q (insertion order not preserved)", i, got[i].Name, n)
		}
	}
}

func TestTable_EnterExitScopeDiscipline(t *testing.T) {
	tab := New(&bytes.Buffer{}, 0)
	if tab.Depth() != 1 {
		t.Fatalf("expected depth 1 for a fresh table, got %d", tab.Depth())
	}

	tab.EnterScope()
	if tab.Depth() != 2 {
		t.Fatalf("expected depth 2 after EnterScope, got %d", tab.Depth())
	}

	tab.ExitScope()
	if tab.Depth() != 1 {
		t.Fatalf("expected depth 1 after ExitScope, got %d", tab.Depth())
	}
}

func TestTable_ExitScopePanicsOnGlobal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected ExitScope on the global scope alone to panic")
		}
	}()
	tab := New(&bytes.Buffer{}, 0)
	tab.ExitScope()
}

func TestTable_Shadowing(t *testing.T) {
	tab := New(&bytes.Buffer{}, 0)
	tab.Insert(&Record{Name: "x", DataType: TypeInt})

	tab.EnterScope()
	tab.Insert(&Record{Name: "x", DataType: TypeFloat})

	if got := tab.Lookup("x"); got.DataType != TypeFloat {
		t.Errorf("expected shadowed inner x (float), got %s", got.DataType)
	}

	tab.ExitScope()
	if got := tab.Lookup("x"); got.DataType != TypeInt {
		t.Errorf("expected outer x (int) after ExitScope, got %s", got.DataType)
	}
}

func TestTable_LookupCurrentScopeOnlyInspectsTop(t *testing.T) {
	tab := New(&bytes.Buffer{}, 0)
	tab.Insert(&Record{Name: "x", DataType: TypeInt})
	tab.EnterScope()

	if tab.LookupCurrentScope("x") != nil {
		t.Error("LookupCurrentScope should not see the outer scope's x")
	}
	if tab.Lookup("x") == nil {
		t.Error("Lookup should still find the outer scope's x")
	}
}

func TestTable_InsertDuplicateInSameScopeFails(t *testing.T) {
	tab := New(&bytes.Buffer{}, 0)
	if !tab.Insert(&Record{Name: "x", DataType: TypeInt}) {
		t.Fatal("first insert should succeed")
	}
	if tab.Insert(&Record{Name: "x", DataType: TypeFloat}) {
		t.Error("duplicate insert in the same scope should fail")
	}
}

func TestTable_PrintCurrentScopeWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	tab := New(&buf, 0)
	tab.Insert(&Record{Name: "x", DataType: TypeInt, NodeKind: NodeVariable})

	tab.PrintCurrentScope()

	if !strings.Contains(buf.String(), "x: int variable") {
		t.Errorf("expected scope dump to mention x, got %q", buf.String())
	}
}
