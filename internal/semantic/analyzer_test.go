package semantic

import (
	"testing"
)

func TestAnalyzer_VoidVariableRejected(t *testing.T) {
	_, sink := analyze(t, "void x;")
	texts := diagnosticTexts(sink)
	if len(texts) != 1 || texts[0] != "At line no: 1 variable type can not be void" {
		t.Errorf("diagnostics = %v, want exactly the void-variable error", texts)
	}
}

func TestAnalyzer_VoidArrayIsAllowed(t *testing.T) {
	// The void-rejection applies only to the plain variable form, not the
	// array form.
	_, sink := analyze(t, "void a[5];")
	if sink.ErrorCount() != 0 {
		t.Errorf("expected no diagnostics for a void array, got %v", diagnosticTexts(sink))
	}
}

func TestAnalyzer_DuplicateParameter(t *testing.T) {
	_, sink := analyze(t, "int add(int a, int a){ return a; }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 Multiple declaration of parameter a in a parameter of add"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_MultipleDeclarationOfFunction(t *testing.T) {
	_, sink := analyze(t, "int f(){ return 1; } int f(){ return 2; }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 Multiple declaration of function f"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_ArrayUsedWithoutIndex(t *testing.T) {
	_, sink := analyze(t, "int main(){ int a[5]; int b; b = a; }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 variable is of array type : a"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_IndexingNonArray(t *testing.T) {
	_, sink := analyze(t, "int main(){ int b; int c; c = b[0]; }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 variable is not of array type : b"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_UndeclaredFunction(t *testing.T) {
	_, sink := analyze(t, "int main(){ int x; x = missing(1); }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 Undeclared function: missing"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_CallOfNonFunction(t *testing.T) {
	_, sink := analyze(t, "int main(){ int x; int y; y = x(1); }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 A function call cannot be made with non-function type identifier: x"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_PrintUndeclaredVariable(t *testing.T) {
	_, sink := analyze(t, "int main(){ println(missing); }")
	texts := diagnosticTexts(sink)
	if len(texts) != 1 || texts[0] != "At line no: 1 Undeclared variable" {
		t.Errorf("diagnostics = %v, want exactly the printf undeclared-variable error", texts)
	}
}

func TestAnalyzer_VoidConditionInIfIsRejected(t *testing.T) {
	_, sink := analyze(t, "void f(){} int main(){ if (f()) { } }")
	texts := diagnosticTexts(sink)
	want := "At line no: 1 A void function cannot be called as a part of an expression"
	found := false
	for _, txt := range texts {
		if txt == want {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want to contain %q", texts, want)
	}
}

func TestAnalyzer_TypePropagationFloatDominates(t *testing.T) {
	a, sink := analyze(t, "int main(){ int x; float y; float z; z = x + y; }")
	if sink.ErrorCount() != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnosticTexts(sink))
	}
	_ = a
}

func TestAnalyzer_ShadowingAcrossFunctionScope(t *testing.T) {
	// A parameter named the same as a global variable shadows it inside the
	// function body without triggering a duplicate-declaration diagnostic,
	// because the two live in different scopes.
	_, sink := analyze(t, "int x; int f(int x){ return x; }")
	if sink.ErrorCount() != 0 {
		t.Errorf("expected no diagnostics for cross-scope shadowing, got %v", diagnosticTexts(sink))
	}
}

func TestAnalyzer_ErrorCountMonotonic(t *testing.T) {
	_, sink := analyze(t, "int x; int x; int y; int y; int z;")
	if got := sink.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
}
