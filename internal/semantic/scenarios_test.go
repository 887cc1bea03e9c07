package semantic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror six concrete end-to-end scenarios exactly: literal input,
// expected key diagnostic line(s).

func TestScenario_S1_MultipleDeclarationOfVariable(t *testing.T) {
	_, sink := analyze(t, "int x; int x;")
	require.Equal(t, []string{"At line no: 1 Multiple declaration of variable x"}, diagnosticTexts(sink))
	require.Equal(t, 1, sink.ErrorCount())
}

func TestScenario_S2_ArrayIndexNotInteger(t *testing.T) {
	_, sink := analyze(t, "int main(){ int a[10]; a[2.5] = 3; }")
	require.Contains(t, diagnosticTexts(sink), "At line no: 1 array index is not of integer type : a")
}

func TestScenario_S3_OperationOnVoidType(t *testing.T) {
	_, sink := analyze(t, "void f(){} int main(){ int x; x = f(); }")
	require.Contains(t, diagnosticTexts(sink), "At line no: 1 operation on void type")
}

func TestScenario_S4_CallArityThenArgumentTypeMismatch(t *testing.T) {
	_, sink := analyze(t, "int add(int a, float b){ return a+3; } int main(){ add(1); add(1,2); }")
	texts := diagnosticTexts(sink)
	require.Contains(t, texts, "At line no: 1 Inconsistencies in number of arguments in function call: add")
	require.Contains(t, texts, "At line no: 1 argument 2 type mismatch in function call: add")

	arityIdx, mismatchIdx := -1, -1
	for i, txt := range texts {
		if txt == "At line no: 1 Inconsistencies in number of arguments in function call: add" {
			arityIdx = i
		}
		if txt == "At line no: 1 argument 2 type mismatch in function call: add" {
			mismatchIdx = i
		}
	}
	require.True(t, arityIdx < mismatchIdx, "arity diagnostic must be emitted before the argument-mismatch diagnostic")
}

func TestScenario_S5_FloatToIntNarrowingWarning(t *testing.T) {
	_, sink := analyze(t, "int main(){ int x; float y; y=1.5; x=y; }")
	require.Contains(t, diagnosticTexts(sink), "At line no: 1 Warning: Assignment of float value into variable of integer type")
}

func TestScenario_S6_DivisionThenModulusByNonInteger(t *testing.T) {
	_, sink := analyze(t, "int main(){ int x; x = 5/0; x = 5%2.5; }")
	texts := diagnosticTexts(sink)
	require.Contains(t, texts, "At line no: 1 Division by 0")
	require.Contains(t, texts, "At line no: 1 Modulus operator on non integer type")

	divIdx, modIdx := -1, -1
	for i, txt := range texts {
		if txt == "At line no: 1 Division by 0" {
			divIdx = i
		}
		if txt == "At line no: 1 Modulus operator on non integer type" {
			modIdx = i
		}
	}
	require.True(t, divIdx < modIdx, "division-by-zero diagnostic must precede the modulus diagnostic")
}
