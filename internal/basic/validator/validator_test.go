package validator

import (
	"testing"

	"retrobasic/internal/basic/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ast.Parse(src)
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	return prog
}

func TestValidateForNextMatchingVar(t *testing.T) {
	prog := mustParse(t, "FOR I = 1 TO 10\nPRINT I\nNEXT I\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateForNextMismatchedVar(t *testing.T) {
	prog := mustParse(t, "FOR I = 1 TO 10\nNEXT J\n")
	if err := Validate(prog); err == nil {
		t.Fatal("expected error for mismatched NEXT variable")
	}
}

func TestValidateNextWithoutFor(t *testing.T) {
	prog := mustParse(t, "NEXT I\n")
	if err := Validate(prog); err == nil {
		t.Fatal("expected error for NEXT without FOR")
	}
}

func TestValidateWhileWend(t *testing.T) {
	prog := mustParse(t, "WHILE X < 10\nX = X + 1\nWEND\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateDoLoop(t *testing.T) {
	prog := mustParse(t, "DO WHILE X < 10\nX = X + 1\nLOOP\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateSelectCaseEndSelect(t *testing.T) {
	prog := mustParse(t, "SELECT CASE X\nCASE 1\nPRINT \"one\"\nEND SELECT\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateSingleLineIfDoesNotOpenBlock(t *testing.T) {
	prog := mustParse(t, "IF X = 1 THEN PRINT \"hi\"\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateBlockIfRequiresEndIf(t *testing.T) {
	prog := mustParse(t, "IF X = 1 THEN\nPRINT \"hi\"\nEND IF\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateUnclosedBlockIf(t *testing.T) {
	prog := mustParse(t, "IF X = 1 THEN\nPRINT \"hi\"\n")
	if err := Validate(prog); err == nil {
		t.Fatal("expected error for unclosed block IF")
	}
}

func TestValidateGotoUnknownLabel(t *testing.T) {
	prog := mustParse(t, "GOTO Nowhere\n")
	if err := Validate(prog); err == nil {
		t.Fatal("expected error for GOTO to unknown label")
	}
}

func TestValidateGotoNumericTargetDeferred(t *testing.T) {
	prog := mustParse(t, "GOTO 500\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v, want nil (numeric GOTO deferred to runtime)", err)
	}
}

func TestValidateGotoKnownLabel(t *testing.T) {
	prog := mustParse(t, "GOTO Loop\nLoop: PRINT \"here\"\n")
	if err := Validate(prog); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateCollectsMultipleDiagnostics(t *testing.T) {
	prog := mustParse(t, "NEXT I\nWEND\n")
	err := Validate(prog)
	if err == nil {
		t.Fatal("expected error")
	}
	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if len(verr.Diagnostics) != 2 {
		t.Errorf("got %d diagnostics, want 2: %v", len(verr.Diagnostics), verr.Diagnostics)
	}
}
