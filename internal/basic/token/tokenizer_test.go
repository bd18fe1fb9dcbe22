package token

import "testing"

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeSimpleAssignment(t *testing.T) {
	toks, err := Tokenize(`X = X + 1`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"X", "=", "X", "+", "1"}
	if got := texts(toks); !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeStringLiteralWithEmbeddedQuote(t *testing.T) {
	toks, err := Tokenize(`PRINT "say ""hi"""`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[1].Kind != String || toks[1].Text != `say "hi"` {
		t.Errorf("got %+v, want String say \"hi\"", toks[1])
	}
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	if _, err := Tokenize(`PRINT "oops`); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestTokenizeCompositeOperators(t *testing.T) {
	toks, err := Tokenize(`IF A<>B AND C<=D AND E>=F THEN`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"IF", "A", "<>", "B", "AND", "C", "<=", "D", "AND", "E", ">=", "F", "THEN"}
	if got := texts(toks); !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeIdentifierSigils(t *testing.T) {
	toks, err := Tokenize(`LET A$ = B% + C&`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"LET", "A$", "=", "B%", "+", "C&"}
	if got := texts(toks); !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeApostropheComment(t *testing.T) {
	toks, err := Tokenize(`X = 1 ' set x to one`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	last := toks[len(toks)-1]
	if last.Kind != Comment {
		t.Fatalf("last token kind = %v, want Comment", last.Kind)
	}
}

func TestTokenizeREMComment(t *testing.T) {
	toks, err := Tokenize(`rem this whole line is a comment`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Comment {
		t.Fatalf("got %v, want single Comment token", toks)
	}
}

func TestTokenizeCasePreserving(t *testing.T) {
	toks, err := Tokenize(`Print Hello`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Text != "Print" || toks[1].Text != "Hello" {
		t.Errorf("case was not preserved: %v", texts(toks))
	}
}

func TestSplitStatementsOnColon(t *testing.T) {
	toks, err := Tokenize(`X = 1 : Y = 2 : Z = 3`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	stmts := SplitStatements(toks)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}
	if texts(stmts[1])[0] != "Y" {
		t.Errorf("second statement starts with %v, want Y", texts(stmts[1]))
	}
}

func TestSplitStatementsLeavesIfLineIntact(t *testing.T) {
	toks, err := Tokenize(`IF X = 1 THEN Y = 2 : Z = 3`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	stmts := SplitStatements(toks)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1 (IF line kept intact)", len(stmts))
	}
}

func TestSplitStatementsEmptyLine(t *testing.T) {
	if stmts := SplitStatements(nil); stmts != nil {
		t.Errorf("got %v, want nil", stmts)
	}
}
