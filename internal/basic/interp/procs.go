package interp

import (
	"strings"

	"retrobasic/internal/basic/ast"
	"retrobasic/internal/basic/token"
)

// procDef is one SUB or FUNCTION declaration's runtime shape: its
// parameter names (in declared order) and the statement-index range of
// its body, exclusive of the SUB/FUNCTION and END SUB/END FUNCTION
// lines themselves.
type procDef struct {
	name       string
	params     []string
	bodyStart  int
	bodyEnd    int
	isFunction bool
}

// scanProcedures walks the program once, recording every SUB and
// FUNCTION declaration so CALLs and function-call expressions can jump
// straight to a body without re-scanning, and so the main dispatch loop
// can skip over a declaration it encounters by falling through
// sequentially (SUB/FUNCTION bodies only run when invoked).
func (ip *Interpreter) scanProcedures() {
	stmts := ip.program.Statements
	for i := 0; i < len(stmts); i++ {
		toks := stmts[i].Tokens
		switch kw(toks) {
		case "SUB":
			name, params := parseProcHeader(toks[1:])
			end := findProcEnd(stmts, i, "SUB")
			def := &procDef{name: name, params: params, bodyStart: i + 1, bodyEnd: end}
			ip.subs[normalizeName(name)] = def
		case "FUNCTION":
			name, params := parseProcHeader(toks[1:])
			end := findProcEnd(stmts, i, "FUNCTION")
			def := &procDef{name: name, params: params, bodyStart: i + 1, bodyEnd: end, isFunction: true}
			ip.functions[normalizeName(name)] = def
		}
	}
}

// parseProcHeader reads "Name ( Param1, Param2 )" tokens (the SUB or
// FUNCTION keyword already consumed) into a name and parameter list.
func parseProcHeader(toks []token.Token) (name string, params []string) {
	if len(toks) == 0 {
		return "", nil
	}
	name = toks[0].Text
	rest := toks[1:]
	for _, t := range rest {
		if t.Kind == token.Punctuation {
			continue
		}
		params = append(params, t.Text)
	}
	return name, params
}

func findProcEnd(stmts []ast.Statement, from int, kind string) int {
	for i := from + 1; i < len(stmts); i++ {
		toks := stmts[i].Tokens
		if kw(toks) == "END" && strings.EqualFold(kw2(toks), kind) {
			return i
		}
	}
	return len(stmts)
}
