package token

import "strings"

// SplitStatements splits a tokenized line into one or more statements
// on top-level ':' tokens (string contents never reach this pass,
// since Tokenize already collapsed them to String tokens). A line
// whose first token is the keyword IF is returned intact: THEN-actions
// may use ':' to separate their own sub-statements, and the validator
// distinguishes single-line IF from block IF by inspecting that intact
// token list directly.
func SplitStatements(line []Token) [][]Token {
	if len(line) == 0 {
		return nil
	}
	if strings.EqualFold(line[0].Text, "IF") {
		return [][]Token{line}
	}

	var out [][]Token
	var cur []Token
	for _, tok := range line {
		if tok.Kind == Punctuation && tok.Text == ":" {
			out = append(out, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	out = append(out, cur)
	return out
}
