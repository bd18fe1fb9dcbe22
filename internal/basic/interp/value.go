package interp

import "fmt"

// Value is a BASIC runtime value: either an integer or a string, never
// both — BASIC's retro-integer math (spec.md §4.7) means there is no
// floating-point Value kind at all, only ints and strings.
type Value struct {
	IsString bool
	Num      int
	Str      string
}

// IntValue returns an integer Value.
func IntValue(n int) Value { return Value{Num: n} }

// StrValue returns a string Value.
func StrValue(s string) Value { return Value{IsString: true, Str: s} }

// True and False are BASIC's canonical boolean integers: -1 and 0.
var (
	True  = IntValue(-1)
	False = IntValue(0)
)

// BoolValue converts a Go bool to True/False.
func BoolValue(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy reports whether v is true under BASIC's "nonzero is true"
// convention; a string is truthy if non-empty.
func (v Value) Truthy() bool {
	if v.IsString {
		return v.Str != ""
	}
	return v.Num != 0
}

func (v Value) String() string {
	if v.IsString {
		return v.Str
	}
	return fmt.Sprintf("%d", v.Num)
}

// zeroForSigil returns the zero value a variable named with the given
// trailing sigil defaults to before first assignment (spec.md §4.7:
// "Integer variables undefined until assigned return 0; string
// variables return \"\"").
func zeroForSigil(name string) Value {
	if len(name) > 0 && name[len(name)-1] == '$' {
		return StrValue("")
	}
	return IntValue(0)
}
