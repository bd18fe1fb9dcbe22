package interp

import (
	"math"
	"strconv"
	"strings"

	"retrobasic/internal/input"
)

// reservedNames lists every built-in function/pseudo-variable name
// spec.md §4.7 forbids using as an lvalue, sigil or not.
var reservedNames = map[string]bool{
	"LEN": true, "SQR": true, "SIN": true, "COS": true, "ATN": true,
	"RND": true, "VAL": true, "LEFT$": true, "RIGHT$": true, "MID$": true,
	"STR$": true, "CHR$": true, "ASC": true, "INKEY$": true, "TIMER": true,
	"TIME$": true, "DATE$": true, "POINT": true, "PC": true, "PX": true,
	"MOUSEX": true, "MOUSEY": true, "MOUSE_LEFT": true, "MOUSE_RIGHT": true,
	"MOUSE_MIDDLE": true, "KEY": true, "SHIFT": true, "CTRL": true, "ALT": true,
	"LTRIM$": true, "RTRIM$": true, "TRIM$": true,
}

// IsReserved reports whether name (with or without a trailing sigil)
// names a built-in; used to reject it as an assignment target.
func IsReserved(name string) bool {
	upper := strings.ToUpper(name)
	if reservedNames[upper] {
		return true
	}
	return reservedNames[strings.ToUpper(stripSigil(name))]
}

func stripSigil(name string) string {
	if name == "" {
		return name
	}
	switch name[len(name)-1] {
	case '$', '%', '&', '!', '#':
		return name[:len(name)-1]
	}
	return name
}

// callBuiltin evaluates a built-in function/pseudo-variable call. args
// have already been evaluated left to right. ok is false if name does
// not name a built-in, letting the caller fall through to array access
// or a user-defined FUNCTION.
func (ip *Interpreter) callBuiltin(name string, args []Value) (Value, bool, error) {
	upper := strings.ToUpper(name)
	switch upper {
	case "LEN":
		return IntValue(len(arg(args, 0).Str)), true, nil
	case "SQR":
		n := arg(args, 0).Num
		if n < 0 {
			n = 0
		}
		return IntValue(int(math.Sqrt(float64(n)))), true, nil
	case "SIN":
		return IntValue(int(math.Sin(arg(args, 0).degrees()) * 100)), true, nil
	case "COS":
		return IntValue(int(math.Cos(arg(args, 0).degrees()) * 100)), true, nil
	case "ATN":
		return IntValue(int(math.Atan(float64(arg(args, 0).Num)) * 180 / math.Pi * 100)), true, nil
	case "RND":
		n := arg(args, 0).Num
		if n <= 0 {
			n = 1
		}
		return IntValue(1 + ip.rng.Intn(n)), true, nil
	case "VAL":
		return IntValue(parseLeadingInt(arg(args, 0).Str)), true, nil
	case "LEFT$":
		s, n := arg(args, 0).Str, arg(args, 1).Num
		return StrValue(leftN(s, n)), true, nil
	case "RIGHT$":
		s, n := arg(args, 0).Str, arg(args, 1).Num
		return StrValue(rightN(s, n)), true, nil
	case "MID$":
		s := arg(args, 0).Str
		start := arg(args, 1).Num
		length := -1
		if len(args) > 2 {
			length = arg(args, 2).Num
		}
		return StrValue(midN(s, start, length)), true, nil
	case "STR$":
		return StrValue(arg(args, 0).String()), true, nil
	case "CHR$":
		return StrValue(string(rune(byte(arg(args, 0).Num)))), true, nil
	case "ASC":
		s := arg(args, 0).Str
		if s == "" {
			return IntValue(0), true, nil
		}
		return IntValue(int(s[0])), true, nil
	case "LTRIM$":
		return StrValue(strings.TrimLeft(arg(args, 0).Str, " ")), true, nil
	case "RTRIM$":
		return StrValue(strings.TrimRight(arg(args, 0).Str, " ")), true, nil
	case "TRIM$":
		return StrValue(strings.TrimSpace(arg(args, 0).Str)), true, nil
	case "INKEY$":
		return StrValue(ip.api.Inkey()), true, nil
	case "TIMER":
		return IntValue(int(ip.api.Timer())), true, nil
	case "TIME$":
		return StrValue(ip.api.TimeString()), true, nil
	case "DATE$":
		return StrValue(ip.api.DateString()), true, nil
	case "POINT":
		return IntValue(ip.api.Point(arg(args, 0).Num, arg(args, 1).Num)), true, nil
	case "PC", "PX":
		// Cursor-position pseudo-variables: current column (PC) and
		// current row/text-line (PX), as no teacher/spec source names
		// these more precisely than "cursor position" builtins.
		col, row := ip.api.Emu.CursorPosition()
		if upper == "PC" {
			return IntValue(col), true, nil
		}
		return IntValue(row), true, nil
	case "MOUSEX":
		return IntValue(ip.api.MouseX()), true, nil
	case "MOUSEY":
		return IntValue(ip.api.MouseY()), true, nil
	case "MOUSE_LEFT":
		return BoolValue(ip.api.MouseLeft()), true, nil
	case "MOUSE_RIGHT":
		return BoolValue(ip.api.MouseRight()), true, nil
	case "MOUSE_MIDDLE":
		return BoolValue(ip.api.MouseMiddle()), true, nil
	case "KEY":
		return BoolValue(ip.api.KeyDown(keyCodeFromValue(arg(args, 0)))), true, nil
	}
	return Value{}, false, nil
}

func keyCodeFromValue(v Value) input.KeyCode { return input.KeyCode(v.Num) }

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Value{}
}

func (v Value) degrees() float64 { return float64(v.Num) * math.Pi / 180 }

func leftN(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

func rightN(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

func midN(s string, start, length int) string {
	if start < 1 {
		start = 1
	}
	if start > len(s) {
		return ""
	}
	begin := start - 1
	if length < 0 {
		return s[begin:]
	}
	end := begin + length
	if end > len(s) {
		end = len(s)
	}
	return s[begin:end]
}

func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
