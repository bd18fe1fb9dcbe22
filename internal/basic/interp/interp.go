// Package interp implements the BASIC Interpreter (spec.md §4.7): a
// statement-by-statement executor walking an ast.Program, evaluating
// expressions via EvalExpr and driving the display/input/sound side
// effects through a basic/api.Facade.
package interp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"retrobasic/internal/basic/api"
	"retrobasic/internal/basic/ast"
	"retrobasic/internal/basic/token"
	"retrobasic/internal/ioemu"
	"retrobasic/internal/lineeditor"
)

// errEndProgram is runFrom's sentinel for an executed END statement: it
// unwinds the current run to its caller without treating the stop as
// an error, matching spec.md §4.7's "END halts the program, no error".
var errEndProgram = errors.New("end")

// Interpreter holds every piece of runtime state one running BASIC
// program needs: its parsed program, variable table, control-flow
// stacks, DATA cursor, procedure table, and the Facade it drives.
type Interpreter struct {
	program *ast.Program
	api     *api.Facade
	vars    *vars
	rng     *rand.Rand

	functions map[string]*procDef
	subs      map[string]*procDef
	data      *dataStore
	editor    *lineeditor.Editor

	// imageArrays holds the pixel rectangles GET captures, keyed by the
	// BASIC array name PUT later refers to. Classic BASIC packs a GET
	// image into a numeric array the program can inspect byte-by-byte;
	// nothing in this program ever needs that raw packed form, so GET/PUT
	// round-trip an ioemu.ImageBlock directly under the array's name
	// instead of re-deriving one from Array's Value slice.
	imageArrays map[string]ioemu.ImageBlock

	// ctx is the context in scope for the statement currently
	// executing, stashed here so expression evaluation can reach it
	// when calling into a user FUNCTION — EvalExpr's signature has no
	// room for one, but a FUNCTION body must still observe the same
	// cancellation contract as any other statement.
	ctx context.Context

	frames
}

// New returns an Interpreter ready to run prog against facade. rng may
// be nil, in which case RND starts from a fixed seed until RANDOMIZE
// reseeds it — deterministic by default, matching how a freshly loaded
// retro BASIC behaves before the program seeds its own randomness.
func New(prog *ast.Program, facade *api.Facade, rng *rand.Rand) *Interpreter {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	ip := &Interpreter{
		program:   prog,
		api:       facade,
		vars:      newVars(),
		rng:       rng,
		functions: make(map[string]*procDef),
		subs:      make(map[string]*procDef),
	}
	ip.editor = lineeditor.New(facade.Emu, facade.Sched)
	ip.scanProcedures()
	ip.data = buildDataStore(prog)
	return ip
}

// Run executes the program from its first statement to completion. A
// cancelled context unwinds silently (no diagnostic printed, the error
// is returned so the host knows why execution stopped); any other
// runtime error is printed as "Error: <message>" to the overlay and Run
// then returns nil, matching spec.md §7's "errors print one line and
// terminate the program normally" contract.
func (ip *Interpreter) Run(ctx context.Context) error {
	err := ip.runFrom(ctx, 0, len(ip.program.Statements))
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	ip.api.Print(fmt.Sprintf("Error: %s\r\n", err.Error()))
	return nil
}

// runFrom executes statements [start,end) in order, following whatever
// jumps each statement's handler returns, until it falls off the end of
// the range, hits END, or errors.
func (ip *Interpreter) runFrom(ctx context.Context, start, end int) error {
	pc := start
	for pc < end {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmt := ip.program.Statements[pc]
		next, err := ip.exec(ctx, pc, stmt.Tokens)
		if err != nil {
			if errors.Is(err, errEndProgram) {
				return nil
			}
			return err
		}
		pc = next
	}
	return nil
}

// exec dispatches one statement by its leading keyword and returns the
// next pc to resume from (normally pc+1, or a jump target for control
// statements).
func (ip *Interpreter) exec(ctx context.Context, pc int, toks []token.Token) (int, error) {
	if len(toks) == 0 {
		return pc + 1, nil
	}
	if toks[0].Kind == token.Comment {
		return pc + 1, nil
	}
	ip.ctx = ctx

	keyword := kw(toks)
	if handler, ok := statementHandlers[keyword]; ok {
		return handler(ip, ctx, pc, toks)
	}

	if toks[0].Kind == token.Identifier && !IsReserved(toks[0].Text) {
		return execAssignOrCall(ip, ctx, pc, toks)
	}

	return pc + 1, newRuntimeError(ErrUnknownStatement, "unknown statement %q", toks[0].Text)
}

// callFunction invokes a user FUNCTION with already-evaluated args,
// returning the value bound to the function's own name by the time its
// body falls through to END FUNCTION — classic BASIC's "assign to the
// function name to set the return value" convention.
func (ip *Interpreter) callFunction(fn *procDef, args []Value) (Value, error) {
	ip.vars.pushLocal()
	defer ip.vars.popLocal()

	bindParams(ip.vars, fn.params, args)

	if err := ip.runFrom(ip.ctx, fn.bodyStart, fn.bodyEnd); err != nil {
		if !errors.Is(err, errEndProgram) {
			return Value{}, err
		}
	}

	return ip.vars.Get(fn.name), nil
}

// callSub invokes a user SUB with already-evaluated args, discarding any
// return value.
func (ip *Interpreter) callSub(sub *procDef, args []Value) error {
	ip.vars.pushLocal()
	defer ip.vars.popLocal()

	bindParams(ip.vars, sub.params, args)

	if err := ip.runFrom(ip.ctx, sub.bodyStart, sub.bodyEnd); err != nil {
		if !errors.Is(err, errEndProgram) {
			return err
		}
	}
	return nil
}

func bindParams(v *vars, params []string, args []Value) {
	for i, p := range params {
		if i < len(args) {
			v.Set(p, args[i])
		} else {
			v.Set(p, zeroForSigil(p))
		}
	}
}
