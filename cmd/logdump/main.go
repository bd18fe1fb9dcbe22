// Command logdump runs a BASIC program headlessly (no SDL window) with
// logging enabled, then dumps the captured entries for one component to a
// file — a debugging aid for inspecting interpreter/scheduler/sound
// behavior without a display attached.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"retrobasic/internal/basic/api"
	"retrobasic/internal/basic/ast"
	"retrobasic/internal/basic/interp"
	"retrobasic/internal/basic/validator"
	"retrobasic/internal/codepage"
	"retrobasic/internal/debug"
	"retrobasic/internal/input"
	"retrobasic/internal/ioemu"
	"retrobasic/internal/scheduler"
	"retrobasic/internal/sound"
)

func main() {
	sourcePath := flag.String("source", "", "Path to a BASIC source file (.bas)")
	logFile := flag.String("out", "logs.txt", "Output log file")
	componentName := flag.String("component", "", "Component to dump (IOEmu, Interp, Scheduler, Sound, Input, LineEditor, Host); empty dumps every component")
	timeoutSec := flag.Int("timeout", 10, "Stop the run after this many seconds (a program that never halts would otherwise hang the dump)")
	flag.Parse()

	if *sourcePath == "" {
		fmt.Println("Usage: logdump -source <program.bas> [-out logs.txt] [-component Interp] [-timeout 10]")
		os.Exit(1)
	}

	source, err := os.ReadFile(*sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}

	prog, err := ast.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing source: %v\n", err)
		os.Exit(1)
	}
	if err := validator.Validate(prog); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating program: %v\n", err)
		os.Exit(1)
	}

	logger := debug.NewLogger(50000)
	for _, c := range []debug.Component{
		debug.ComponentIOEmu, debug.ComponentInterp, debug.ComponentScheduler,
		debug.ComponentSound, debug.ComponentInput, debug.ComponentLineEditor, debug.ComponentHost,
	} {
		logger.SetComponentEnabled(c, true)
	}
	logger.SetMinLevel(debug.LogLevelDebug)

	queue := input.NewQueue()
	emu := ioemu.New(codepage.Builtin8x8, codepage.Builtin8x16, queue, logger)
	if err := emu.LoadScreenMode(0); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting screen mode: %v\n", err)
		os.Exit(1)
	}

	sched := scheduler.NewNative(queue, nil)
	synth := sound.NewSynth(sched, nil)
	facade := api.New(emu, sched, synth)
	ip := interp.New(prog, facade, rand.New(rand.NewSource(1)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSec)*time.Second)
	defer cancel()

	fmt.Printf("Running %s (timeout %ds)...\n", *sourcePath, *timeoutSec)
	if err := ip.Run(ctx); err != nil && err != context.DeadlineExceeded {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
	}

	entries := logger.GetEntries()
	filtered := entries
	if *componentName != "" {
		filtered = nil
		for _, e := range entries {
			if string(e.Component) == *componentName {
				filtered = append(filtered, e)
			}
		}
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	label := *componentName
	if label == "" {
		label = "all components"
	}
	fmt.Fprintf(file, "Logs from %s (%s, %d entries)\n", *sourcePath, label, len(filtered))
	fmt.Fprintf(file, "===========================================\n\n")
	for _, e := range filtered {
		fmt.Fprintf(file, "%s\n", e.Format())
	}

	fmt.Printf("Dumped %d log entries to %s\n", len(filtered), *logFile)
}
