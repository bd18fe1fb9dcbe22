// Command host is the reference SDL2 console: it loads a BASIC
// program, boots the IO Emulator and interpreter, and presents the
// framebuffer in a real window, the same role cmd/emulator's CLI
// entry point played for the teacher's CPU/PPU core.
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
	"retrobasic/internal/config"
	"retrobasic/internal/debug"
	"retrobasic/internal/host"
	"retrobasic/internal/input"
	"retrobasic/internal/ioemu"
	"retrobasic/internal/scheduler"
	"retrobasic/internal/sound"
)

func main() {
	sourcePath := flag.String("source", "", "Path to a BASIC source file (.bas)")
	configPath := flag.String("config", "", "Path to a TOML boot config file")
	scale := flag.Int("scale", 0, "Display scale (1-6, overrides config)")
	unlimited := flag.Bool("unlimited", false, "Run the interpreter at unlimited speed (speed factor x1000)")
	enableLogging := flag.Bool("log", false, "Enable logging (disabled by default)")
	flag.Parse()

	if *sourcePath == "" {
		fmt.Println("Usage: host -source <path-to-program.bas>")
		fmt.Println("  -source <path>   Path to a BASIC source file")
		fmt.Println("  -config <path>   Path to a TOML boot config file")
		fmt.Println("  -scale <1-6>     Display scale (default: from config, else 3)")
		fmt.Println("  -unlimited       Run at unlimited interpreter speed")
		fmt.Println("  -log             Enable logging (disabled by default)")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	cfg.Validate()

	source, err := os.ReadFile(*sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}

	var logger *debug.Logger
	if *enableLogging {
		logger = debug.NewLogger(10000)
		logger.SetComponentEnabled(debug.ComponentIOEmu, true)
		logger.SetComponentEnabled(debug.ComponentInterp, true)
		logger.SetComponentEnabled(debug.ComponentScheduler, true)
		logger.SetComponentEnabled(debug.ComponentSound, true)
		logger.SetComponentEnabled(debug.ComponentInput, true)
		logger.SetComponentEnabled(debug.ComponentHost, true)
		logger.SetMinLevel(cfg.ResolvedLogLevel())
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

	font8x8, font8x16, err := loadFonts(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fonts: %v\n", err)
		os.Exit(1)
	}

	queue := input.NewQueue()
	emu := ioemu.New(font8x8, font8x16, queue, logger)
	if err := emu.LoadScreenMode(cfg.ScreenMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting screen mode: %v\n", err)
		os.Exit(1)
	}
	if cfg.DoubleBuffer {
		emu.EnableDoubleBuffer()
	}

	sched := scheduler.NewNative(queue, nil)
	speedFactor := cfg.SpeedFactor
	if *unlimited {
		speedFactor = 1000
	}
	sched.SetSpeedFactor(speedFactor)

	h, err := host.New(emu, queue, cfg.Scale, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating host window: %v\n", err)
		os.Exit(1)
	}
	defer h.Close()

	synth := sound.NewSynth(sched, h)
	facade := api.New(emu, sched, synth)
	ip := interp.New(prog, facade, rand.New(rand.NewSource(time.Now().UnixNano())))

	fmt.Println("RetroBASIC Host")
	fmt.Println("===============")
	fmt.Printf("Program: %s\n", *sourcePath)
	fmt.Printf("Screen mode: %d\n", cfg.ScreenMode)
	fmt.Printf("Display scale: %dx\n", cfg.Scale)
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		if err := ip.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		}
	}()

	if err := h.Run(ctx, cancel); err != nil {
		fmt.Fprintf(os.Stderr, "Host error: %v\n", err)
		os.Exit(1)
	}
}

// loadFonts resolves the 8x8 and 8x16 code pages a screen mode renders
// text with: a configured bit-packed font file when one is given, the
// synthetic builtin table otherwise, matching §4's "console boots
// without external assets" requirement.
func loadFonts(cfg config.Config) (font8x8, font8x16 *codepage.CodePage, err error) {
	font8x8 = codepage.Builtin8x8
	font8x16 = codepage.Builtin8x16

	if cfg.FontPath8x8 != "" {
		data, readErr := os.ReadFile(cfg.FontPath8x8)
		if readErr != nil {
			return nil, nil, readErr
		}
		cp, loadErr := codepage.BitPacked.Load(data)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		font8x8 = cp
	}
	if cfg.FontPath8x16 != "" {
		data, readErr := os.ReadFile(cfg.FontPath8x16)
		if readErr != nil {
			return nil, nil, readErr
		}
		cp, loadErr := codepage.BitPacked.Load(data)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		font8x16 = cp
	}
	return font8x8, font8x16, nil
}
