package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/xrpl-wasm/xrpl-wasm-go/hostsim"
	"github.com/xrpl-wasm/xrpl-wasm-go/runner"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to contract wasm file")
		fixtureFile = flag.String("fixture", "", "Path to ledger fixture JSON")
		trace       = flag.Bool("trace", false, "Log host calls while the contract runs")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *wasmFile == "" || *fixtureFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: escrow-run -wasm <contract.wasm> -fixture <ledger.json> [-trace]")
		fmt.Fprintln(os.Stderr, "       escrow-run -wasm <contract.wasm> -fixture <ledger.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*wasmFile, *fixtureFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*wasmFile, *fixtureFile, *trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, fixtureFile string, trace bool) error {
	ctx := context.Background()

	wasmBytes, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read contract: %w", err)
	}

	fix, err := hostsim.Load(fixtureFile)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if trace {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
	}

	env := hostsim.New(fix, hostsim.WithLogger(logger))
	r, err := runner.New(ctx, env, runner.WithLogger(logger))
	if err != nil {
		return err
	}
	defer r.Close(ctx)

	verdict, err := r.Execute(ctx, wasmBytes)
	if err != nil {
		return err
	}

	report(verdict, env)
	return nil
}

var (
	approvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	rejectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func report(verdict int32, env *hostsim.Env) {
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	render := func(s lipgloss.Style, text string) string {
		if !colored {
			return text
		}
		return s.Render(text)
	}

	if traces := env.Traces(); len(traces) > 0 {
		fmt.Println(render(dimStyle, "--- trace ---"))
		for _, t := range traces {
			fmt.Println(formatTrace(t))
		}
		fmt.Println()
	}

	if data := env.UpdatedData(); len(data) > 0 {
		fmt.Printf("Contract data: %s\n", hex.EncodeToString(data))
	}

	if verdict == 1 {
		fmt.Printf("Verdict: %s (1)\n", render(approvedStyle, "APPROVED"))
	} else {
		fmt.Printf("Verdict: %s (%d)\n", render(rejectedStyle, "REJECTED"), verdict)
	}
}

func formatTrace(t hostsim.TraceEntry) string {
	switch {
	case t.HasNum:
		return fmt.Sprintf("  %s %d", t.Message, t.Number)
	case len(t.Data) > 0:
		if printable(t.Data) {
			return fmt.Sprintf("  %s %s", t.Message, string(t.Data))
		}
		return fmt.Sprintf("  %s %s", t.Message, hex.EncodeToString(t.Data))
	default:
		return "  " + t.Message
	}
}

func printable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
