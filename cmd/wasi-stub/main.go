package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasi-stub/stub"
)

func main() {
	var (
		output      = flag.String("o", "", "Output path (default: \"<input> - stubbed.wasm\")")
		list        = flag.Bool("list", false, "List stub candidates without writing output")
		target      = flag.String("target", stub.DefaultTargetModule, "Import namespace to stub")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wasi-stub [flags] <file.wasm>")
		fmt.Fprintln(os.Stderr, "       wasi-stub <file.wasm> -list")
		fmt.Fprintln(os.Stderr, "       wasi-stub <file.wasm> -i  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(path, *target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(path, *output, *target, *list, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, outputPath, target string, listOnly, verbose bool) error {
	ctx := context.Background()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck // stderr sync failure at exit is harmless
	}

	result, err := stub.Transform(ctx, data, stub.Config{
		TargetModule: target,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	for _, c := range result.Stubbed {
		fmt.Printf("found %s::%s: stubbing...\n", c.Module, c.Name)
	}
	if len(result.Stubbed) == 0 {
		fmt.Printf("no %s imports found\n", target)
	}

	if listOnly {
		fmt.Println("NOTE: no output produced because the '-list' option was specified")
		return nil
	}

	if outputPath == "" {
		outputPath = deriveOutputPath(path)
	}
	if err := writeOutput(path, outputPath, result.Output); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", outputPath, len(result.Output))
	return nil
}
