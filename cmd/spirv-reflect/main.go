package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gpukit/spirv-reflect/reflection"
	"github.com/gpukit/spirv-reflect/spv"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose decode logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: spirv-reflect [-v] <file.spv>...")
		fmt.Fprintln(os.Stderr, "       spirv-reflect -i <file.spv>  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		spv.SetLogger(logger)
		reflection.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	for _, file := range flag.Args() {
		if err := describe(file, styled); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func describe(file string, styled bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	words, err := spv.Words(data)
	if err != nil {
		return err
	}
	module, err := spv.Decode(words)
	if err != nil {
		return err
	}
	info, err := reflection.Interface(module)
	if err != nil {
		return err
	}

	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	fmt.Printf("Information for %s (SPIR-V %d.%d):\n\n",
		render(headerStyle, file), module.VersionMajor(), module.VersionMinor())

	for _, set := range info.DescriptorSets {
		for _, d := range set.Descriptors {
			fmt.Printf("layout(set = %d, binding = %d) %s %s : %s\n",
				set.Set, d.Index,
				render(keywordStyle, "uniform"),
				render(nameStyle, d.Name),
				glslType(d.Type))
		}
	}

	for _, ep := range info.EntryPoints {
		fmt.Printf("\n%s entry point %s(...):\n",
			ep.Stage, render(nameStyle, ep.Name))
		for _, in := range ep.Inputs {
			fmt.Printf("  layout(location = %d) %s %s : %s\n",
				in.Index, render(keywordStyle, "in"), render(nameStyle, in.Name), glslType(in.Type))
		}
		for _, out := range ep.Outputs {
			fmt.Printf("  layout(location = %d) %s %s : %s\n",
				out.Index, render(keywordStyle, "out"), render(nameStyle, out.Name), glslType(out.Type))
		}
	}
	fmt.Println()
	return nil
}
