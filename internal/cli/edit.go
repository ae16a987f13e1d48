package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"qedit/internal/config"
	"qedit/internal/dataset"
	"qedit/internal/ui/editor"
)

var runEditor = editor.Run

func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .qedit/config.yml)")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := flags.Bool("no-color", false, "Disable color output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(stderr, "expected exactly one question file, got: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *noColor {
			cfg.UI.NoColor = true
		}

		ds, err := dataset.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		mode := *uiMode
		if mode == "auto" && cfg.UI.Mode != "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if !decision.useLive {
			printListing(stdout, ds)
			return ExitOK
		}

		if err := runEditor(ds, editor.Options{Config: cfg, NoColor: cfg.UI.NoColor}); err != nil {
			fmt.Fprintf(stderr, "Editor failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// printListing writes a read-only table of the dataset for non-TTY
// output.
func printListing(stdout io.Writer, ds *dataset.Dataset) {
	fmt.Fprintf(stdout, "%s: %d question(s)\n", ds.Name(), ds.Len())
	for _, item := range ds.Items() {
		q := item.Question
		fmt.Fprintf(stdout, "%4d  %s\n", item.Index+1, firstLine(q.Material()))
		for _, block := range strings.Split(q.DisplayChoices(), "\n\n") {
			if block == "" {
				continue
			}
			fmt.Fprintf(stdout, "      %s\n", firstLine(block))
		}
	}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
