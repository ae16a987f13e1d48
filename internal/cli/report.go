package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"qedit/internal/dataset"
	"qedit/internal/report"
)

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		outPath := flags.String("out", "", "Output path (default: derived from the input name)")
		var filters filterFlags
		filters.register(flags)
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

		order, err := filters.order()
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		ds, err := dataset.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		items := ds.View(filters.filter(flags), order)

		path := *outPath
		if path == "" {
			path = filepath.Join(filepath.Dir(flags.Arg(0)), strings.TrimSuffix(ds.Name(), ".json")+"_report.html")
		}
		if err := report.Write(path, ds.Name(), items); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report with %d question(s) written to %s\n", len(items), path)
		return ExitOK
	}
}
