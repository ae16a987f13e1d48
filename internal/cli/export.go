package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"qedit/internal/dataset"
	"qedit/internal/export"
)

func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		powerpath := flags.Bool("powerpath", false, "Export in the PowerPath schema instead of the original schema")
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

		if *powerpath {
			path := *outPath
			if path == "" {
				path = filepath.Join(filepath.Dir(flags.Arg(0)), export.PowerPathName(ds.Name()))
			}
			if err := export.WritePowerPath(path, items); err != nil {
				fmt.Fprintf(stderr, "Export failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "%d question(s) exported to %s\n", len(items), path)
			return ExitOK
		}

		path := *outPath
		if path == "" {
			path = filepath.Join(filepath.Dir(flags.Arg(0)), export.UpdatedName(ds.Name()))
		}
		if err := export.WriteUpdatedItems(path, items); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "%d question(s) exported to %s\n", len(items), path)
		return ExitOK
	}
}
