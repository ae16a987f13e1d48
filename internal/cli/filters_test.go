package cli

import (
	"flag"
	"io"
	"math"
	"testing"

	"qedit/internal/dataset"
)

func parseFilterFlags(t *testing.T, args ...string) (*filterFlags, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var flags filterFlags
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &flags, fs
}

// TestFilterFlagsRepeatable verifies --level and --difficulty collect
// every occurrence.
func TestFilterFlagsRepeatable(t *testing.T) {
	flags, fs := parseFilterFlags(t, "--level", "Algebra", "--level", "Geometry", "--difficulty", "1", "--difficulty", "3")
	filter := flags.filter(fs)
	if len(filter.Levels) != 2 || filter.Levels[1] != "Geometry" {
		t.Fatalf("unexpected levels: %v", filter.Levels)
	}
	if len(filter.Difficulties) != 2 || filter.Difficulties[1] != 3 {
		t.Fatalf("unexpected difficulties: %v", filter.Difficulties)
	}
	if filter.ScoreRange {
		t.Fatalf("score range should be off")
	}
}

// TestFilterFlagsScoreRange verifies both bounds activate the range.
func TestFilterFlagsScoreRange(t *testing.T) {
	flags, fs := parseFilterFlags(t, "--score-min", "2.5", "--score-max", "7")
	filter := flags.filter(fs)
	if !filter.ScoreRange || filter.ScoreMin != 2.5 || filter.ScoreMax != 7 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
}

// TestFilterFlagsScoreMinOnly verifies a lone minimum leaves the upper
// bound open.
func TestFilterFlagsScoreMinOnly(t *testing.T) {
	flags, fs := parseFilterFlags(t, "--score-min", "5")
	filter := flags.filter(fs)
	if !filter.ScoreRange || filter.ScoreMin != 5 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
	if filter.ScoreMax != math.MaxFloat64 {
		t.Fatalf("expected open upper bound, got %g", filter.ScoreMax)
	}
}

// TestFilterFlagsOrder verifies sort order parsing.
func TestFilterFlagsOrder(t *testing.T) {
	cases := map[string]dataset.Order{
		"none": dataset.OrderNone,
		"asc":  dataset.OrderScoreAsc,
		"DESC": dataset.OrderScoreDesc,
	}
	for value, want := range cases {
		flags, _ := parseFilterFlags(t, "--sort", value)
		order, err := flags.order()
		if err != nil {
			t.Fatalf("%s: %v", value, err)
		}
		if order != want {
			t.Fatalf("%s: expected %v, got %v", value, want, order)
		}
	}
	flags, _ := parseFilterFlags(t, "--sort", "upward")
	if _, err := flags.order(); err == nil {
		t.Fatalf("expected error for invalid order")
	}
}

// TestIntListRejectsGarbage verifies difficulty parsing errors,
// including values with trailing text after the number.
func TestIntListRejectsGarbage(t *testing.T) {
	for _, value := range []string{"hard", "3x", "1.5", ""} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var flags filterFlags
		flags.register(fs)
		if err := fs.Parse([]string{"--difficulty", value}); err == nil {
			t.Fatalf("expected parse error for difficulty %q", value)
		}
	}
}
