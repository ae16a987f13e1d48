package cli

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"qedit/internal/dataset"
)

// stringList collects a repeatable string flag.
type stringList []string

func (list *stringList) String() string {
	return strings.Join(*list, ",")
}

func (list *stringList) Set(value string) error {
	*list = append(*list, value)
	return nil
}

// intList collects a repeatable integer flag.
type intList []int

func (list *intList) String() string {
	parts := make([]string, 0, len(*list))
	for _, value := range *list {
		parts = append(parts, fmt.Sprintf("%d", value))
	}
	return strings.Join(parts, ",")
}

func (list *intList) Set(value string) error {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid difficulty %q", value)
	}
	*list = append(*list, parsed)
	return nil
}

// filterFlags holds the shared filter/sort options of the
// non-interactive commands.
type filterFlags struct {
	levels       stringList
	difficulties intList
	scoreMin     float64
	scoreMax     float64
	sortOrder    string
}

func (flags *filterFlags) register(fs *flag.FlagSet) {
	fs.Var(&flags.levels, "level", "Only include questions with this level title (repeatable)")
	fs.Var(&flags.difficulties, "difficulty", "Only include questions with this difficulty (repeatable)")
	fs.Float64Var(&flags.scoreMin, "score-min", 0, "Lower score bound (with --score-max)")
	fs.Float64Var(&flags.scoreMax, "score-max", 0, "Upper score bound (with --score-min)")
	fs.StringVar(&flags.sortOrder, "sort", "none", "Sort order: none, asc, or desc (by score)")
}

func (flags *filterFlags) filter(fs *flag.FlagSet) dataset.Filter {
	filter := dataset.Filter{
		Levels:       flags.levels,
		Difficulties: flags.difficulties,
	}
	scoreMinSet, scoreMaxSet := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "score-min":
			scoreMinSet = true
		case "score-max":
			scoreMaxSet = true
		}
	})
	if scoreMinSet || scoreMaxSet {
		filter.ScoreRange = true
		filter.ScoreMin = flags.scoreMin
		filter.ScoreMax = flags.scoreMax
		if !scoreMaxSet {
			// Open upper bound when only a minimum is given.
			filter.ScoreMax = math.MaxFloat64
		}
	}
	return filter
}

func (flags *filterFlags) order() (dataset.Order, error) {
	switch strings.ToLower(strings.TrimSpace(flags.sortOrder)) {
	case "", "none":
		return dataset.OrderNone, nil
	case "asc":
		return dataset.OrderScoreAsc, nil
	case "desc":
		return dataset.OrderScoreDesc, nil
	default:
		return dataset.OrderNone, fmt.Errorf("invalid sort order %q (expected none|asc|desc)", flags.sortOrder)
	}
}
