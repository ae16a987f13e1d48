package dataset

import (
	"sort"
	"strings"

	"qedit/internal/question"
	"qedit/internal/record"
)

// Order selects how a view is sorted.
type Order int

const (
	OrderNone Order = iota
	OrderScoreAsc
	OrderScoreDesc
)

// String returns a short label for the order.
func (order Order) String() string {
	switch order {
	case OrderScoreAsc:
		return "score asc"
	case OrderScoreDesc:
		return "score desc"
	default:
		return "none"
	}
}

// Filter narrows a view. Zero-value fields are inactive. Items whose
// score is blank or unparseable always pass the score range, so
// unscored questions stay visible while scoring them.
type Filter struct {
	Levels       []string
	Difficulties []int
	ScoreMin     float64
	ScoreMax     float64
	ScoreRange   bool
}

// Active reports whether any filter dimension is set.
func (filter Filter) Active() bool {
	return len(filter.Levels) > 0 || len(filter.Difficulties) > 0 || filter.ScoreRange
}

// Match reports whether an item passes the filter.
func (filter Filter) Match(item *Item) bool {
	if len(filter.Levels) > 0 {
		if !containsFold(filter.Levels, item.Question.Level()) {
			return false
		}
	}
	if len(filter.Difficulties) > 0 {
		difficulty, ok := rawDifficulty(item)
		if !ok || !containsInt(filter.Difficulties, difficulty) {
			return false
		}
	}
	if filter.ScoreRange {
		score, ok := item.Question.Score()
		if ok && (score < filter.ScoreMin || score > filter.ScoreMax) {
			return false
		}
	}
	return true
}

// View returns the items passing the filter, in the given order.
// Ordering is stable and items without a numeric score sort last.
func (ds *Dataset) View(filter Filter, order Order) []*Item {
	var view []*Item
	for _, item := range ds.items {
		if filter.Match(item) {
			view = append(view, item)
		}
	}
	if order == OrderNone {
		return view
	}
	sort.SliceStable(view, func(i, j int) bool {
		left, leftOK := view[i].Question.Score()
		right, rightOK := view[j].Question.Score()
		if leftOK != rightOK {
			return leftOK
		}
		if !leftOK {
			return false
		}
		if order == OrderScoreDesc {
			return left > right
		}
		return left < right
	})
	return view
}

// rawDifficulty parses the difficulty field without the display
// fallback: an item with no parseable difficulty never matches an
// active difficulty filter.
func rawDifficulty(item *Item) (int, bool) {
	value, ok := item.Question.Record().Get(question.FieldDifficulty)
	if !ok || record.IsBlank(value) {
		return 0, false
	}
	parsed, ok := record.AsNumber(value)
	if !ok {
		return 0, false
	}
	return int(parsed), true
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}

func containsInt(values []int, target int) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
