// Package dataset owns the mutable editing session: the pristine
// snapshot of a loaded question file plus the working copy all edits
// land in, with an explicit reset back to the original.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"qedit/internal/question"
	"qedit/internal/record"
)

// Item is one question in the working copy. Index is the question's
// position in the source document; ID identifies the item across
// filtered and sorted views.
type Item struct {
	ID       string
	Index    int
	Question question.Question
	Selected bool
}

// Dataset is the editing session for one question file.
type Dataset struct {
	path     string
	name     string
	original []*record.Record
	items    []*Item
}

// Load reads a question file and opens an editing session on it.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	records, err := record.DecodeArray(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds := FromRecords(filepath.Base(path), records)
	ds.path = path
	return ds, nil
}

// FromRecords opens an editing session on already-decoded records.
// The records become the pristine snapshot; the working copy is a
// deep copy with scores normalized to their string form.
func FromRecords(name string, records []*record.Record) *Dataset {
	ds := &Dataset{name: name, original: records}
	ds.items = buildItems(records)
	return ds
}

// Path returns the source file path, "" when not file-backed.
func (ds *Dataset) Path() string {
	return ds.path
}

// Name returns the source file name.
func (ds *Dataset) Name() string {
	return ds.name
}

// Items returns the working copy in document order.
func (ds *Dataset) Items() []*Item {
	return ds.items
}

// Len returns the number of questions.
func (ds *Dataset) Len() int {
	return len(ds.items)
}

// Reset discards every edit and selection, restoring a fresh deep
// copy of the snapshot.
func (ds *Dataset) Reset() {
	ds.items = buildItems(ds.original)
}

// Selected returns the selected items in document order.
func (ds *Dataset) Selected() []*Item {
	var selected []*Item
	for _, item := range ds.items {
		if item.Selected {
			selected = append(selected, item)
		}
	}
	return selected
}

// ClearSelection deselects every item.
func (ds *Dataset) ClearSelection() {
	for _, item := range ds.items {
		item.Selected = false
	}
}

// Records returns the working copy's records in document order.
func (ds *Dataset) Records() []*record.Record {
	records := make([]*record.Record, 0, len(ds.items))
	for _, item := range ds.items {
		records = append(records, item.Question.Record())
	}
	return records
}

// MarshalUpdated renders the working copy in the original schema as
// indented JSON.
func (ds *Dataset) MarshalUpdated() ([]byte, error) {
	return record.EncodeArray(ds.Records())
}

// Levels returns the distinct non-blank level titles, sorted.
func (ds *Dataset) Levels() []string {
	seen := map[string]struct{}{}
	var levels []string
	for _, item := range ds.items {
		level := strings.TrimSpace(item.Question.Level())
		if level == "" {
			continue
		}
		if _, ok := seen[level]; ok {
			continue
		}
		seen[level] = struct{}{}
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// Difficulties returns the distinct difficulty levels present in the
// data, sorted. Only records that carry a parseable difficulty count;
// the load-time fallback is not invented here.
func (ds *Dataset) Difficulties() []int {
	seen := map[int]struct{}{}
	var difficulties []int
	for _, item := range ds.items {
		difficulty, ok := rawDifficulty(item)
		if !ok {
			continue
		}
		if _, ok := seen[difficulty]; ok {
			continue
		}
		seen[difficulty] = struct{}{}
		difficulties = append(difficulties, difficulty)
	}
	sort.Ints(difficulties)
	return difficulties
}

func buildItems(records []*record.Record) []*Item {
	items := make([]*Item, 0, len(records))
	for i, rec := range records {
		q := question.Wrap(rec.Clone())
		normalizeScoreField(q)
		items = append(items, &Item{
			ID:       uuid.NewString(),
			Index:    i,
			Question: q,
		})
	}
	return items
}

// normalizeScoreField rewrites a numeric score_rating as its string
// form, the shape every saved file carries.
func normalizeScoreField(q question.Question) {
	value, ok := q.Record().Get(question.FieldScore)
	if !ok || value == nil {
		return
	}
	if _, isString := value.(string); isString {
		return
	}
	if _, isNumber := record.AsNumber(value); !isNumber {
		return
	}
	q.Record().Set(question.FieldScore, question.NormalizeScoreText(record.Stringify(value)))
}
