package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qedit/internal/dataset"
	"qedit/internal/record"
)

// UpdatedName derives the original-schema output name from a source
// file name: "questions.json" becomes "questions_updated.json".
func UpdatedName(name string) string {
	return trimJSONExt(name) + "_updated.json"
}

// PowerPathName derives the PowerPath output name from a source file
// name: "questions.json" becomes "powerpath_export_questions.json".
func PowerPathName(name string) string {
	return "powerpath_export_" + trimJSONExt(name) + ".json"
}

// WriteUpdated writes the whole working copy in the original schema.
func WriteUpdated(path string, ds *dataset.Dataset) error {
	return WriteUpdatedItems(path, ds.Items())
}

// WriteUpdatedItems writes a subset of the working copy in the
// original schema, in document order.
func WriteUpdatedItems(path string, items []*dataset.Item) error {
	records := make([]*record.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item.Question.Record())
	}
	data, err := record.EncodeArray(records)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WritePowerPath projects items into the PowerPath schema and writes
// them as indented JSON.
func WritePowerPath(path string, items []*dataset.Item) error {
	data, err := json.MarshalIndent(BuildPowerPath(items), "", "  ")
	if err != nil {
		return fmt.Errorf("encode powerpath questions: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OutputPath resolves an output file relative to a directory, keeping
// absolute paths as-is.
func OutputPath(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func trimJSONExt(name string) string {
	return strings.TrimSuffix(name, ".json")
}
