// Package report renders a standalone HTML document of question
// records for review outside the terminal.
package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"qedit/internal/dataset"
)

// BuildHTML renders the report page for a set of items.
func BuildHTML(title string, items []*dataset.Item) (string, error) {
	var builder strings.Builder
	if err := reportPage(title, items).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Write renders the report and writes it to a file.
func Write(path, title string, items []*dataset.Item) error {
	html, err := BuildHTML(title, items)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
