package question

import (
	"fmt"
	"strings"

	"qedit/internal/record"
)

// Issue captures one advisory problem found in a question record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate reports schema issues across a set of questions. Loading
// never rejects records over these; validation exists so reviewers can
// find entries the editor will render degraded.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Material()) == "" {
			collector.add(prefix+".material", "is required")
		}
		validateChoices(collector, prefix, q)
	}
	return collector.result()
}

func validateChoices(collector *issueCollector, prefix string, q Question) {
	raw := q.RawChoices()
	if raw == nil {
		collector.add(prefix+".choices", "is missing")
		return
	}
	elements, ok := raw.([]record.Value)
	if !ok {
		collector.add(prefix+".choices", "is not a list")
		return
	}
	if len(elements) == 0 {
		collector.add(prefix+".choices", "is empty")
		return
	}
	correct := 0
	for idx, element := range elements {
		entry, ok := element.(*record.Record)
		if !ok {
			collector.add(fmt.Sprintf("%s.choices[%d]", prefix, idx), "is not an object")
			continue
		}
		if value, ok := entry.Get("text"); !ok || record.IsBlank(value) {
			collector.add(fmt.Sprintf("%s.choices[%d].text", prefix, idx), "is blank")
		}
		if value, _ := entry.Get("is_correct"); record.Truthy(value) {
			correct++
		}
	}
	if correct == 0 {
		collector.add(prefix+".choices", "has no correct entry")
	}
}
