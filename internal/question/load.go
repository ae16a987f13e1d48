package question

import (
	"fmt"
	"os"

	"qedit/internal/record"
)

// Load reads a JSON array of question records from a file.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	questions, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}

// Decode parses a JSON array of question records. Unknown fields are
// kept; only the document structure itself is enforced.
func Decode(data []byte) ([]Question, error) {
	records, err := record.DecodeArray(data)
	if err != nil {
		return nil, err
	}
	questions := make([]Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, Wrap(rec))
	}
	return questions, nil
}
