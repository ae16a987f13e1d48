// Package question is the typed view over question records. A record
// keeps every field the source document had; this package reads and
// writes the known ones and leaves the rest untouched.
package question

import (
	"encoding/json"
	"strconv"
	"strings"

	"qedit/internal/choices"
	"qedit/internal/record"
)

// Known field names of the question schema.
const (
	FieldMaterial    = "material"
	FieldChoices     = "choices"
	FieldExplanation = "explanation"
	FieldTitle       = "question_title"
	FieldDifficulty  = "question_difficulty"
	FieldLevel       = "level_title"
	FieldScore       = "score_rating"
	FieldFeedback    = "feedback"
)

// DefaultDifficulty is used when a record's difficulty is missing,
// blank, or unparseable.
const DefaultDifficulty = 1

// Question wraps one question record.
type Question struct {
	rec *record.Record
}

// Wrap returns the typed view of a record.
func Wrap(rec *record.Record) Question {
	return Question{rec: rec}
}

// Record returns the underlying record.
func (q Question) Record() *record.Record {
	return q.rec
}

// Material returns the question text.
func (q Question) Material() string {
	return q.stringField(FieldMaterial)
}

// SetMaterial updates the question text.
func (q Question) SetMaterial(text string) {
	q.rec.Set(FieldMaterial, text)
}

// Title returns the question title.
func (q Question) Title() string {
	return q.stringField(FieldTitle)
}

// SetTitle updates the question title.
func (q Question) SetTitle(text string) {
	q.rec.Set(FieldTitle, text)
}

// Level returns the level/topic title.
func (q Question) Level() string {
	return q.stringField(FieldLevel)
}

// Explanation returns the shared explanation, or "" when absent or
// blank.
func (q Question) Explanation() string {
	value, ok := q.rec.Get(FieldExplanation)
	if !ok || record.IsBlank(value) {
		return ""
	}
	return record.Stringify(value)
}

// SetExplanation updates the explanation. Blank input stores null.
func (q Question) SetExplanation(text string) {
	if strings.TrimSpace(text) == "" {
		q.rec.Set(FieldExplanation, nil)
		return
	}
	q.rec.Set(FieldExplanation, text)
}

// Feedback returns the reviewer feedback.
func (q Question) Feedback() string {
	return q.stringField(FieldFeedback)
}

// SetFeedback updates the reviewer feedback.
func (q Question) SetFeedback(text string) {
	q.rec.Set(FieldFeedback, text)
}

// Difficulty returns the difficulty as an integer, falling back to
// DefaultDifficulty on missing, blank, or unparseable values.
func (q Question) Difficulty() int {
	value, ok := q.rec.Get(FieldDifficulty)
	if !ok || record.IsBlank(value) {
		return DefaultDifficulty
	}
	parsed, ok := record.AsNumber(value)
	if !ok {
		return DefaultDifficulty
	}
	return int(parsed)
}

// SetDifficulty stores a difficulty from edited text. Whole numbers
// are stored as numbers, blanks as null, and anything else as the
// trimmed text for the coercion fallback to handle.
func (q Question) SetDifficulty(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		q.rec.Set(FieldDifficulty, nil)
		return
	}
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		q.rec.Set(FieldDifficulty, json.Number(strconv.Itoa(int(parsed))))
		return
	}
	q.rec.Set(FieldDifficulty, trimmed)
}

// DifficultyText returns the difficulty field for display, "" when
// unset.
func (q Question) DifficultyText() string {
	value, ok := q.rec.Get(FieldDifficulty)
	if !ok || value == nil {
		return ""
	}
	return record.Stringify(value)
}

// Score returns the numeric score, when one is set and parseable.
// Scores live in the source data as strings, but numbers are accepted
// too.
func (q Question) Score() (float64, bool) {
	value, ok := q.rec.Get(FieldScore)
	if !ok {
		return 0, false
	}
	return record.AsNumber(value)
}

// ScoreText returns the score field for display, "" when unset.
func (q Question) ScoreText() string {
	value, ok := q.rec.Get(FieldScore)
	if !ok || value == nil {
		return ""
	}
	return record.Stringify(value)
}

// SetScore stores a score from edited text. Whole numbers are stored
// without a fractional part, blanks as null, and everything else as
// the trimmed text.
func (q Question) SetScore(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		q.rec.Set(FieldScore, nil)
		return
	}
	q.rec.Set(FieldScore, NormalizeScoreText(trimmed))
}

// Choices returns the typed choice list decoded from the raw field.
func (q Question) Choices() []choices.Choice {
	value, _ := q.rec.Get(FieldChoices)
	return choices.FromValue(value)
}

// RawChoices returns the raw choices value as stored in the record.
func (q Question) RawChoices() record.Value {
	value, _ := q.rec.Get(FieldChoices)
	return value
}

// SetChoices replaces the choices field with a clean structured list,
// keeping the field's position in the record.
func (q Question) SetChoices(list []choices.Choice) {
	q.rec.Set(FieldChoices, choices.ToValue(list))
}

// DisplayChoices renders the raw choices value as editable display
// text.
func (q Question) DisplayChoices() string {
	return choices.Format(q.RawChoices())
}

// ApplyChoicesText parses edited display text and re-embeds the
// resulting list. Parsing is the canonical operation, so the stored
// list reflects the parse and the next render is its normalization.
func (q Question) ApplyChoicesText(text string) {
	q.SetChoices(choices.Parse(text))
}

// NormalizeScoreText renders a numeric score string without a trailing
// fractional zero; non-numeric text passes through.
func NormalizeScoreText(text string) string {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	if parsed == float64(int(parsed)) {
		return strconv.Itoa(int(parsed))
	}
	return text
}

func (q Question) stringField(name string) string {
	value, ok := q.rec.Get(name)
	if !ok || value == nil {
		return ""
	}
	return record.Stringify(value)
}
