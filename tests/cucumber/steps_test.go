package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"qedit/internal/choices"
	"qedit/internal/cli"
)

// featureState holds scenario state for the feature suite.
type featureState struct {
	choiceList []choices.Choice
	display    string
	parsed     []choices.Choice
	parsedSet  bool

	tempDir  string
	filePath string
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// InitializeScenario wires the steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^the choice list:$`, state.theChoiceList)
	ctx.Step(`^the display text:$`, state.theDisplayText)
	ctx.Step(`^the choices are formatted for display$`, state.theChoicesAreFormatted)
	ctx.Step(`^the display text is parsed$`, state.theDisplayTextIsParsed)
	ctx.Step(`^the display text is:$`, state.theDisplayTextIs)
	ctx.Step(`^the choice list is:$`, state.theChoiceListIs)
	ctx.Step(`^the choice list is unchanged$`, state.theChoiceListIsUnchanged)
	ctx.Step(`^the choice list is empty$`, state.theChoiceListIsEmpty)

	ctx.Step(`^a question file:$`, state.aQuestionFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^I run "([^"]+)" on the file$`, state.iRunCommandOnFile)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^a file matching "([^"]+)" exists next to the input$`, state.aFileMatchingExists)
}

func (s *featureState) reset() {
	*s = featureState{}
}

func (s *featureState) cleanup() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

func choiceTable(table *godog.Table) ([]choices.Choice, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("expected a header row and at least one choice")
	}
	header := table.Rows[0]
	if len(header.Cells) != 2 || header.Cells[0].Value != "text" || header.Cells[1].Value != "correct" {
		return nil, fmt.Errorf("expected text/correct columns")
	}
	var list []choices.Choice
	for _, row := range table.Rows[1:] {
		list = append(list, choices.Choice{
			Text:      row.Cells[0].Value,
			IsCorrect: row.Cells[1].Value == "yes",
		})
	}
	return list, nil
}

func (s *featureState) theChoiceList(table *godog.Table) error {
	list, err := choiceTable(table)
	if err != nil {
		return err
	}
	s.choiceList = list
	return nil
}

func (s *featureState) theDisplayText(doc *godog.DocString) error {
	s.display = doc.Content
	return nil
}

func (s *featureState) theChoicesAreFormatted() error {
	if s.choiceList == nil {
		return fmt.Errorf("no choice list in scenario")
	}
	s.display = choices.FormatList(s.choiceList)
	return nil
}

func (s *featureState) theDisplayTextIsParsed() error {
	s.parsed = choices.Parse(s.display)
	s.parsedSet = true
	return nil
}

func (s *featureState) theDisplayTextIs(doc *godog.DocString) error {
	if s.display != doc.Content {
		return fmt.Errorf("display text mismatch:\ngot:\n%s\nwant:\n%s", s.display, doc.Content)
	}
	return nil
}

func (s *featureState) theChoiceListIs(table *godog.Table) error {
	want, err := choiceTable(table)
	if err != nil {
		return err
	}
	return compareChoices(s.parsed, want)
}

func (s *featureState) theChoiceListIsUnchanged() error {
	return compareChoices(s.parsed, s.choiceList)
}

func (s *featureState) theChoiceListIsEmpty() error {
	if !s.parsedSet {
		return fmt.Errorf("display text was not parsed")
	}
	if len(s.parsed) != 0 {
		return fmt.Errorf("expected no choices, got %d", len(s.parsed))
	}
	return nil
}

func compareChoices(got, want []choices.Choice) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d choice(s), got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("choice %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
	return nil
}

func (s *featureState) aQuestionFile(doc *godog.DocString) error {
	dir, err := os.MkdirTemp("", "qedit-feature-")
	if err != nil {
		return err
	}
	s.tempDir = dir
	s.filePath = filepath.Join(dir, "questions.json")
	return os.WriteFile(s.filePath, []byte(doc.Content), 0o644)
}

func (s *featureState) iRunCommand(command string) error {
	return s.run(command, false)
}

func (s *featureState) iRunCommandOnFile(command string) error {
	if s.filePath == "" {
		return fmt.Errorf("no question file in scenario")
	}
	return s.run(command, true)
}

func (s *featureState) run(command string, appendFile bool) error {
	parts := strings.Fields(command)
	if len(parts) == 0 || parts[0] != "qedit" {
		return fmt.Errorf("expected a qedit command, got %q", command)
	}
	args := parts[1:]
	if appendFile {
		args = append(args, s.filePath)
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected a non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) && !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("output does not contain %q:\nstdout: %s\nstderr: %s", text, s.stdout.String(), s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		name := row.Cells[0].Value
		if !strings.Contains(output, name) {
			return fmt.Errorf("output does not list command %q:\n%s", name, output)
		}
	}
	return nil
}

func (s *featureState) aFileMatchingExists(pattern string) error {
	matches, err := filepath.Glob(filepath.Join(s.tempDir, pattern))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no file matching %q in %s", pattern, s.tempDir)
	}
	return nil
}
