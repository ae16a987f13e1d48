// Package markdown renders question material as styled terminal text
// for the preview pane. It covers the structures question datasets
// actually use: headings, paragraphs, emphasis, code spans and blocks,
// lists, and blockquotes. Raw LaTeX passes through untouched.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

// The parser configuration never changes and a goldmark parser is safe
// to share; parsing state is per Parse call.
func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return parserInstance
}

// Options configures rendering.
type Options struct {
	Width   int
	NoColor bool
}

// Render parses markdown and renders it for terminal display. Soft
// line breaks inside a paragraph become spaces so hard-wrapped source
// reflows at the requested width.
func Render(input string, opts Options) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	source := []byte(input)
	document := getParser().Parser().Parse(text.NewReader(source))

	renderer := &terminalRenderer{
		source:  source,
		width:   width,
		noColor: opts.NoColor,
	}
	_ = ast.Walk(document, renderer.walk)
	renderer.flushBlock("")
	return strings.TrimRight(renderer.output.String(), "\n")
}

type terminalRenderer struct {
	source  []byte
	width   int
	noColor bool

	output strings.Builder
	inline strings.Builder

	boldDepth   int
	italicDepth int
	listDepth   int
	quoteDepth  int
	ordinal     []int
}

func (renderer *terminalRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch typed := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			heading := strings.TrimSpace(renderer.inline.String())
			renderer.inline.Reset()
			renderer.writeBlock(renderer.stylize(heading, headingStyle))
		}
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			if renderer.listDepth == 0 {
				renderer.inline.Reset()
			}
		} else if renderer.listDepth == 0 {
			// Inside a list item the content stays buffered for the
			// item's own flush.
			renderer.flushInline()
		}
	case *ast.Text:
		if entering {
			renderer.writeInline(string(typed.Segment.Value(renderer.source)))
			if typed.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if typed.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}
	case *ast.Emphasis:
		if typed.Level >= 2 {
			renderer.bump(&renderer.boldDepth, entering)
		} else {
			renderer.bump(&renderer.italicDepth, entering)
		}
	case *ast.CodeSpan:
		if entering {
			renderer.inline.WriteString(renderer.stylize(string(typed.Text(renderer.source)), codeStyle))
			return ast.WalkSkipChildren, nil
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			renderer.writeBlock(renderer.codeBlock(node))
			return ast.WalkSkipChildren, nil
		}
	case *ast.List:
		if entering {
			renderer.listDepth++
			start := 0
			if typed.IsOrdered() {
				start = typed.Start
				if start == 0 {
					start = 1
				}
			}
			renderer.ordinal = append(renderer.ordinal, start)
		} else {
			renderer.listDepth--
			renderer.ordinal = renderer.ordinal[:len(renderer.ordinal)-1]
		}
	case *ast.ListItem:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushListItem()
		}
	case *ast.Blockquote:
		if entering {
			renderer.quoteDepth++
		} else {
			renderer.quoteDepth--
		}
	case *ast.ThematicBreak:
		if entering {
			renderer.writeBlock(strings.Repeat("─", min(renderer.width, 40)))
		}
	}
	return ast.WalkContinue, nil
}

func (renderer *terminalRenderer) bump(depth *int, entering bool) {
	if entering {
		*depth++
	} else {
		*depth--
	}
}

func (renderer *terminalRenderer) writeInline(textContent string) {
	style := lipgloss.NewStyle()
	styled := false
	if renderer.boldDepth > 0 {
		style = style.Bold(true)
		styled = true
	}
	if renderer.italicDepth > 0 {
		style = style.Italic(true)
		styled = true
	}
	if styled && !renderer.noColor {
		renderer.inline.WriteString(style.Render(textContent))
		return
	}
	renderer.inline.WriteString(textContent)
}

func (renderer *terminalRenderer) flushInline() {
	content := strings.TrimSpace(renderer.inline.String())
	renderer.inline.Reset()
	if content == "" {
		return
	}
	renderer.writeBlock(wrap(content, renderer.blockWidth()))
}

func (renderer *terminalRenderer) flushListItem() {
	content := strings.TrimSpace(renderer.inline.String())
	renderer.inline.Reset()
	if content == "" {
		return
	}
	bullet := "• "
	if len(renderer.ordinal) > 0 && renderer.ordinal[len(renderer.ordinal)-1] > 0 {
		last := len(renderer.ordinal) - 1
		bullet = strconv.Itoa(renderer.ordinal[last]) + ". "
		renderer.ordinal[last]++
	}
	indent := strings.Repeat("  ", max(renderer.listDepth-1, 0))
	wrapped := wrap(content, renderer.blockWidth()-len(indent)-len(bullet))
	lines := strings.Split(wrapped, "\n")
	var block strings.Builder
	for i, line := range lines {
		if i == 0 {
			block.WriteString(indent + bullet + line)
		} else {
			block.WriteString("\n" + indent + strings.Repeat(" ", len(bullet)) + line)
		}
	}
	renderer.writeListLine(block.String())
}

// writeListLine joins consecutive list items with single newlines
// instead of blank lines.
func (renderer *terminalRenderer) writeListLine(block string) {
	if renderer.output.Len() > 0 {
		renderer.output.WriteString("\n")
	}
	renderer.output.WriteString(renderer.quote(block))
}

func (renderer *terminalRenderer) writeBlock(block string) {
	if block == "" {
		return
	}
	if renderer.output.Len() > 0 {
		renderer.output.WriteString("\n\n")
	}
	renderer.output.WriteString(renderer.quote(block))
}

func (renderer *terminalRenderer) flushBlock(block string) {
	renderer.flushInline()
	if block != "" {
		renderer.writeBlock(block)
	}
}

func (renderer *terminalRenderer) quote(block string) string {
	if renderer.quoteDepth == 0 {
		return block
	}
	prefix := strings.Repeat("│ ", renderer.quoteDepth)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (renderer *terminalRenderer) codeBlock(node ast.Node) string {
	var lines []string
	segments := node.Lines()
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		lines = append(lines, "  "+strings.TrimRight(string(segment.Value(renderer.source)), "\n"))
	}
	return renderer.stylize(strings.Join(lines, "\n"), codeStyle)
}

func (renderer *terminalRenderer) blockWidth() int {
	width := renderer.width - renderer.quoteDepth*2
	if width < 10 {
		return 10
	}
	return width
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
)

func (renderer *terminalRenderer) stylize(textContent string, style lipgloss.Style) string {
	if renderer.noColor {
		return textContent
	}
	return style.Render(textContent)
}
