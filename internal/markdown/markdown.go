// Package markdown renders free text such as journal entries and
// recommendation reasons for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/amonks/devflow/internal/strings"
)

// Style selects the glamour palette.
type Style int

const (
	// StylePlain uses ASCII decorations and no color.
	StylePlain Style = iota
	StyleDark
	StyleLight
)

// StyleFor maps a color-enabled flag and a theme name to a Style.
func StyleFor(color bool, theme string) Style {
	switch {
	case !color:
		return StylePlain
	case theme == "light":
		return StyleLight
	default:
		return StyleDark
	}
}

type renderer interface {
	Render(string) (string, error)
}

type cacheKey struct {
	style Style
	width int
}

var (
	rendererMu sync.Mutex
	renderers  = map[cacheKey]renderer{}
)

// Render formats markdown text at width columns, indenting every line by
// indent spaces. A renderer failure falls back to the normalized input.
func Render(style Style, width, indent int, input string) string {
	value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(input))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	renderWidth := max(width-max(indent, 0), 1)

	rendered := value
	if r := markdownRenderer(style, renderWidth); r != nil {
		if formatted, ok := safeRender(r, value); ok {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return ""
	}
	return indentBlock(rendered, indent)
}

func safeRender(r renderer, value string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

func markdownRenderer(style Style, width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := cacheKey{style: style, width: width}
	if cached, ok := renderers[key]; ok {
		return cached
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = created
	return created
}

func styleConfig(style Style) ansi.StyleConfig {
	switch style {
	case StyleDark:
		return styles.DarkStyleConfig
	case StyleLight:
		return styles.LightStyleConfig
	default:
		cfg := styles.ASCIIStyleConfig
		cfg.Item.BlockPrefix = "- "
		cfg.Document.Margin = uintPtr(0)
		return cfg
	}
}

func uintPtr(v uint) *uint {
	return &v
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
