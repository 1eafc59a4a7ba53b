package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row ...string) {
	builder.rows = append(builder.rows, row)
}

// Len returns the number of body rows.
func (builder *TableBuilder) Len() int {
	return len(builder.rows)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Column widths
// count terminal cells, so wide runes and ANSI styling line up.
func FormatTable(headers []string, rows [][]string) string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, normalizeRow(headers))
	for _, row := range rows {
		all = append(all, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], DisplayWidth(cell))
		}
	}

	var builder strings.Builder
	for _, row := range all {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			builder.WriteString(strings.Repeat(" ", widths[i]-DisplayWidth(cell)+2))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	return Truncate(normalizeTableCell(value), tableCellMaxWidth)
}

// Truncate shortens value to at most width terminal cells, ending in an
// ellipsis when anything was cut. ANSI sequences are kept.
func Truncate(value string, width int) string {
	if DisplayWidth(value) <= width {
		return value
	}
	limit := width - runewidth.StringWidth(tableCellEllipsis)
	if limit <= 0 {
		return tableCellEllipsis
	}
	return truncateVisible(value, limit) + tableCellEllipsis
}

// DisplayWidth returns the number of terminal cells value occupies, ignoring
// ANSI escape sequences.
func DisplayWidth(value string) int {
	return runewidth.StringWidth(stripANSICodes(value))
}

func normalizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = normalizeTableCell(cell)
	}
	return out
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func truncateVisible(value string, limit int) string {
	var builder strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if value[i] == '\x1b' && i+1 < len(value) && value[i+1] == '[' {
			end := i + 2
			for end < len(value) && value[end] != 'm' {
				end++
			}
			if end < len(value) {
				end++
			}
			builder.WriteString(value[i:end])
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		w := runewidth.RuneWidth(r)
		if visible+w > limit {
			break
		}
		builder.WriteString(value[i : i+size])
		visible += w
		i += size
	}
	return builder.String()
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		builder.WriteByte(char)
	}
	return builder.String()
}
