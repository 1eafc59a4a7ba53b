package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	got := TruncateTableCell("Hello\nWorld\r\nAgain\tTab")

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  string
	}{
		{name: "fits", value: "short", width: 10, want: "short"},
		{name: "cut", value: "Implement authentication", width: 10, want: "Impleme..."},
		{name: "wide runes", value: "日本語テキスト", width: 9, want: "日本語..."},
		{name: "tiny", value: "abcdef", width: 2, want: "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.value, tt.width); got != tt.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	builder := NewTableBuilder([]string{"ID", "TITLE", "STATUS"}, 2)
	builder.AddRow("1", "Auth", "doing")
	builder.AddRow("10", "Dark mode", "todo")

	got := builder.String()
	want := "ID  TITLE      STATUS\n" +
		"1   Auth       doing\n" +
		"10  Dark mode  todo\n"
	if got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}
	if builder.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", builder.Len())
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	got := FormatTable([]string{"COL"}, [][]string{{"Hello\nWorld"}})

	if got != "COL\nHello World\n" {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("\x1b[31mred\x1b[0m"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := DisplayWidth("日本"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
