package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	cols := []column{{title: "Name"}, {title: "Items", numeric: true}, {title: "Lang"}}
	rows := [][]string{
		{"Git basics", "12", "en"},
		{"Nederlands", "3", "nl"},
	}

	lines := formatTable(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name        Items  Lang" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Git basics     12  en" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Nederlands      3  nl" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]column{{title: "A"}, {title: "B"}}, [][]string{{"日本", "x"}})
	if lines[0] != "A     B" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "日本  x" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableShortAndLongRows(t *testing.T) {
	lines := formatTable([]column{{title: "Name"}, {title: "N", numeric: true}}, [][]string{{"a"}, {"b", "7", "extra"}})
	if lines[1] != "a" {
		t.Fatalf("unexpected short row: %q", lines[1])
	}
	if lines[2] != "b     7" {
		t.Fatalf("unexpected long row: %q", lines[2])
	}
}
