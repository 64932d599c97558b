package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidrill/internal/session"
	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// CatalogRow describes one dictionary file for listing and checking.
type CatalogRow struct {
	Path    string
	Set     vocab.Set
	Unknown []string
	Err     error
}

// RenderCatalog prints a table of dictionaries. Lines are truncated to width
// when width is positive.
func RenderCatalog(w io.Writer, rows []CatalogRow, width int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No dictionaries found.")
		return err
	}
	cols := []column{
		{title: "Name"},
		{title: "Items", numeric: true},
		{title: "Lang"},
		{title: "Version", numeric: true},
		{title: "Tags"},
		{title: "File"},
	}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.Err != nil {
			tableRows = append(tableRows, []string{"(invalid)", "-", "-", "-", "-", filepath.Base(r.Path)})
			continue
		}
		tableRows = append(tableRows, []string{
			r.Set.Name,
			strconv.Itoa(r.Set.Len()),
			r.Set.Language,
			strconv.Itoa(r.Set.Version),
			formatTags(r.Set.Tags()),
			filepath.Base(r.Path),
		})
	}
	lines := formatTable(cols, tableRows)
	for _, line := range lines {
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ",")
}

// RenderSummary prints the final tally of a session.
func RenderSummary(w io.Writer, setName string, st session.Stats) error {
	lines := []string{
		fmt.Sprintf("Session: %s", setName),
		fmt.Sprintf("Answered: %d/%d", st.Answered(), st.Total),
		fmt.Sprintf("Correct: %d", st.Correct),
		fmt.Sprintf("Incorrect: %d", st.Incorrect),
		fmt.Sprintf("Best streak: %d", st.BestStreak),
		fmt.Sprintf("Success rate: %.1f%%", st.SuccessRate),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCheck prints one status line per dictionary file plus its problems.
// It returns the number of invalid files.
func RenderCheck(w io.Writer, rows []CatalogRow) (int, error) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	invalid := 0
	for _, r := range rows {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			invalid++
			if _, err := bad.Fprintf(w, "FAIL %s: %v\n", name, r.Err); err != nil {
				return invalid, err
			}
			continue
		}
		if _, err := ok.Fprintf(w, "ok   %s (%s, %d items)\n", name, r.Set.Name, r.Set.Len()); err != nil {
			return invalid, err
		}
		for _, key := range r.Unknown {
			if _, err := warn.Fprintf(w, "     unknown key %q ignored\n", key); err != nil {
				return invalid, err
			}
		}
	}
	return invalid, nil
}
