// Package report renders the conversion issue log for humans.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"soapui2postman/internal/issue"
)

// Render writes a markdown report of the issue log grouped by severity,
// errors first.
func Render(w io.Writer, log *issue.Log) error {
	if log.Len() == 0 {
		_, err := fmt.Fprintln(w, "# Conversion report\n\nNo issues recorded.")
		return err
	}

	var b strings.Builder
	b.WriteString("# Conversion report\n")

	for _, sev := range []issue.Severity{issue.SeverityError, issue.SeverityWarning, issue.SeverityInfo} {
		entries := log.BySeverity(sev)
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n## %s (%d)\n\n", sev, len(entries))
		for _, e := range entries {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteFile renders the report to a file.
func WriteFile(path string, log *issue.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(f, log); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
