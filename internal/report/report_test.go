package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soapui2postman/internal/issue"
)

func TestRenderGroupsBySeverity(t *testing.T) {
	log := &issue.Log{}
	log.Info("compose", "Users", "data source exported externally")
	log.Warn("assertion", "Soap Id", "xpath placeholder emitted")
	log.Error("compose", "Broken", "step conversion failed")

	var b strings.Builder
	require.NoError(t, Render(&b, log))
	out := b.String()

	assert.Contains(t, out, "# Conversion report")
	assert.Contains(t, out, "## ERROR (1)")
	assert.Contains(t, out, "## WARNING (1)")
	assert.Contains(t, out, "## INFO (1)")

	// Errors are listed before warnings and infos.
	assert.Less(t, strings.Index(out, "## ERROR"), strings.Index(out, "## WARNING"))
	assert.Less(t, strings.Index(out, "## WARNING"), strings.Index(out, "## INFO"))
}

func TestRenderEmptyLog(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, &issue.Log{}))

	assert.Contains(t, b.String(), "No issues recorded.")
}

func TestWriteFile(t *testing.T) {
	log := &issue.Log{}
	log.Warn("assertion", "Check", "skipped")

	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, WriteFile(path, log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `WARNING [assertion] "Check": skipped`)
}
