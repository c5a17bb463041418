package postman

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCollection(t *testing.T) {
	col := &Collection{
		Info: Info{PostmanID: "id-1", Name: "Demo", Schema: SchemaV21},
	}

	path := filepath.Join(t.TempDir(), "out", "demo.postman_collection.json")
	require.NoError(t, WriteCollection(col, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Demo"`)
}

func TestWriteEnvironment(t *testing.T) {
	env := &Environment{ID: "id-2", Name: "Demo env", Scope: "environment"}

	path := filepath.Join(t.TempDir(), "demo.postman_environment.json")
	require.NoError(t, WriteEnvironment(env, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"_postman_variable_scope": "environment"`)
}
