package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"rating": {"type": "integer", "minimum": 1, "maximum": 5}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "x", "rating": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"rating": 9}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
	assert.Contains(t, ve.Error(), "rating")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42`, `{}`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	jsonPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"id": "x"}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o644))
	assert.Error(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "absent-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath(t *testing.T) {
	// The repo schema is two levels up from this package.
	got := ResolveSchemaPath(filepath.Join("schemas", "seed.schema.json"))
	require.NotEmpty(t, got)
	assert.True(t, filepath.IsAbs(got))

	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "does-not-exist.json")))
}
