package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.Items)
	require.NotEmpty(t, cat.Boxes)
	assert.Equal(t, len(cat.Boxes), len(cat.Quantities))
}

func TestLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	doc := `{
		"items": [
			{"name": "widget", "length": 10, "width": 10, "depth": 10, "weight": 5, "rotation": "any"}
		],
		"boxes": [
			{"name": "box", "outer_length": 20, "outer_width": 20, "outer_depth": 20, "inner_length": 18, "inner_width": 18, "inner_depth": 18, "empty_weight": 1, "max_payload": 1000, "quantity": 2}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Items, 1)
	require.Len(t, cat.Boxes, 1)

	assert.Equal(t, "widget", cat.Items[0].Name)
	assert.Equal(t, 2, cat.Quantities[cat.Boxes[0].ID])
	assert.NotNil(t, cat.BoxByID(cat.Boxes[0].ID))
}

func TestLoadRejectsUnknownRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	doc := `{
		"items": [{"name": "widget", "length": 10, "width": 10, "depth": 10, "weight": 5, "rotation": "sideways"}],
		"boxes": [{"name": "box", "outer_length": 20, "outer_width": 20, "outer_depth": 20, "inner_length": 18, "inner_width": 18, "inner_depth": 18, "max_payload": 1000, "quantity": 1}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/catalog.json")
	assert.Error(t, err)
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [], "boxes": []}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
