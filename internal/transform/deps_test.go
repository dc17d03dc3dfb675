package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemovePrettier_EntryPresent(t *testing.T) {
	doc := parseDoc(t, `{"devDependencies": {"prettier": "^3.0.0", "typescript": "^5.0.0"}}`)

	notes, err := RemovePrettier(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierRemoved}, notes)

	deps := doc.Get("devDependencies")
	assert.Equal(t, []string{"typescript"}, deps.Keys())
	assert.Equal(t, "^5.0.0", deps.Get("typescript").StringValue())
}

func TestRemovePrettier_EntryAbsent(t *testing.T) {
	doc := parseDoc(t, `{"devDependencies": {"typescript": "^5.0.0"}}`)
	before := encodeDoc(t, doc)

	notes, err := RemovePrettier(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierMissing}, notes)
	assert.Equal(t, before, encodeDoc(t, doc))
}

func TestRemovePrettier_SectionMissing(t *testing.T) {
	doc := parseDoc(t, `{}`)

	notes, err := RemovePrettier(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierMissing}, notes)
	assert.Equal(t, "{}", encodeDoc(t, doc))
}

func TestRemovePrettier_PreservesOtherFields(t *testing.T) {
	doc := parseDoc(t, `{
  "name": "demo",
  "devDependencies": {
    "eslint": "^9.0.0",
    "prettier": "^3.0.0",
    "typescript": "^5.0.0"
  },
  "license": "MIT"
}`)

	notes, err := RemovePrettier(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierRemoved}, notes)
	assert.Equal(t, []string{"name", "devDependencies", "license"}, doc.Keys())
	// Deletion keeps the order of the remaining entries.
	assert.Equal(t, []string{"eslint", "typescript"}, doc.Get("devDependencies").Keys())
}

func TestRemovePrettier_Idempotent(t *testing.T) {
	doc := parseDoc(t, `{"devDependencies": {"prettier": "^3.0.0"}}`)

	notes, err := RemovePrettier(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierRemoved}, notes)
	first := encodeDoc(t, doc)

	notes, err = RemovePrettier(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{NotePrettierMissing}, notes)
	assert.Equal(t, first, encodeDoc(t, doc))
}

func TestRemovePrettier_RootNotObject(t *testing.T) {
	doc := parseDoc(t, `["prettier"]`)

	_, err := RemovePrettier(doc)

	assert.ErrorIs(t, err, ErrRootNotObject)
}

func TestRemovePrettier_SectionNotObject(t *testing.T) {
	doc := parseDoc(t, `{"devDependencies": ["prettier"]}`)

	_, err := RemovePrettier(doc)

	require.ErrorIs(t, err, ErrSectionNotObject)
	assert.Contains(t, err.Error(), "devDependencies is array")
}
