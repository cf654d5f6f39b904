package metastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_PlainEncoding(t *testing.T) {
	doc := ParseDocument(`{"Project":"Fenix","Reviewed":"yes"}`)
	assert.Equal(t, Document{"Project": "Fenix", "Reviewed": "yes"}, doc)
}

func TestParseDocument_DoubleEncoding(t *testing.T) {
	// A legacy client stored the serialized document as a JSON string.
	doc := ParseDocument(`"{\"Project\":\"Fenix\"}"`)
	assert.Equal(t, Document{"Project": "Fenix"}, doc)
}

func TestParseDocument_RejectsNonObjects(t *testing.T) {
	cases := map[string]string{
		"array":             `["a","b"]`,
		"number":            `42`,
		"string of array":   `"[1,2]"`,
		"string of number":  `"7"`,
		"garbage":           `{not json`,
		"string of garbage": `"{not json"`,
		"null":              `null`,
		"empty input":       ``,
		"triple encoded":    `"\"{\\\"a\\\":\\\"1\\\"}\""`,
		"boolean":           `true`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Document{}, ParseDocument(raw))
		})
	}
}

func TestParseDocument_CoercesScalars(t *testing.T) {
	doc := ParseDocument(`{"count":3,"flag":true,"name":"x","nested":{"a":1},"list":[1]}`)
	assert.Equal(t, Document{"count": "3", "flag": "true", "name": "x"}, doc)
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	original := Document{"Project": "Fenix", "Site": "Berlin", "Reviewed": ""}

	plain, err := EncodeDocument(original)
	require.NoError(t, err)
	assert.Equal(t, original, ParseDocument(plain))

	legacy, err := EncodeDocumentLegacy(original)
	require.NoError(t, err)
	assert.Equal(t, original, ParseDocument(legacy))
}

func TestEncodeDocument_NilBecomesEmptyObject(t *testing.T) {
	plain, err := EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", plain)
}
