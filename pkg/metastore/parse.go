package metastore

import (
	"encoding/json"
	"strconv"
)

// Document is the custom-tags document: user-defined string pairs stored as
// one JSON object.
type Document map[string]string

// ParseDocument interprets the raw stored text of the metadata key.
//
// The text is parsed as JSON once. If the result is itself a string, it is
// parsed a second time: legacy clients serialized the document and then
// stored the serialization as a JSON string, so the archive holds it
// double-encoded. The final result is accepted only if it is a JSON object;
// arrays, numbers and parse failures at either stage all yield an empty
// document. This rule is a compatibility contract shared by every read path,
// not a tunable.
func ParseDocument(raw string) Document {
	var first any
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		return Document{}
	}
	if inner, ok := first.(string); ok {
		if err := json.Unmarshal([]byte(inner), &first); err != nil {
			return Document{}
		}
	}

	obj, ok := first.(map[string]any)
	if !ok {
		return Document{}
	}

	doc := make(Document, len(obj))
	for key, value := range obj {
		switch v := value.(type) {
		case string:
			doc[key] = v
		case float64:
			doc[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			doc[key] = strconv.FormatBool(v)
		default:
			// nested structures are not part of the document contract
		}
	}
	return doc
}

// EncodeDocument serializes a document to the plain JSON text the archive is
// expected to accept.
func EncodeDocument(doc Document) (string, error) {
	if doc == nil {
		doc = Document{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeDocumentLegacy wraps the plain encoding in a second JSON encoding,
// producing the double-encoded form some archive deployments require.
func EncodeDocumentLegacy(doc Document) (string, error) {
	plain, err := EncodeDocument(doc)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
