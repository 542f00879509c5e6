// Package util holds the JSON codec shared by the document stores.
package util

import jsoniter "github.com/json-iterator/go"

// Keys such as "<" and "&" are bindable, so HTML escaping stays off. Sorted
// map keys keep stored documents stable across saves.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func JsonMarshal(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func JsonMarshalIndent(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func JsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
