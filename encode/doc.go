// Package encode writes documents as JSON or YAML text.
//
// # Usage
//
//	// indented JSON, object keys in document order
//	err := encode.Encode(node, w)
//
//	// stable text for line diffs
//	err := encode.Encode(node, w, encode.SortKeys(true), encode.Indent(2))
//
//	// YAML, or single line JSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
// Colors apply to JSON output only.
package encode
