package encode

import "github.com/signadot/transcheck/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the indentation width. It has no effect on wire output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects single line JSON.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// SortKeys writes object keys in byte order instead of document order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
