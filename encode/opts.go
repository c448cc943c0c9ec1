package encode

import "github.com/signadot/jsondoc/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}


// EncodeWire selects compact output without any whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Indent sets the string repeated once per nesting level in pretty output.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
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

// SortKeys encodes object members ordered by name instead of document order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
