package jsondoc

import (
	"bytes"
	"io"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
)

// ToString returns d as JSON text, pretty printed if formatted. A string
// root is returned as its raw value and an invalid d as "".
func (d *Doc) ToString(formatted bool) string {
	n := d.node()
	if n == nil {
		return ""
	}
	if n.Type == ir.StringType {
		return n.String
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeWire(!formatted)); err != nil {
		return ""
	}
	return buf.String()
}

// String returns the compact form of d.
func (d *Doc) String() string {
	return d.ToString(false)
}

// Encode writes d to w. The output is pretty printed JSON unless opts say
// otherwise.
func (d *Doc) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	n := d.node()
	if n == nil {
		return ErrInvalid
	}
	return encode.Encode(n, w, opts...)
}

// MarshalJSON encodes d compactly, an invalid d as null.
func (d *Doc) MarshalJSON() ([]byte, error) {
	n := d.node()
	if n == nil {
		return []byte("null"), nil
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of d with the parse of data.
func (d *Doc) UnmarshalJSON(data []byte) error {
	return d.Parse(string(data))
}
