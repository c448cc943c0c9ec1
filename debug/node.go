package debug

import (
	"bytes"
	"fmt"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
)

func nodeString(x *ir.Node) string {
	if x == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", *x)
	}
	return buf.String()
}
