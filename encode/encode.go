package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth    int
	indent   string
	wire     bool
	sortKeys bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %w: %s", ErrEncoding, format.ErrBadFormat, es.format)
	}
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	return bw.Flush()
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if node.Deleted() {
		return fmt.Errorf("%w: deleted node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, node.Type, "null"))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, node.Type, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, applyValueColor(es, node.Type, FormatNumber(node)))
	case ir.StringType:
		return writeString(w, applyValueColor(es, node.Type, token.Quote(node.String)))
	case ir.ArrayType:
		return encodeChildren(node, w, es, "[", "]")
	case ir.ObjectType:
		return encodeChildren(node, w, es, "{", "}")
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func encodeChildren(node *ir.Node, w *bufio.Writer, es *EncState, open, closing string) error {
	if err := writeString(w, applyColor(es, node.Type, SepColor, open)); err != nil {
		return err
	}
	children := node.Values()
	if len(children) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, closing))
	}
	if es.sortKeys && node.Type == ir.ObjectType {
		slices.SortStableFunc(children, func(a, b *ir.Node) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}
	es.depth++
	for i, c := range children {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			if err := writeField(w, es, c.Name()); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, closing))
}

func writeField(w *bufio.Writer, es *EncState, name string) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, token.Quote(name))); err != nil {
		return err
	}
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, sep))
}

// Helper functions for writing
func writeNL(w *bufio.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w *bufio.Writer, s string) error {
	_, err := w.WriteString(s)
	return err
}

// FormatNumber renders a number node. Integral values print as integers.
// JSON has no spelling for NaN or +/-Inf, so those print as null and read
// back as a null node, not a number.
func FormatNumber(node *ir.Node) string {
	f := node.Float
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	abs := math.Abs(f)
	if f == float64(node.Int) && abs < 1<<53 {
		return strconv.FormatInt(node.Int, 10)
	}
	verb := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		verb = 'e'
	}
	s := strconv.FormatFloat(f, verb, -1, 64)
	if verb == 'e' {
		// clean up e-09 to e-9
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}
