package encode

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/signadot/jsondoc/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node, es)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if n := len(d); n > 0 && d[n-1] == '\n' {
		d = d[:n-1]
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node, es *EncState) (any, error) {
	if node.Deleted() {
		return nil, fmt.Errorf("%w: deleted node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		f := node.Float
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil
		}
		if f == float64(node.Int) && math.Abs(f) < 1<<53 {
			return node.Int, nil
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for c := node.Child(); c != nil; c = c.Next() {
			v, err := toYAML(c, es)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Len())
		for c := node.Child(); c != nil; c = c.Next() {
			v, err := toYAML(c, es)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: c.Name(), Value: v})
		}
		if es.sortKeys {
			sortMapSlice(res)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func sortMapSlice(ms yaml.MapSlice) {
	slices.SortStableFunc(ms, func(a, b yaml.MapItem) int {
		return strings.Compare(a.Key.(string), b.Key.(string))
	})
}
