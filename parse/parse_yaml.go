package parse

import (
	"fmt"
	"math"

	"github.com/signadot/jsondoc/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v, 0, opts)
}

func fromYAML(v any, depth int, opts *parseOpts) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case uint:
		return fromYAML(uint64(x), depth, opts)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: %v", ErrRange, x)
		}
		return ir.FromFloat(x), nil
	case float32:
		return fromYAML(float64(x), depth, opts)
	}
	if depth >= opts.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepth, opts.maxDepth)
	}
	switch x := v.(type) {
	case []any:
		res := ir.Array()
		for _, e := range x {
			n, err := fromYAML(e, depth+1, opts)
			if err != nil {
				return nil, err
			}
			res.AppendValue(n)
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			n, err := fromYAML(item.Value, depth+1, opts)
			if err != nil {
				return nil, err
			}
			key := yamlKey(item.Key)
			if existing := res.Field(key); existing != nil {
				existing.ReplaceWith(n)
				existing.Delete()
				continue
			}
			res.AddField(key, n)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromYAML(e, depth+1, opts)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml value %T", ErrParse, v)
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
