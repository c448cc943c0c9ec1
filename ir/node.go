package ir

import (
	"maps"
	"math"
	"slices"
)

// Node is one element of a document tree.
//
// Scalar values live in the field matching Type. Numbers are held both as
// Float and as Int, the latter being the saturating integer conversion of
// the former; use SetInt and SetFloat to keep the two in sync.
//
// Arrays and objects hold their children in a doubly linked list. Object
// members carry a name, array elements don't.
type Node struct {
	Type Type

	Int    int64
	Float  float64
	String string
	Bool   bool

	name  string
	named bool

	parent      *Node
	child, last *Node
	next, prev  *Node
	size        int

	deleted bool
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int:   v,
		Float: float64(v),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:  NumberType,
		Int:   SaturateInt(f),
		Float: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// Object returns a new empty object.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// Array returns a new empty array.
func Array() *Node {
	return &Node{Type: ArrayType}
}

// FromSlice returns an array holding ySlice. Elements which are already
// attached elsewhere are cloned.
func FromSlice(ySlice []*Node) *Node {
	res := Array()
	for _, y := range ySlice {
		if y.parent != nil {
			y = y.Clone()
		}
		res.AppendValue(y)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an object with the fields of kvs in order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		v := kv.Val
		if v == nil {
			v = Null()
		} else if v.parent != nil {
			v = v.Clone()
		}
		res.AddField(kv.Key, v)
	}
	return res
}

// FromMap returns an object with the fields of yMap sorted by key.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

// SaturateInt converts f to an int64, clamping out of range values and
// mapping NaN to 0.
func SaturateInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// SetInt stores v in a number node.
func (y *Node) SetInt(v int64) {
	y.Int = v
	y.Float = float64(v)
}

// SetFloat stores f in a number node.
func (y *Node) SetFloat(f float64) {
	y.Float = f
	y.Int = SaturateInt(f)
}

// Name returns the member name of y, "" if y is not an object member.
func (y *Node) Name() string {
	return y.name
}

// HasName reports whether y is attached to an object.
func (y *Node) HasName() bool {
	return y.named
}

func (y *Node) Parent() *Node { return y.parent }
func (y *Node) Child() *Node  { return y.child }
func (y *Node) Next() *Node   { return y.next }
func (y *Node) Prev() *Node   { return y.prev }

// Last returns the last child of y.
func (y *Node) Last() *Node { return y.last }

// Len returns the number of children of y.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return y.size
}

// Deleted reports whether y was torn down by Delete.
func (y *Node) Deleted() bool {
	return y.deleted
}

// Values returns the children of y.
func (y *Node) Values() []*Node {
	res := make([]*Node, 0, y.size)
	for c := y.child; c != nil; c = c.next {
		res = append(res, c)
	}
	return res
}

// Field returns the first member of object y called name.
func (y *Node) Field(name string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for c := y.child; c != nil; c = c.next {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Index returns the i'th child of y, nil if out of range.
func (y *Node) Index(i int) *Node {
	if y == nil || i < 0 || i >= y.size {
		return nil
	}
	c := y.child
	for ; i > 0 && c != nil; i-- {
		c = c.next
	}
	return c
}

// IndexOf returns the position of y in its parent, -1 if detached.
func (y *Node) IndexOf() int {
	if y.parent == nil {
		return -1
	}
	i := 0
	for c := y.parent.child; c != nil; c = c.next {
		if c == y {
			return i
		}
		i++
	}
	return -1
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep copies y into dst. dst is left detached and unnamed.
func (y *Node) CloneTo(dst *Node) *Node {
	*dst = Node{
		Type:   y.Type,
		Int:    y.Int,
		Float:  y.Float,
		String: y.String,
		Bool:   y.Bool,
	}
	for c := y.child; c != nil; c = c.next {
		dc := c.Clone()
		dst.link(dc)
		dc.name = c.name
		dc.named = c.named
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for c := y.child; c != nil; {
			next := c.next
			if err := c.Visit(f); err != nil {
				return err
			}
			c = next
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.parent != nil {
		res = res.parent
	}
	return res
}
