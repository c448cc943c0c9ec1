package jsondoc

import (
	"github.com/signadot/jsondoc/ir"
)

// Self setters update d's node in place when it already has the target
// kind. Otherwise the node is freed and replaced by a fresh one, inside its
// container if d is a non-owning reference to a member. The container then
// holds the new value under the same name and position, and d follows it;
// other references to the replaced member become invalid.

func (d *Doc) SetInt(v int) {
	if n := d.selfOf(ir.NumberType); n != nil {
		n.SetInt(int64(v))
		return
	}
	d.assign(ir.FromInt(int64(v)))
}

func (d *Doc) SetUint(v uint) {
	u := uintNode(v)
	if n := d.selfOf(ir.NumberType); n != nil {
		n.Int, n.Float = u.Int, u.Float
		return
	}
	d.assign(u)
}

// SetDouble stores v. NaN and +/-Inf are kept in memory but encode as
// null.
func (d *Doc) SetDouble(v float64) {
	if n := d.selfOf(ir.NumberType); n != nil {
		n.SetFloat(v)
		return
	}
	d.assign(ir.FromFloat(v))
}

func (d *Doc) SetBool(v bool) {
	if n := d.selfOf(ir.BoolType); n != nil {
		n.Bool = v
		return
	}
	d.assign(ir.FromBool(v))
}

func (d *Doc) SetString(v string) {
	if n := d.selfOf(ir.StringType); n != nil {
		n.String = v
		return
	}
	d.assign(ir.FromString(v))
}

func (d *Doc) SetNull() {
	if d.selfOf(ir.NullType) != nil {
		return
	}
	d.assign(ir.Null())
}

// SetObjectType replaces d's node with a new empty object.
func (d *Doc) SetObjectType() {
	d.assign(ir.Object())
}

// SetArrayType replaces d's node with a new empty array.
func (d *Doc) SetArrayType() {
	d.assign(ir.Array())
}

// Assign replaces d's node with n. An attached n is detached from its
// container first. A nil n leaves d invalid. Assigning d's own node or one
// of its ancestors does nothing.
func (d *Doc) Assign(n *ir.Node) {
	if n == nil {
		d.replaceRoot(nil, Owning)
		return
	}
	if n.Deleted() || (d.root != nil && within(d.root, n)) {
		return
	}
	d.assign(n.Detach())
}

// Named setters require d to be an object and name to be non-empty. A
// member of the right kind is updated in place; one of another kind is
// replaced at the same position; a missing one is appended.

func (d *Doc) setField(name string, t ir.Type, update func(*ir.Node), create func() *ir.Node) {
	obj := d.selfOf(ir.ObjectType)
	if obj == nil || name == "" {
		return
	}
	switch c := obj.Field(name); {
	case c == nil:
		obj.AddField(name, create())
	case c.Type == t:
		update(c)
	default:
		obj.ReplaceField(name, create())
	}
}

func (d *Doc) SetIntField(name string, v int) {
	d.setField(name, ir.NumberType,
		func(c *ir.Node) { c.SetInt(int64(v)) },
		func() *ir.Node { return ir.FromInt(int64(v)) })
}

func (d *Doc) SetUintField(name string, v uint) {
	d.setField(name, ir.NumberType,
		func(c *ir.Node) {
			u := uintNode(v)
			c.Int, c.Float = u.Int, u.Float
		},
		func() *ir.Node { return uintNode(v) })
}

func (d *Doc) SetDoubleField(name string, v float64) {
	d.setField(name, ir.NumberType,
		func(c *ir.Node) { c.SetFloat(v) },
		func() *ir.Node { return ir.FromFloat(v) })
}

// SetBoolField keeps the identity of an existing boolean member.
func (d *Doc) SetBoolField(name string, v bool) {
	d.setField(name, ir.BoolType,
		func(c *ir.Node) { c.Bool = v },
		func() *ir.Node { return ir.FromBool(v) })
}

// SetStringField sets member name to *v. A nil v removes the member if
// present and never creates one.
func (d *Doc) SetStringField(name string, v *string) {
	if v == nil {
		if obj := d.selfOf(ir.ObjectType); obj != nil && name != "" {
			obj.DeleteField(name)
		}
		return
	}
	d.setField(name, ir.StringType,
		func(c *ir.Node) { c.String = *v },
		func() *ir.Node { return ir.FromString(*v) })
}

// SetObjectField stores a deep copy of v under name, replacing any member
// of that name whatever its kind. It does nothing if v is invalid.
func (d *Doc) SetObjectField(name string, v *Doc) {
	d.SetNodeField(name, v.Root())
}

// SetArrayField is SetObjectField for arrays.
func (d *Doc) SetArrayField(name string, v *Doc) {
	d.SetNodeField(name, v.Root())
}

// SetNodeField stores a deep copy of n under name.
func (d *Doc) SetNodeField(name string, n *ir.Node) {
	obj := d.selfOf(ir.ObjectType)
	if obj == nil || name == "" || n == nil || n.Deleted() {
		return
	}
	c := n.Clone()
	if !obj.ReplaceField(name, c) {
		obj.AddField(name, c)
	}
}

// Appends hand the new node over to the container. They report false if d
// is not of the right kind or the node is attached elsewhere.

func (d *Doc) AppendString(v string) bool { return d.AppendNode(ir.FromString(v)) }
func (d *Doc) AppendInt(v int) bool       { return d.AppendNode(ir.FromInt(int64(v))) }
func (d *Doc) AppendUint(v uint) bool     { return d.AppendNode(uintNode(v)) }
func (d *Doc) AppendBool(v bool) bool     { return d.AppendNode(ir.FromBool(v)) }

// AppendNode appends n to array d. n should come from a constructor or
// from Release, since the array takes ownership of it.
func (d *Doc) AppendNode(n *ir.Node) bool {
	arr := d.selfOf(ir.ArrayType)
	if arr == nil {
		return false
	}
	return arr.AppendValue(n)
}

// AddNodeField stores n under name in object d, replacing any member of
// that name. Ownership of n passes to the object.
func (d *Doc) AddNodeField(name string, n *ir.Node) bool {
	obj := d.selfOf(ir.ObjectType)
	if obj == nil || name == "" || n == nil || n.Parent() != nil || n.Deleted() {
		return false
	}
	if obj.ReplaceField(name, n) {
		return true
	}
	return obj.AddField(name, n)
}
