package jsondoc

import "github.com/signadot/jsondoc/ir"

// Navigation returns non-owning Docs over nodes inside d's tree. A missing
// node, or one of the wrong kind, yields an invalid Doc.

func ref(n *ir.Node) *Doc {
	return FromNode(n, NonOwning)
}

// Object returns member name if it is an object.
func (d *Doc) Object(name string) *Doc {
	return ref(d.fieldOf(name, ir.ObjectType))
}

// Array returns member name if it is an array.
func (d *Doc) Array(name string) *Doc {
	return ref(d.fieldOf(name, ir.ArrayType))
}

// ArrayAt returns child i if it is an array.
func (d *Doc) ArrayAt(i int) *Doc {
	return ref(d.atOf(i, ir.ArrayType))
}

// ObjectAt returns child i if it is an object.
func (d *Doc) ObjectAt(i int) *Doc {
	return ref(d.atOf(i, ir.ObjectType))
}

// Field returns member name whatever its kind.
func (d *Doc) Field(name string) *Doc {
	return ref(d.field(name))
}

// At returns child i whatever its kind.
func (d *Doc) At(i int) *Doc {
	return ref(d.at(i))
}

func (d *Doc) Child() *Doc {
	if n := d.node(); n != nil {
		return ref(n.Child())
	}
	return ref(nil)
}

func (d *Doc) Next() *Doc {
	if n := d.node(); n != nil {
		return ref(n.Next())
	}
	return ref(nil)
}

func (d *Doc) Prev() *Doc {
	if n := d.node(); n != nil {
		return ref(n.Prev())
	}
	return ref(nil)
}

// Size returns the number of children, 0 for scalars and invalid docs.
func (d *Doc) Size() int {
	return d.node().Len()
}

// Erase removes and frees member name, reporting whether it was there.
func (d *Doc) Erase(name string) bool {
	obj := d.selfOf(ir.ObjectType)
	if obj == nil || name == "" {
		return false
	}
	return obj.DeleteField(name)
}
