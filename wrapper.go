package jsondoc

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// Doc is a reference to a document node together with its ownership. The
// zero Doc is invalid and owning.
type Doc struct {
	root *ir.Node
	own  Ownership
}

// New returns an empty, invalid document.
func New() *Doc {
	return &Doc{}
}

// Parse parses text into a new owning document. Empty text yields an
// invalid document and no error.
func Parse(text string, opts ...parse.ParseOption) (*Doc, error) {
	d := New()
	if err := d.Parse(text, opts...); err != nil {
		return d, err
	}
	return d, nil
}

// FromNode wraps n with the given ownership.
func FromNode(n *ir.Node, own Ownership) *Doc {
	return &Doc{root: n, own: own}
}

func NewObject() *Doc { return FromNode(ir.Object(), Owning) }
func NewArray() *Doc  { return FromNode(ir.Array(), Owning) }
func NewNull() *Doc   { return FromNode(ir.Null(), Owning) }

// Scalar constructors. A NaN or infinite double encodes as null.
func NewString(v string) *Doc  { return FromNode(ir.FromString(v), Owning) }
func NewInt(v int) *Doc        { return FromNode(ir.FromInt(int64(v)), Owning) }
func NewUint(v uint) *Doc      { return FromNode(uintNode(v), Owning) }
func NewDouble(v float64) *Doc { return FromNode(ir.FromFloat(v), Owning) }
func NewBool(v bool) *Doc      { return FromNode(ir.FromBool(v), Owning) }

// Parse frees the owned tree and replaces it with the parse of text. Empty
// text leaves d invalid. On a parse error d is left invalid.
func (d *Doc) Parse(text string, opts ...parse.ParseOption) error {
	d.replaceRoot(nil, Owning)
	if text == "" {
		return nil
	}
	n, err := parse.ParseString(text, opts...)
	if err != nil {
		return err
	}
	d.root = n
	return nil
}

// Valid reports whether d refers to a live node.
func (d *Doc) Valid() bool {
	return d != nil && d.root != nil && !d.root.Deleted()
}

func (d *Doc) Ownership() Ownership {
	return d.own
}

func (d *Doc) Owning() bool {
	return d.own == Owning
}

// Root returns the node d refers to, nil if d is invalid. The node remains
// owned by d or by its container.
func (d *Doc) Root() *ir.Node {
	return d.node()
}

// Clone returns an owning deep copy of d.
func (d *Doc) Clone() *Doc {
	return FromNode(d.duplicate(), Owning)
}

// CopyFrom replaces the content of d with a deep copy of src. d ends up
// owning the copy whatever the ownership of src.
func (d *Doc) CopyFrom(src *Doc) {
	if d == src {
		return
	}
	d.replaceRoot(src.duplicate(), Owning)
}

// Move returns a Doc holding the reference and ownership of d, which is
// left invalid and non-owning.
func (d *Doc) Move() *Doc {
	res := FromNode(d.root, d.own)
	d.root, d.own = nil, NonOwning
	return res
}

// MoveFrom frees the owned tree of d and transfers the reference and
// ownership of src to d. src is left invalid and non-owning.
func (d *Doc) MoveFrom(src *Doc) {
	if d == src {
		return
	}
	d.replaceRoot(src.root, src.own)
	src.root, src.own = nil, NonOwning
}

// Take returns an independently owned Doc. If d owns its tree, the tree
// moves to the result and d is left invalid and non-owning. Otherwise the
// result holds a deep copy and d is unchanged.
func (d *Doc) Take() *Doc {
	if d.own == Owning {
		if debug.Ownership() {
			debug.Logf("take %s\n", d.root)
		}
		return d.Move()
	}
	return d.Clone()
}

// Release hands the owned node to the caller without freeing it and leaves
// d invalid and non-owning. A non-owning d returns nil and is unchanged.
func (d *Doc) Release() *ir.Node {
	if d.own != Owning {
		return nil
	}
	n := d.root
	d.root, d.own = nil, NonOwning
	return n
}

// Close frees the tree if d owns it. A non-owning Doc only forgets its
// reference.
func (d *Doc) Close() {
	d.replaceRoot(nil, Owning)
}

func (d *Doc) node() *ir.Node {
	if !d.Valid() {
		return nil
	}
	return d.root
}

func (d *Doc) duplicate() *ir.Node {
	n := d.node()
	if n == nil {
		return nil
	}
	return n.Clone()
}

// replaceRoot makes n the root of d with ownership own, freeing the
// previous root if d owned it. A node taken from inside the freed tree is
// detached first so that it survives, and d owns it.
func (d *Doc) replaceRoot(n *ir.Node, own Ownership) {
	old := d.root
	if old != nil && old != n && d.own == Owning {
		if n != nil && within(n, old) {
			n.Detach()
			own = Owning
		}
		if debug.Ownership() {
			debug.Logf("free %s\n", old)
		}
		old.Delete()
	}
	d.root, d.own = n, own
}

// assign installs fresh in place of the current root. A non-owning Doc
// referring to an attached node replaces it inside its container and stays
// non-owning, or does nothing if the container refuses fresh; otherwise d
// owns fresh.
func (d *Doc) assign(fresh *ir.Node) {
	old := d.node()
	if old != nil && d.own == NonOwning && old.Parent() != nil {
		if old.ReplaceWith(fresh) {
			old.Delete()
			d.root = fresh
		}
		return
	}
	d.replaceRoot(fresh, Owning)
}

func within(n, anc *ir.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		if p == anc {
			return true
		}
	}
	return false
}
