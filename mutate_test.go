package jsondoc_test

import (
	"testing"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/ir"

	"github.com/google/go-cmp/cmp"
)

func TestSelfSetters(t *testing.T) {
	d := jsondoc.NewInt(1)
	r := d.Root()
	d.SetDouble(2.5)
	d.SetUint(7)
	if d.Root() != r || d.IntValue(0) != 7 || d.DoubleValue(0) != 7 {
		t.Errorf("numeric setters should update in place")
	}
	d.SetString("s")
	if !r.Deleted() || d.StringValue("") != "s" || !d.Owning() {
		t.Errorf("retype should free the old node")
	}
	s := d.Root()
	d.SetString("t")
	if d.Root() != s || d.String() != "t" {
		t.Errorf("same kind string set should update in place")
	}
	d.SetBool(true)
	d.SetBool(false)
	if !d.IsBool() || d.BoolValue(true) {
		t.Errorf("SetBool")
	}
	d.SetNull()
	if !d.IsNull() {
		t.Errorf("SetNull")
	}
	d.SetObjectType()
	if !d.IsObject() || d.Size() != 0 {
		t.Errorf("SetObjectType")
	}
	d.SetArrayType()
	if !d.IsArray() || d.Size() != 0 {
		t.Errorf("SetArrayType")
	}

	invalid := jsondoc.New()
	invalid.SetInt(3)
	if !invalid.Valid() || !invalid.Owning() || invalid.IntValue(0) != 3 {
		t.Errorf("setting an invalid doc should create an owned node")
	}
}

func TestSelfSetterOnMember(t *testing.T) {
	d := mustParse(t, `{"a":"s","b":2}`)
	a := d.Field("a")
	other := d.Field("a")
	old := a.Root()
	a.SetInt(3)
	if other.Valid() {
		t.Errorf("reference to the replaced member is still valid")
	}
	if got := d.String(); got != `{"a":3,"b":2}` {
		t.Errorf("got %s", got)
	}
	if a.Owning() || !old.Deleted() || a.Name() != "a" {
		t.Errorf("member retype: owning=%t deleted=%t name=%q", a.Owning(), old.Deleted(), a.Name())
	}
	d.Field("b").SetObjectType()
	if got := d.String(); got != `{"a":3,"b":{}}` {
		t.Errorf("got %s", got)
	}
}

func TestAssign(t *testing.T) {
	d := mustParse(t, `{"a":{"x":1},"b":2}`)
	x := d.Root().Field("a")
	d.Assign(x)
	if got := d.String(); got != `{"x":1}` {
		t.Errorf("assigning a member: got %s", got)
	}
	if x.Parent() != nil || !d.Owning() {
		t.Errorf("assigned node should be detached and owned")
	}
	d.Assign(ir.FromSlice([]*ir.Node{ir.Null()}))
	if got := d.String(); got != `[null]` || !x.Deleted() {
		t.Errorf("got %s", got)
	}
	d.Assign(nil)
	if d.Valid() {
		t.Errorf("assigning nil should invalidate")
	}
}

func TestAssignAncestor(t *testing.T) {
	root := mustParse(t, `{"a":{"b":{"c":1}}}`)
	a := root.Object("a")
	b := a.Object("b")
	b.Assign(root.Root())
	b.Assign(root.Root().Field("a"))
	b.Assign(b.Root())
	a.Assign(root.Root())
	if got := root.String(); got != `{"a":{"b":{"c":1}}}` {
		t.Errorf("got %s", got)
	}
	if !root.Owning() || a.Owning() || b.Owning() {
		t.Errorf("ownership changed: root=%s a=%s b=%s", root.Ownership(), a.Ownership(), b.Ownership())
	}
	b.Close()
	a.Close()
	if !root.Valid() || !root.Object("a").Has("b") {
		t.Errorf("closing references freed the tree: %s", root)
	}
}

func TestSetFields(t *testing.T) {
	d := mustParse(t, `{"i":1,"s":"x","b":true,"o":{}}`)
	i := d.Root().Field("i")
	d.SetIntField("i", 5)
	d.SetDoubleField("s", 1.5)
	d.SetUintField("u", 9)
	d.SetStringField("o", ptr("str"))
	d.SetIntField("", 1)
	if got := d.String(); got != `{"i":5,"s":1.5,"b":true,"o":"str","u":9}` {
		t.Errorf("got %s", got)
	}
	if d.Root().Field("i") != i {
		t.Errorf("same kind member should be updated in place")
	}

	arr := mustParse(t, `[1]`)
	arr.SetIntField("a", 1)
	jsondoc.New().SetIntField("a", 1)
	if got := arr.String(); got != `[1]` {
		t.Errorf("setting a field on an array: got %s", got)
	}
}

func ptr[T any](v T) *T { return &v }

func TestSetStringFieldNil(t *testing.T) {
	d := mustParse(t, `{"k":"v","n":1}`)
	d.SetStringField("k", nil)
	d.SetStringField("absent", nil)
	if got := d.String(); got != `{"n":1}` {
		t.Errorf("got %s", got)
	}
	if d.IsNullField("absent") || d.Has("absent") {
		t.Errorf("nil string created a field")
	}
	d.SetStringField("n", nil)
	if d.Size() != 0 {
		t.Errorf("nil string should remove a member of any kind")
	}
}

func TestSetBoolFieldNoop(t *testing.T) {
	d := jsondoc.NewObject()
	d.SetBoolField("flag", true)
	n := d.Root().Field("flag")
	d.SetBoolField("flag", true)
	if d.Size() != 1 || d.Root().Field("flag") != n || !d.GetBool("flag", false) {
		t.Errorf("repeated SetBoolField changed the object: %s", d)
	}
	d.SetBoolField("flag", false)
	if d.Root().Field("flag") != n || d.GetBool("flag", true) {
		t.Errorf("SetBoolField(false): %s", d)
	}
}

func TestSetObjectField(t *testing.T) {
	d := mustParse(t, `{"a":1,"b":2}`)
	v := mustParse(t, `{"x":[1]}`)
	d.SetObjectField("a", v)
	d.SetArrayField("c", v.Array("x"))
	d.SetObjectField("d", jsondoc.New())
	d.SetObjectField("", v)
	if got := d.String(); got != `{"a":{"x":[1]},"b":2,"c":[1]}` {
		t.Errorf("got %s", got)
	}
	if d.Root().Field("a") == v.Root() {
		t.Errorf("value was not copied")
	}
	v.Array("x").AppendInt(2)
	if d.Object("a").Array("x").Size() != 1 || d.Array("c").Size() != 1 {
		t.Errorf("copy shares state with the source")
	}
	d.SetNodeField("self", d.Root())
	if got := d.Object("self").String(); got != `{"a":{"x":[1]},"b":2,"c":[1]}` {
		t.Errorf("self copy: got %s", got)
	}
}

func TestAppend(t *testing.T) {
	a := jsondoc.NewArray()
	a.AppendString("s")
	a.AppendInt(-1)
	a.AppendUint(2)
	a.AppendBool(true)
	a.AppendNode(ir.Object())
	if got := a.String(); got != `["s",-1,2,true,{}]` {
		t.Errorf("got %s", got)
	}
	if jsondoc.NewObject().AppendInt(1) || jsondoc.New().AppendBool(true) {
		t.Errorf("append to a non-array succeeded")
	}
	attached := a.Root().Index(0)
	if a.AppendNode(attached) {
		t.Errorf("appending an attached node succeeded")
	}
	if a.AppendNode(a.Root()) {
		t.Errorf("appending an array to itself succeeded")
	}

	o := jsondoc.NewObject()
	if !o.AddNodeField("k", ir.FromInt(1)) || !o.AddNodeField("k", ir.FromInt(2)) {
		t.Fatalf("AddNodeField failed")
	}
	if o.AddNodeField("", ir.Null()) || a.AddNodeField("k", ir.Null()) {
		t.Errorf("AddNodeField should refuse empty names and arrays")
	}
	if diff := cmp.Diff(`{"k":2}`, o.String()); diff != "" {
		t.Errorf("AddNodeField (-want +got):\n%s", diff)
	}
}
