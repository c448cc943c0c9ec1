package ir

import (
	"testing"
)

func names(y *Node) string {
	s := ""
	for c := y.Child(); c != nil; c = c.Next() {
		s += c.Name()
	}
	return s
}

func checkLinks(t *testing.T, y *Node) {
	t.Helper()
	n := 0
	var prev *Node
	for c := y.Child(); c != nil; c = c.Next() {
		if c.Parent() != y {
			t.Errorf("child %d: wrong parent", n)
		}
		if c.Prev() != prev {
			t.Errorf("child %d: wrong prev", n)
		}
		if c.HasName() != (y.Type == ObjectType) {
			t.Errorf("child %d: named=%t in %s", n, c.HasName(), y.Type)
		}
		prev = c
		n++
	}
	if y.Last() != prev {
		t.Errorf("wrong last")
	}
	if y.Len() != n {
		t.Errorf("size %d, counted %d", y.Len(), n)
	}
}

func TestAddDetach(t *testing.T) {
	obj := Object()
	for _, n := range []string{"a", "b", "c", "d"} {
		if !obj.AddField(n, FromString(n)) {
			t.Fatalf("AddField %s failed", n)
		}
	}
	checkLinks(t, obj)

	b := obj.DetachField("b")
	if b == nil || b.Parent() != nil || b.HasName() {
		t.Fatalf("bad detached node %+v", b)
	}
	checkLinks(t, obj)
	if got := names(obj); got != "acd" {
		t.Errorf("got %q", got)
	}
	if obj.DetachIndex(0).String != "a" || obj.DetachIndex(1).String != "d" {
		t.Errorf("DetachIndex returned the wrong nodes")
	}
	checkLinks(t, obj)
	if got := names(obj); got != "c" {
		t.Errorf("got %q", got)
	}
	if obj.DetachField("zz") != nil || obj.DetachIndex(5) != nil {
		t.Errorf("detaching missing children should yield nil")
	}
}

func TestAttachRules(t *testing.T) {
	arr := Array()
	obj := Object()
	s := FromString("x")
	if obj.AppendValue(FromInt(1)) {
		t.Errorf("objects take fields, not values")
	}
	if arr.AddField("a", FromInt(1)) {
		t.Errorf("arrays take values, not fields")
	}
	if FromInt(1).AppendValue(s) {
		t.Errorf("scalars take no children")
	}
	if !arr.AppendValue(s) {
		t.Fatalf("append failed")
	}
	if obj.AddField("s", s) {
		t.Errorf("node with two parents")
	}
	if arr.AppendValue(arr) {
		t.Errorf("node is its own child")
	}
	inner := Array()
	arr.AppendValue(inner)
	outer := arr
	if inner.AppendValue(outer) {
		t.Errorf("cycle created")
	}
	checkLinks(t, arr)
}

func TestReplace(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "c", Val: FromInt(3)},
	})
	old := obj.Field("b")
	if !obj.ReplaceField("b", FromString("two")) {
		t.Fatalf("replace failed")
	}
	checkLinks(t, obj)
	if got := names(obj); got != "abc" {
		t.Errorf("position not preserved: %q", got)
	}
	if obj.Field("b").String != "two" {
		t.Errorf("replacement missing")
	}
	if !old.Deleted() {
		t.Errorf("replaced node should be deleted")
	}
	if obj.ReplaceField("zz", FromInt(0)) {
		t.Errorf("replacing a missing field")
	}
	first := obj.Child()
	if !first.ReplaceWith(Null()) {
		t.Fatalf("ReplaceWith failed")
	}
	if obj.Child().Type != NullType || obj.Child().Name() != "a" || first.Parent() != nil {
		t.Errorf("ReplaceWith at head")
	}
	checkLinks(t, obj)
}

func TestDelete(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "b", Val: FromString("s")},
	})
	a := obj.Field("a")
	elt := a.Child()
	if !obj.DeleteField("a") {
		t.Fatalf("DeleteField failed")
	}
	if !a.Deleted() || !elt.Deleted() || a.Len() != 0 || elt.Parent() != nil {
		t.Errorf("subtree not torn down")
	}
	checkLinks(t, obj)
	if obj.DeleteField("a") {
		t.Errorf("deleted twice")
	}
	if Array().AppendValue(a) {
		t.Errorf("deleted nodes cannot be reattached")
	}
}

func TestIndexOf(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(0), FromInt(1), FromInt(2)})
	if arr.Index(2).IndexOf() != 2 {
		t.Errorf("IndexOf")
	}
	if arr.IndexOf() != -1 {
		t.Errorf("root IndexOf")
	}
	if arr.Index(-1) != nil || arr.Index(3) != nil {
		t.Errorf("out of range Index")
	}
	vs := arr.Values()
	if len(vs) != 3 || vs[1].Int != 1 {
		t.Errorf("Values")
	}
}
