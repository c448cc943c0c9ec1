// Package jsondoc provides Doc, a handle on a JSON document tree which
// knows whether it owns the tree.
//
// A Doc holds a reference to an [ir.Node] plus an [Ownership]. An owning Doc
// frees its tree on Close, or when the tree is replaced by Parse, a self
// setter or one of the move operations. A non-owning Doc, such as the ones
// returned by navigation, only ever forgets its reference.
//
// Documents are built by parsing:
//
//	d, err := jsondoc.Parse(`{"a":1,"b":{"x":1}}`)
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//	d.Object("b").SetIntField("y", 2)
//	fmt.Println(d) // {"a":1,"b":{"x":1,"y":2}}
//
// or with the typed constructors [NewObject], [NewArray] and friends.
//
// Queries never fail: missing keys, out of range indices, kind mismatches
// and invalid documents all yield the caller's default, false, zero or an
// invalid Doc. Doc values are not safe for concurrent use.
package jsondoc
