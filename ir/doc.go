// Package ir provides the node tree underlying jsondoc documents.
//
// # Overview
//
// A document is a tree of [Node]s. Every node is a tagged union over the
// JSON types; the Type field says which value field is meaningful.
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Float, with Int its saturating integer conversion
//   - StringType: String
//   - ArrayType: ordered, unnamed children
//   - ObjectType: ordered, named children
//
// # Children
//
// Containers keep their children in a doubly linked list reachable through
// Child, Next and Prev, with Parent pointing back up. Detaching a child is
// O(1) and does not disturb the iteration of its siblings as long as the
// caller captured Next beforehand, which is what [Merge] relies on.
//
// A node has at most one parent. AppendValue, AddField and ReplaceWith
// refuse nodes which are already attached, deleted, or ancestors of the
// container. Object member names are not required to be unique; lookups
// return the first match.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Ownership
//
// The ir package has no notion of ownership: that lives in the jsondoc
// wrapper. [Node.Delete] is the destructor it calls; it detaches a node and
// tears down its subtree so that stale references observe an empty, deleted
// node rather than a tree that is still being mutated elsewhere.
package ir
