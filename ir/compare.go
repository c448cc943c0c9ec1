package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType, ObjectType:
		return compareChildren(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same kinds, names, values and
// child order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareChildren(a, b *Node) int {
	ca, cb := a.child, b.child
	for ca != nil && cb != nil {
		if ca.named || cb.named {
			if c := strings.Compare(ca.name, cb.name); c != 0 {
				return c
			}
		}
		if c := Compare(ca, cb); c != 0 {
			return c
		}
		ca, cb = ca.next, cb.next
	}
	return cmp.Compare(a.size, b.size)
}
