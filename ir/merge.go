package ir

// Merge moves the content of incoming into base.
//
// Nothing happens unless both are non-nil and of the same type, and
// neither lies inside the other. The children of incoming are then visited
// in order:
//
//   - elements without a name are detached and appended to base; arrays
//     concatenate, they are never merged by position.
//   - members whose name base lacks are detached and appended to base.
//   - members present on both sides with the same type, where both sides
//     have children, are merged recursively and stay in incoming.
//   - any other member is detached from incoming and replaces the base
//     member of that name in place.
//
// So leaves of incoming win over leaves of base, and on return incoming
// only holds the (drained) containers that were merged recursively.
func Merge(base, incoming *Node) {
	if base == nil || incoming == nil || base.Type != incoming.Type {
		return
	}
	if base.deleted || incoming.deleted {
		return
	}
	if contains(incoming, base) || contains(base, incoming) {
		return
	}
	c := incoming.child
	for c != nil {
		next := c.next
		if !c.named {
			base.AppendValue(c.Detach())
			c = next
			continue
		}
		name := c.name
		bc := base.Field(name)
		switch {
		case bc == nil:
			base.AddField(name, c.Detach())
		case bc.child != nil && c.child != nil && bc.Type == c.Type:
			Merge(bc, c)
		default:
			base.ReplaceField(name, c.Detach())
		}
		c = next
	}
}

// contains reports whether y is anc or lies below it.
func contains(anc, y *Node) bool {
	for p := y; p != nil; p = p.parent {
		if p == anc {
			return true
		}
	}
	return false
}
