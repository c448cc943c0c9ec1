package ir

// link appends c to the children of y without any checks.
func (y *Node) link(c *Node) {
	c.parent = y
	c.next = nil
	c.prev = y.last
	if y.last == nil {
		y.child = c
	} else {
		y.last.next = c
	}
	y.last = c
	y.size++
}

// canAttach reports whether c may become a child of y: y must be a live
// container, c must be detached, and c must not be y or one of its
// ancestors.
func (y *Node) canAttach(c *Node) bool {
	if y == nil || c == nil || y.deleted || c.deleted {
		return false
	}
	if y.Type.IsLeaf() || c.parent != nil {
		return false
	}
	for p := y; p != nil; p = p.parent {
		if p == c {
			return false
		}
	}
	return true
}

// AppendValue appends c as an element of array y.
func (y *Node) AppendValue(c *Node) bool {
	if y == nil || y.Type != ArrayType || !y.canAttach(c) {
		return false
	}
	y.link(c)
	c.name, c.named = "", false
	return true
}

// AddField appends c as member name of object y. Existing members of the
// same name are left alone.
func (y *Node) AddField(name string, c *Node) bool {
	if y == nil || y.Type != ObjectType || !y.canAttach(c) {
		return false
	}
	y.link(c)
	c.name, c.named = name, true
	return true
}

// Detach removes y from its parent, leaving its subtree intact. The name
// of a detached node is cleared.
func (y *Node) Detach() *Node {
	p := y.parent
	if p == nil {
		return y
	}
	if y.prev == nil {
		p.child = y.next
	} else {
		y.prev.next = y.next
	}
	if y.next == nil {
		p.last = y.prev
	} else {
		y.next.prev = y.prev
	}
	p.size--
	y.parent, y.next, y.prev = nil, nil, nil
	y.name, y.named = "", false
	return y
}

// DetachField detaches and returns the first member of y called name.
func (y *Node) DetachField(name string) *Node {
	c := y.Field(name)
	if c == nil {
		return nil
	}
	return c.Detach()
}

// DetachIndex detaches and returns the i'th child of y.
func (y *Node) DetachIndex(i int) *Node {
	c := y.Index(i)
	if c == nil {
		return nil
	}
	return c.Detach()
}

// ReplaceWith puts repl at the position y holds in its parent, under y's
// name, and detaches y.
func (y *Node) ReplaceWith(repl *Node) bool {
	p := y.parent
	if p == nil || repl == y || !p.canAttach(repl) {
		return false
	}
	repl.parent = p
	repl.prev = y.prev
	repl.next = y.next
	repl.name, repl.named = y.name, y.named
	if y.prev == nil {
		p.child = repl
	} else {
		y.prev.next = repl
	}
	if y.next == nil {
		p.last = repl
	} else {
		y.next.prev = repl
	}
	y.parent, y.next, y.prev = nil, nil, nil
	y.name, y.named = "", false
	return true
}

// ReplaceField replaces the first member of y called name with repl and
// deletes the old member.
func (y *Node) ReplaceField(name string, repl *Node) bool {
	c := y.Field(name)
	if c == nil {
		return false
	}
	if !c.ReplaceWith(repl) {
		return false
	}
	c.Delete()
	return true
}

// DeleteField detaches and deletes the first member of y called name.
func (y *Node) DeleteField(name string) bool {
	c := y.DetachField(name)
	if c == nil {
		return false
	}
	c.Delete()
	return true
}

// Delete detaches y and tears down its subtree. Deleted nodes refuse to be
// attached anywhere.
func (y *Node) Delete() {
	if y == nil || y.deleted {
		return
	}
	y.Detach()
	y.teardown()
}

func (y *Node) teardown() {
	for c := y.child; c != nil; {
		next := c.next
		c.parent, c.next, c.prev = nil, nil, nil
		c.name, c.named = "", false
		c.teardown()
		c = next
	}
	y.child, y.last, y.size = nil, nil, 0
	y.String = ""
	y.deleted = true
}
