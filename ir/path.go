package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/token"
)

// Path returns the location of y from its root, such as $.a[2]."b.c".
func (y *Node) Path() string {
	var steps []string
	for c := y; c.parent != nil; c = c.parent {
		if c.named {
			steps = append(steps, "."+pathField(c.name))
		} else {
			steps = append(steps, "["+strconv.Itoa(c.IndexOf())+"]")
		}
	}
	var b strings.Builder
	b.WriteByte('$')
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteString(steps[i])
	}
	return b.String()
}

// Path is a parsed path, one step per element. A Subtree step applies its
// Next step at every depth; the zero Path is the root itself.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	afterSubtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			b.WriteString("..")
			afterSubtree = true
			continue
		case x.IndexAll:
			b.WriteString("[*]")
		case x.Index != nil:
			b.WriteString("[" + strconv.Itoa(*x.Index) + "]")
		case x.Field != nil:
			if !afterSubtree {
				b.WriteByte('.')
			}
			b.WriteString(pathField(*x.Field))
		}
		afterSubtree = false
	}
	return b.String()
}

// Wildcard reports whether p can match more than one node.
func (p *Path) Wildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.IndexAll || x.Subtree {
			return true
		}
	}
	return false
}

// ParsePath parses paths such as $.a[3]."b.c"[*]..d. Member names that are
// not plain words are written as JSON strings.
func ParsePath(s string) (*Path, error) {
	if !strings.HasPrefix(s, "$") {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, s)
	}
	head := &Path{}
	var tail *Path
	for rest := s[1:]; rest != ""; {
		step, n, err := parseStep(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at %d: %w", ErrPath, s, len(s)-len(rest), err)
		}
		rest = rest[n:]
		if tail == nil {
			head = step
		} else {
			tail.Next = step
		}
		tail = step
		if step.Subtree {
			tail = step.Next
		}
	}
	return head, nil
}

func parseStep(s string) (*Path, int, error) {
	switch {
	case strings.HasPrefix(s, ".."):
		var (
			next *Path
			n    int
			err  error
		)
		if strings.HasPrefix(s[2:], "[") {
			next, n, err = parseIndex(s[2:])
		} else {
			next, n, err = parseMember(s[2:])
		}
		if err != nil {
			return nil, 0, err
		}
		return &Path{Subtree: true, Next: next}, n + 2, nil
	case s[0] == '.':
		p, n, err := parseMember(s[1:])
		return p, n + 1, err
	case s[0] == '[':
		return parseIndex(s)
	default:
		return nil, 0, errors.New("expected '.' or '['")
	}
}

func parseMember(s string) (*Path, int, error) {
	if s == "" {
		return nil, 0, errors.New("missing member name")
	}
	if s[0] == '"' {
		n, err := token.ScanQuoted([]byte(s))
		if err != nil {
			return nil, 0, err
		}
		name := token.QuotedToString([]byte(s[:n]))
		return &Path{Field: &name}, n, nil
	}
	n := strings.IndexAny(s, ".[")
	switch n {
	case -1:
		n = len(s)
	case 0:
		return nil, 0, errors.New("missing member name")
	}
	name := s[:n]
	return &Path{Field: &name}, n, nil
}

func parseIndex(s string) (*Path, int, error) {
	end := strings.IndexByte(s, ']')
	if end == -1 {
		return nil, 0, errors.New("unterminated index")
	}
	if s[1:end] == "*" {
		return &Path{IndexAll: true}, end + 1, nil
	}
	u, err := strconv.ParseUint(s[1:end], 10, 31)
	if err != nil {
		return nil, 0, err
	}
	i := int(u)
	return &Path{Index: &i}, end + 1, nil
}

// pathField writes name bare when it is a plain word and as a JSON string
// otherwise.
func pathField(name string) string {
	if name == "" {
		return token.Quote(name)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-' {
			continue
		}
		return token.Quote(name)
	}
	return name
}

// GetPath returns the node at path s below y, or nil if there is none. The
// result is part of y's tree, not a copy.
func (y *Node) GetPath(s string) (*Node, error) {
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	if p.Wildcard() {
		return nil, fmt.Errorf("%w: %s can match more than one node", ErrPath, s)
	}
	res := y
	for x := p; x != nil && res != nil; x = x.Next {
		switch {
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, nil
			}
			res = res.Index(*x.Index)
		case x.Field != nil:
			res = res.Field(*x.Field)
		}
	}
	return res, nil
}

// ListPath appends to dst every node matching path s below y, in document
// order.
func (y *Node) ListPath(dst []*Node, s string) ([]*Node, error) {
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return y.list(dst, p), nil
}

func (y *Node) list(dst []*Node, p *Path) []*Node {
	if p == nil {
		return append(dst, y)
	}
	switch {
	case p.Subtree:
		_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
			if !isPost {
				dst = n.list(dst, p.Next)
			}
			return true, nil
		})
	case p.IndexAll:
		if y.Type != ArrayType {
			return dst
		}
		for c := y.child; c != nil; c = c.next {
			dst = c.list(dst, p.Next)
		}
	case p.Index != nil:
		if y.Type != ArrayType {
			return dst
		}
		if c := y.Index(*p.Index); c != nil {
			dst = c.list(dst, p.Next)
		}
	case p.Field != nil:
		for c := y.child; c != nil; c = c.next {
			if c.named && c.name == *p.Field {
				dst = c.list(dst, p.Next)
			}
		}
	default:
		dst = y.list(dst, p.Next)
	}
	return dst
}
