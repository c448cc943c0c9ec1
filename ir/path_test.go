package ir_test

import (
	"errors"
	"testing"

	"github.com/signadot/jsondoc/ir"
)

func TestNodePath(t *testing.T) {
	y := mustParse(t, `{"a":[0,{"b.c":1}],"d":null}`)
	tests := []struct {
		node *ir.Node
		want string
	}{
		{y, "$"},
		{y.Field("a"), "$.a"},
		{y.Field("a").Index(1), "$.a[1]"},
		{y.Field("a").Index(1).Field("b.c"), `$.a[1]."b.c"`},
		{y.Field("d"), "$.d"},
	}
	for _, tt := range tests {
		if got := tt.node.Path(); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
		got, err := y.GetPath(tt.want)
		if err != nil {
			t.Errorf("GetPath(%s): %v", tt.want, err)
			continue
		}
		if got != tt.node {
			t.Errorf("GetPath(%s) returned a different node", tt.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	for _, s := range []string{"$", "$.a", "$[3]", "$.a[*].b", "$..x", "$..[0].y", `$."q\"d".z`, `$."".e`} {
		p, err := ir.ParsePath(s)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", s, err)
			continue
		}
		if got := p.String(); got != s {
			t.Errorf("ParsePath(%q).String() = %q", s, got)
		}
	}
	for _, s := range []string{"", "a", "$a", "$[x]", "$[1", `$."open`, "$.", "$..", "$.a..", "$.[0]"} {
		if _, err := ir.ParsePath(s); !errors.Is(err, ir.ErrPath) {
			t.Errorf("ParsePath(%q): expected ErrPath, got %v", s, err)
		}
	}
}

func TestGetPathMissing(t *testing.T) {
	y := mustParse(t, `{"a":[1,2]}`)
	for _, s := range []string{"$.b", "$.a[5]", "$.a.x", "$[0]"} {
		got, err := y.GetPath(s)
		if err != nil || got != nil {
			t.Errorf("GetPath(%s) = %v, %v", s, got, err)
		}
	}
	if _, err := y.GetPath("$.a[*]"); !errors.Is(err, ir.ErrPath) {
		t.Errorf("expected ErrPath for [*], got %v", err)
	}
}

func TestListPath(t *testing.T) {
	y := mustParse(t, `{"a":[{"x":1},{"x":2},{"y":3}],"x":0}`)
	res, err := y.ListPath(nil, "$.a[*].x")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].Int != 1 || res[1].Int != 2 {
		t.Errorf("got %d results", len(res))
	}
	res, err = y.ListPath(nil, "$..x")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Errorf("recursive: got %d results", len(res))
	}
}
