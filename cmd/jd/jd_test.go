package main

import (
	"bytes"
	"testing"

	"github.com/signadot/jsondoc"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	d, err := jsondoc.Parse(`{"a":[{"b":1},{"b":2}],"c":{"d":"x"}}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want []string
	}{
		{"$", []string{`{"a":[{"b":1},{"b":2}],"c":{"d":"x"}}`}},
		{"c.d", []string{`x`}},
		{".a[1].b", []string{`2`}},
		{"$.a[*].b", []string{`1`, `2`}},
		{"$..b", []string{`1`, `2`}},
		{`"c".d`, []string{`x`}},
		{"a[5]", nil},
		{"c[0]", nil},
		{"missing", nil},
	}
	for _, tt := range tests {
		p, err := parseGetPath(tt.path)
		if err != nil {
			t.Errorf("parseGetPath(%q): %v", tt.path, err)
			continue
		}
		res, err := lookup(d, p)
		if err != nil {
			t.Errorf("lookup(%q): %v", tt.path, err)
			continue
		}
		var got []string
		for _, r := range res {
			if r.Owning() {
				t.Errorf("lookup(%q) returned an owning doc", tt.path)
			}
			got = append(got, r.String())
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("lookup(%q) (-want +got):\n%s", tt.path, diff)
		}
	}
	if _, err := parseGetPath(""); err == nil {
		t.Errorf("empty path accepted")
	}
}

func TestFold(t *testing.T) {
	docs := []string{`{"a":1,"l":[1]}`, `{"a":2,"b":true,"l":[2]}`}
	for _, tt := range []struct {
		reverse bool
		want    string
	}{
		{false, `{"a":2,"l":[1,2],"b":true}`},
		{true, `{"a":1,"b":true,"l":[2,1]}`},
	} {
		acc := jsondoc.New()
		for _, s := range docs {
			d, err := jsondoc.Parse(s)
			if err != nil {
				t.Fatal(err)
			}
			fold(acc, d, tt.reverse)
			d.Close()
		}
		if got := acc.String(); got != tt.want {
			t.Errorf("reverse=%t: got %s want %s", tt.reverse, got, tt.want)
		}
	}
}

func TestLineDiff(t *testing.T) {
	a := "{\n\t\"a\": 1,\n\t\"b\": 2\n}\n"
	b := "{\n\t\"a\": 1,\n\t\"b\": 3\n}\n"
	buf := bytes.NewBuffer(nil)
	differs, err := writeLineDiff(buf, lineDiff(a, b), false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatalf("expected a difference")
	}
	want := " {\n \t\"a\": 1,\n-\t\"b\": 2\n+\t\"b\": 3\n }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("diff output (-want +got):\n%s", diff)
	}

	buf.Reset()
	differs, err = writeLineDiff(buf, lineDiff(a, a), false)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("identical inputs: differs=%t err=%v out=%q", differs, err, buf.String())
	}
}
