package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := parseGetPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args[1:]) {
		d, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		err = getDoc(cfg, cc, d, p)
		d.Close()
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, p, err)
		}
	}
	return nil
}

func getDoc(cfg *GetConfig, cc *cli.Context, d *jsondoc.Doc, p *ir.Path) error {
	res, err := lookup(d, p)
	if err != nil {
		return err
	}
	if len(res) == 0 {
		return fmt.Errorf("nothing at %s", p)
	}
	for _, r := range res {
		if err := writeDoc(cfg.MainConfig, cc.Out, r); err != nil {
			return err
		}
	}
	return nil
}

// parseGetPath accepts paths with or without the leading $, so that a.b[1]
// means $.a.b[1].
func parseGetPath(s string) (*ir.Path, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("%w: empty path", ir.ErrPath)
	case strings.HasPrefix(s, "$"):
	case s[0] == '.' || s[0] == '[':
		s = "$" + s
	default:
		s = "$." + s
	}
	return ir.ParsePath(s)
}

// lookup returns non-owning references to the nodes of d at p.
func lookup(d *jsondoc.Doc, p *ir.Path) ([]*jsondoc.Doc, error) {
	if p.Wildcard() {
		nodes, err := d.Root().ListPath(nil, p.String())
		if err != nil {
			return nil, err
		}
		res := make([]*jsondoc.Doc, len(nodes))
		for i, n := range nodes {
			res[i] = jsondoc.FromNode(n, jsondoc.NonOwning)
		}
		return res, nil
	}
	cur := d
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			cur = cur.Field(*x.Field)
		case x.Index != nil:
			if !cur.IsArray() {
				return nil, nil
			}
			cur = cur.At(*x.Index)
		}
		if !cur.Valid() {
			return nil, nil
		}
	}
	return []*jsondoc.Doc{cur}, nil
}
