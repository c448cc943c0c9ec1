package main

import (
	"fmt"

	"github.com/signadot/jsondoc"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 documents, got %v", cli.ErrUsage, args)
	}
	acc := jsondoc.New()
	defer acc.Close()
	for _, file := range args {
		d, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		fold(acc, d, cfg.Reverse)
		d.Close()
	}
	return writeDoc(cfg.MainConfig, cc.Out, acc)
}

func fold(acc, d *jsondoc.Doc, reverse bool) {
	if reverse {
		acc.ReverseMerge(d)
		return
	}
	acc.Merge(d)
}
