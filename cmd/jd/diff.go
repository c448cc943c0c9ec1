package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/encode"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	defer a.Close()
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	defer b.Close()

	ta, err := render(a, cfg.Sort)
	if err != nil {
		return err
	}
	tb, err := render(b, cfg.Sort)
	if err != nil {
		return err
	}
	differs, err := writeLineDiff(cc.Out, lineDiff(ta, tb), cfg.useColor(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func render(d *jsondoc.Doc, sortKeys bool) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := d.Encode(buf, encode.SortKeys(sortKeys)); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func lineDiff(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// writeLineDiff writes diffs one line at a time with a -, + or space
// prefix and reports whether there was any change.
func writeLineDiff(w io.Writer, diffs []diffpatch.Diff, colors bool) (bool, error) {
	del, ins := fmt.Sprint, fmt.Sprint
	if colors {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	differs := false
	buf := bytes.NewBuffer(nil)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				differs = true
				buf.WriteString(del("-" + line))
			case diffpatch.DiffInsert:
				differs = true
				buf.WriteString(ins("+" + line))
			default:
				buf.WriteString(" " + line)
			}
		}
	}
	if !differs {
		return false, nil
	}
	_, err := w.Write(buf.Bytes())
	return true, err
}
