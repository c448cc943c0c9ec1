package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/debug"

	"github.com/scott-cotton/cli"
)

func jdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Limit <= 0 {
		return fmt.Errorf("%w: -limit must be positive", cli.ErrUsage)
	}
	if cfg.Debug {
		debug.Set(true, true, true, true)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc loads the document at path, "-" meaning standard input.
func readDoc(cfg *MainConfig, cc *cli.Context, path string) (*jsondoc.Doc, error) {
	d := jsondoc.New()
	if path != "-" {
		if err := d.LoadFileLimit(path, int64(cfg.Limit), cfg.parseOpts()...); err != nil {
			return nil, err
		}
		return d, nil
	}
	in, err := io.ReadAll(io.LimitReader(cc.In, int64(cfg.Limit)))
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	if err := d.Parse(string(in), cfg.parseOpts()...); err != nil {
		return nil, fmt.Errorf("error decoding stdin: %w", err)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: stdin", jsondoc.ErrEmptyFile)
	}
	return d, nil
}

func writeDoc(cfg *MainConfig, w io.Writer, d *jsondoc.Doc) error {
	if err := d.Encode(w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
