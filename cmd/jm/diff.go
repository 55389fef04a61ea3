package main

import (
	"fmt"

	"github.com/signadot/jmerge"
	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/libdiff"

	"github.com/scott-cotton/cli"
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
	if cfg.Stat && cfg.JSONPatch {
		return fmt.Errorf("%w: -stat and -jsonpatch are exclusive", cli.ErrUsage)
	}
	encOpts := cfg.encOpts(cc.Out, "")
	if cfg.Where != "" {
		w, err := encode.CompileWhere(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		encOpts = append(encOpts, encode.EncodeWhere(w))
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := jmerge.Diff(a, b)
	if err != nil {
		return err
	}
	if d.Empty() {
		return nil
	}
	switch {
	case cfg.Stat:
		fmt.Fprintln(cc.Out, libdiff.Count(d))
	case cfg.JSONPatch:
		p, err := jmerge.JSONPatch(a, d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", p)
	default:
		if err := encode.EncodeDiff(d, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
