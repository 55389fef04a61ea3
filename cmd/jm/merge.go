package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/jmerge"
	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/ir"
	"github.com/signadot/jmerge/libdiff"
	"github.com/signadot/jmerge/mergeop"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 && len(args) != 4 {
		return fmt.Errorf("%w: merge requires base, theirs and mine, and optionally a result file, got %v", cli.ErrUsage, args)
	}
	docs := make([]*ir.Node, 3)
	for i, path := range args[:3] {
		doc, err := getObjFile(cc, path, cfg.parseOpts(path)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		if cfg.Strict {
			if err := libdiff.CheckIdentities(doc); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		docs[i] = doc
	}
	res, err := jmerge.MergeDetailed(docs[0], docs[1], docs[2])
	if err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	if cfg.Conflicts {
		writeConflicts(res.Conflicts())
	}
	if cfg.Detailed {
		if err := writeDetails(cfg, cc, res); err != nil {
			return err
		}
	}
	if len(args) == 4 {
		return writeResult(cfg, args[3], res.Result)
	}
	if cfg.Detailed {
		if err := encode.EncodeHeader("result", cc.Out, cfg.encOpts(cc.Out, "")...); err != nil {
			return err
		}
	}
	if err := encode.Encode(res.Result, cc.Out, cfg.encOpts(cc.Out, "")...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func writeDetails(cfg *MergeConfig, cc *cli.Context, res *jmerge.MergeResult) error {
	opts := cfg.encOpts(cc.Out, "")
	for _, section := range []struct {
		title string
		d     *mergeop.ObjectDiff
	}{
		{"theirs", res.Left},
		{"mine", res.Right},
		{"merged", res.Merged},
	} {
		if err := encode.EncodeHeader(section.title, cc.Out, opts...); err != nil {
			return err
		}
		if err := encode.EncodeDiff(section.d, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func writeConflicts(cs []mergeop.Conflict) {
	for _, c := range cs {
		fmt.Fprintf(os.Stderr, "conflict at %s: theirs %s, mine %s, kept %s\n",
			ir.DisplayPath(c.Path), c.Left, c.Right, keptSide(c))
	}
}

func keptSide(c mergeop.Conflict) string {
	kept := c.Kept()
	switch {
	case kept == nil:
		return "neither"
	case mergeop.EqualOps(kept, c.Right):
		return "mine"
	}
	return "theirs"
}

func writeResult(cfg *MergeConfig, path string, result *ir.Node) error {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(path)),
		encode.EncodeWire(cfg.WireOut),
	}
	if err := encode.Encode(result, buf, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
