package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jm").
		WithSynopsis("jm [opts] command [opts]").
		WithDescription("jm diffs and merges json and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jmMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			MergeCommand(cfg),
			PatchCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription(diffDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

const diffDescription = `diff prints the changes turning document a into document b,
one per line:

  c.d = 4          field d of object c was set to 4
  o.4 = {"id":4}   the element of array o with id 4 was added
  a[2] = null      element 2 of array a was removed

diff exits with status 1 when the documents differ.

-where filters the lines with an expression over path, op ("set" or
"remove"), value and depth, for example

  jm diff -where 'op == "set" && under("metadata")' a.yaml b.yaml`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("merge [opts] base theirs mine [result]").
		WithDescription(mergeDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

const mergeDescription = `merge combines the changes theirs and mine made to base and
writes the result to result, or to the output.

Where both sides changed the same value, mine wins. A removal on either
side wins over any other change. Changes inside the same object or array
are combined.

-conflicts lists on stderr the places where one side's change was dropped.
-strict fails when an array matched by id has two elements with the
same id.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> doc").
		WithDescription("apply an RFC 6902 json patch, or an RFC 7386 merge patch with -m, to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
