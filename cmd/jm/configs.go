package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jmerge/encode"
	"github.com/signadot/jmerge/format"
	"github.com/signadot/jmerge/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width of yaml and json output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format for reading path: -I, then -j/-y, then the file
// extension.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.FromPath(path)
}

// outFormat is the format for writing to path, "" being the output: -O,
// then -j/-y, then the file extension.
func (cfg *MainConfig) outFormat(path string) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case path != "":
		return format.FromPath(path)
	case cfg.Out != "" && cfg.Out != "-":
		return format.FromPath(cfg.Out)
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

func (cfg *MainConfig) encOpts(w io.Writer, path string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(path)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honours an explicit -color and otherwise colours terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	Stat      bool   `cli:"name=stat desc='print counts of changes instead of the changes'"`
	JSONPatch bool   `cli:"name=jsonpatch desc='print the diff as an RFC 6902 json patch'"`
	Where     string `cli:"name=where desc='only print lines matching this expression'"`

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Detailed  bool `cli:"name=detailed desc='print the diffs of both sides and the merged diff'"`
	Conflicts bool `cli:"name=conflicts desc='report changes dropped by the merge on stderr'"`
	Strict    bool `cli:"name=strict desc='fail on repeated ids in arrays'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Merge  bool `cli:"name=m desc='patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}
