package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/jmerge/mergeop"
)

type ColorAttr int

const (
	PathColor ColorAttr = iota
	SepColor
	ValueColor
	HeaderColor
)

type Colorable struct {
	Kind mergeop.Kind
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors colours removals red and sets green.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	faint := color.New(color.Faint).SprintfFunc()
	for _, k := range []mergeop.Kind{mergeop.RemoveKind, mergeop.SetKind} {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = faint
		colors.Map[Colorable{Kind: k, Attr: HeaderColor}] = color.RGB(74, 92, 138).SprintfFunc()
	}
	colors.Map[Colorable{Kind: mergeop.RemoveKind, Attr: ValueColor}] = color.RedString
	colors.Map[Colorable{Kind: mergeop.RemoveKind, Attr: PathColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: mergeop.SetKind, Attr: ValueColor}] = color.GreenString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k mergeop.Kind, a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k mergeop.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
