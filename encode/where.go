package encode

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Where is a compiled boolean expression selecting diff lines. The
// expression sees:
//
//	path   string  the rendered path, e.g. "metadata.labels[0]"
//	op     string  "remove" or "set"
//	value  any     the set value as plain data, nil for removals
//	depth  int     1 for top level fields
//
// and the function under(prefix), true when path is prefix or lies below
// it.
type Where struct {
	src  string
	prog *vm.Program
}

func CompileWhere(src string) (*Where, error) {
	prog, err := expr.Compile(src, whereOpts(whereEnv(Line{}))...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Where{src: src, prog: prog}, nil
}

func (w *Where) String() string {
	return w.src
}

func (w *Where) Match(ln Line) (bool, error) {
	env := whereEnv(ln)
	res, err := vm.Run(w.prog, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q at %s: %w", w.src, ln.Path, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q gave %T, not bool", w.src, res)
	}
	return b, nil
}

func whereEnv(ln Line) map[string]any {
	return map[string]any{
		"path":  ln.Path,
		"op":    ln.Op(),
		"value": ln.Value.ToAny(),
		"depth": ln.Depth,
		"under": func(prefix string) bool {
			return isUnder(ln.Path, prefix)
		},
	}
}

func whereOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AsBool(),
	}
}

func isUnder(path, prefix string) bool {
	if prefix == "" || path == prefix {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	switch path[len(prefix)] {
	case '.', '[':
		return true
	}
	return false
}
