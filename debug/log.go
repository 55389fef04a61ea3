package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jmerge/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. *ir.Node arguments are rendered as
// compact JSON and generic JSON values as indented JSON.
func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, render(args)...)
}

func render(args []any) []any {
	res := make([]any, len(args))
	for i, a := range args {
		res[i] = a
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				res[i] = fmt.Sprintf("%v", a)
				continue
			}
			res[i] = string(d)
		case *ir.Node:
			d, err := x.MarshalJSON()
			if err != nil {
				res[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			res[i] = string(d)
		}
	}
	return res
}
