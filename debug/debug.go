package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Merge bool
	Apply bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JM_DEBUG_DIFF")
	d.Merge = boolEnv("JM_DEBUG_MERGE")
	d.Apply = boolEnv("JM_DEBUG_APPLY")
	d.Parse = boolEnv("JM_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
func Apply() bool {
	return d.Apply
}
func Parse() bool {
	return d.Parse
}
