package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Load    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("PLATE_DEBUG_RESOLVE")
	d.Load = boolEnv("PLATE_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Load() bool {
	return d.Load
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
