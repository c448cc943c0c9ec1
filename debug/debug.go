package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Merge     bool
	File      bool
	Ownership bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOC_DEBUG_PARSE")
	d.Merge = boolEnv("JSONDOC_DEBUG_MERGE")
	d.File = boolEnv("JSONDOC_DEBUG_FILE")
	d.Ownership = boolEnv("JSONDOC_DEBUG_OWNERSHIP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func File() bool {
	return d.File
}
func Ownership() bool {
	return d.Ownership
}

// Set overrides the switches read from the environment. Tests use it to
// exercise logging paths.
func Set(parse, merge, file, ownership bool) {
	d = &debug{Parse: parse, Merge: merge, File: file, Ownership: ownership}
}
