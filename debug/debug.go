// Package debug holds environment toggled tracing for the library
// packages. Each toggle is read once at startup.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Walk      bool
	Path      bool
	Normalize bool
	Diag      bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Walk = boolEnv("TRANSCHECK_DEBUG_WALK")
	d.Path = boolEnv("TRANSCHECK_DEBUG_PATH")
	d.Normalize = boolEnv("TRANSCHECK_DEBUG_NORMALIZE")
	d.Diag = boolEnv("TRANSCHECK_DEBUG_DIAG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Path() bool {
	return d.Path
}
func Normalize() bool {
	return d.Normalize
}
func Diag() bool {
	return d.Diag
}

// Logf writes one trace line. Arguments implementing json.Marshaler are
// rendered as JSON.
func Logf(format string, args ...any) {
	for i, a := range args {
		m, ok := a.(json.Marshaler)
		if !ok {
			continue
		}
		if d, err := m.MarshalJSON(); err == nil {
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// LogAny writes v as one line of JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
