package diag

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/transcheck/debug"
	"github.com/signadot/transcheck/ir/kpath"
)

// Filter drops diagnostics matching any of a set of boolean expressions.
//
// Expressions see the variables kind, severity and path as strings, and
// expected and actual as plain values (nil when absent). The function
// under(path, prefix) reports whether prefix is path or one of its
// ancestors:
//
//	kind == "extra" && under(path, "meta")
//	severity == "warning"
//	kind == "value mismatch" && actual == ""
type Filter struct {
	exprs []string
	progs []*vm.Program
}

type filterEnv struct {
	Kind     string `expr:"kind"`
	Severity string `expr:"severity"`
	Path     string `expr:"path"`
	Expected any    `expr:"expected"`
	Actual   any    `expr:"actual"`
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.Env(filterEnv{}),
		expr.AsBool(),
		expr.Function("under", func(params ...any) (any, error) {
			p := kpath.Parse(params[0].(string))
			prefix := kpath.Parse(params[1].(string))
			return p.HasPrefix(prefix), nil
		},
			new(func(string, string) bool)),
	}
}

// NewFilter compiles exprs. A Filter with no expressions drops nothing.
func NewFilter(exprs ...string) (*Filter, error) {
	f := &Filter{exprs: exprs}
	for _, x := range exprs {
		prg, err := expr.Compile(x, filterOpts()...)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", x, err)
		}
		f.progs = append(f.progs, prg)
	}
	return f, nil
}

func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.progs)
}

// Match reports whether any expression of f holds for d.
func (f *Filter) Match(d Diagnostic) (bool, error) {
	if f.Len() == 0 {
		return false, nil
	}
	env := filterEnv{
		Kind:     d.Kind.String(),
		Severity: d.Severity().String(),
		Path:     d.Path,
	}
	if d.Expected != nil {
		env.Expected = d.Expected.ToAny()
	}
	if d.Actual != nil {
		env.Actual = d.Actual.ToAny()
	}
	for i, prg := range f.progs {
		res, err := expr.Run(prg, env)
		if err != nil {
			return false, fmt.Errorf("filter %q: %w", f.exprs[i], err)
		}
		if b, _ := res.(bool); b {
			return true, nil
		}
	}
	return false, nil
}

// Filter returns a new report without the diagnostics matched by f.
func (r *Report) Filter(f *Filter) (*Report, error) {
	res := &Report{}
	if r == nil {
		return res, nil
	}
	for _, d := range r.Diagnostics {
		drop, err := f.Match(d)
		if err != nil {
			return nil, err
		}
		if !drop {
			res.add(d)
			continue
		}
		if debug.Diag() {
			debug.LogAny(d)
		}
	}
	return res, nil
}
