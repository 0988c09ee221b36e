package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	r, err := Strict(
		parse(t, `{"meta":{"id":"1","v":2},"title":"Song","x":"y"}`),
		parse(t, `{"meta":{"id":"2"},"title":"Other","extra":{"note":"n"}}`),
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	all := []string{"value mismatch meta.id", "missing meta.v", "value mismatch title", "missing x", "extra extra.note"}
	if diff := cmp.Diff(all, summary(r)); diff != "" {
		t.Fatalf("unfiltered (-want +got):\n%s", diff)
	}
	tests := []struct {
		name  string
		exprs []string
		want  []string
	}{
		{
			name: "no expressions",
			want: all,
		},
		{
			name:  "by severity",
			exprs: []string{`severity == "warning"`},
			want:  all[:4],
		},
		{
			name:  "under prefix",
			exprs: []string{`under(path, "meta")`},
			want:  []string{"value mismatch title", "missing x", "extra extra.note"},
		},
		{
			name:  "any of several",
			exprs: []string{`kind == "missing"`, `path == "title"`},
			want:  []string{"value mismatch meta.id", "extra extra.note"},
		},
		{
			name:  "by value",
			exprs: []string{`actual == "Other"`, `expected == 2`},
			want:  []string{"value mismatch meta.id", "missing x", "extra extra.note"},
		},
		{
			name:  "prefix is not string prefix",
			exprs: []string{`under(path, "ext")`},
			want:  all,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.exprs...)
			if err != nil {
				t.Fatal(err)
			}
			got, err := r.Filter(f)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, summary(got)); diff != "" {
				t.Errorf("filtered (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterCompileError(t *testing.T) {
	if _, err := NewFilter(`kind ==`); err == nil {
		t.Errorf("expected syntax error")
	}
	if _, err := NewFilter(`path + 1`); err == nil {
		t.Errorf("expected non boolean expression to be rejected")
	}
	if _, err := NewFilter(`nosuchvar == 1`); err == nil {
		t.Errorf("expected unknown variable to be rejected")
	}
}
