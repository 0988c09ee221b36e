package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/transcheck/diag"
	"github.com/signadot/transcheck/extract"
	"github.com/signadot/transcheck/ir"
)

func parse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.ParseJSON([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func sampleReport(t *testing.T) *diag.Report {
	t.Helper()
	r, err := diag.Strict(parse(t, `{"a":"x","c":"y"}`), parse(t, `{"c":"z | 乙","d":"w"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, sampleReport(t), TextOutput, nil); err != nil {
		t.Fatal(err)
	}
	want := `Error: missing at a: expected "x"
Error: value mismatch at c: expected "y", got "z | 乙"
Warning: extra at d: "w"
2 errors, 1 warning
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
}

func TestWriteTextColoursPath(t *testing.T) {
	s := NewStyles(true)
	buf := &bytes.Buffer{}
	if err := WriteText(buf, sampleReport(t), s); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	want := s.Error("Error:") + " missing at " + s.Path("a") + `: expected "x"`
	if lines[0] != want {
		t.Errorf("first line %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[2], " extra at "+s.Path("d")+":") {
		t.Errorf("extra line %q has no coloured path", lines[2])
	}
}

func TestWriteTextEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteText(buf, &diag.Report{}, Plain()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "no differences\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteStructured(t *testing.T) {
	r := sampleReport(t)
	for _, o := range []Output{JSONOutput, YAMLOutput} {
		t.Run(o.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Write(buf, r, o, nil); err != nil {
				t.Fatal(err)
			}
			var (
				back *ir.Node
				err  error
			)
			if o == JSONOutput {
				back, err = ir.ParseJSON(buf.Bytes())
			} else {
				back, err = ir.ParseYAML(buf.Bytes())
			}
			if err != nil {
				t.Fatalf("reparse %s: %v", buf.String(), err)
			}
			if diff := cmp.Diff(r.Node().JSONString(), back.JSONString()); diff != "" {
				t.Errorf("report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOutput(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml"} {
		o, err := ParseOutput(name)
		if err != nil {
			t.Fatal(err)
		}
		if o.String() != name {
			t.Errorf("ParseOutput(%q) = %s", name, o)
		}
	}
	if _, err := ParseOutput("xml"); !errors.Is(err, ErrBadOutput) {
		t.Errorf("ParseOutput(xml) error = %v", err)
	}
	var o Output
	if err := o.UnmarshalText([]byte("yaml")); err != nil || o != YAMLOutput {
		t.Errorf("UnmarshalText = %v, %v", o, err)
	}
}

func TestWriteMap(t *testing.T) {
	m, err := extract.BuildMap(parse(t, `{"a":{"b":"hello | 你好"},"c":["x | 一"],"d":"plain"}`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := WriteMap(buf, m, TextOutput); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a.b: 你好\nc[0]: 一\n", buf.String()); diff != "" {
		t.Errorf("text map (-want +got):\n%s", diff)
	}
	buf.Reset()
	if err := WriteMap(buf, m, JSONOutput); err != nil {
		t.Fatal(err)
	}
	back, err := ir.ParseJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back.JSONString(), `{"a.b":"你好","c[0]":"一"}`; got != want {
		t.Errorf("json map = %s, want %s", got, want)
	}
	buf.Reset()
	if err := WriteEntries(buf, m, JSONOutput); err != nil {
		t.Fatal(err)
	}
	back, err = ir.ParseJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"key":"a.b","source":"hello","translation":"你好"},{"key":"c[0]","source":"x","translation":"一"}]`
	if got := back.JSONString(); got != want {
		t.Errorf("entries = %s, want %s", got, want)
	}
}

func TestStyles(t *testing.T) {
	if got := NewStyles(true).Error("x"); !strings.Contains(got, "\x1b[") {
		t.Errorf("enabled styles produced %q", got)
	}
	if got := Plain().Error("x"); got != "x" {
		t.Errorf("plain styles produced %q", got)
	}
	buf := &bytes.Buffer{}
	tests := []struct {
		mode ColorMode
		want bool
	}{
		{ColorAuto, false},
		{ColorAlways, true},
		{ColorNever, false},
	}
	for _, tt := range tests {
		if got := tt.mode.Enabled(buf); got != tt.want {
			t.Errorf("%s.Enabled(buffer) = %v", tt.mode, got)
		}
	}
	if ColorMode("sometimes").Valid() {
		t.Errorf("unknown mode reported valid")
	}
}
