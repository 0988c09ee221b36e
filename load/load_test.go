package load

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/ir"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocument(t *testing.T) {
	yf := format.YAMLFormat
	tests := []struct {
		name string
		path string
		in   string
		f    *format.Format
		want string
	}{
		{
			name: "json file",
			path: writeFile(t, "a.json", `{"a":"x"}`),
			want: `{"a":"x"}`,
		},
		{
			name: "yaml by suffix",
			path: writeFile(t, "a.yml", "a: x\nb: [1]\n"),
			want: `{"a":"x","b":[1]}`,
		},
		{
			name: "format flag wins",
			path: writeFile(t, "a.json", "a: x\n"),
			f:    &yf,
			want: `{"a":"x"}`,
		},
		{
			name: "stdin",
			path: Stdin,
			in:   `["s"]`,
			want: `["s"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Document(tt.path, strings.NewReader(tt.in), tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if got := y.JSONString(); got != tt.want {
				t.Errorf("Document = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDocumentErrors(t *testing.T) {
	if _, err := Document(filepath.Join(t.TempDir(), "none.json"), nil, nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	bad := writeFile(t, "bad.json", `{"a":`)
	if _, err := Document(bad, nil, nil); !errors.Is(err, ir.ErrParse) {
		t.Errorf("bad json error = %v", err)
	}
}

func TestPair(t *testing.T) {
	a := writeFile(t, "src.json", `{"a":"x"}`)
	x, y, err := Pair(context.Background(), strings.NewReader(`{"a":"y"}`), a, Stdin, nil)
	if err != nil {
		t.Fatal(err)
	}
	if x.JSONString() != `{"a":"x"}` || y.JSONString() != `{"a":"y"}` {
		t.Errorf("Pair = %s, %s", x.JSONString(), y.JSONString())
	}
	if _, _, err := Pair(context.Background(), nil, Stdin, Stdin, nil); !errors.Is(err, ErrStdinTwice) {
		t.Errorf("stdin twice error = %v", err)
	}
	if _, _, err := Pair(context.Background(), nil, a, filepath.Join(t.TempDir(), "none.json"), nil); err == nil {
		t.Errorf("expected error for missing second document")
	}
}

func TestPairCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := writeFile(t, "src.json", `{}`)
	if _, _, err := Pair(ctx, nil, a, a, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled error = %v", err)
	}
}
