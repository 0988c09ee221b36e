package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"y", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"toml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrBadFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"song.json":      JSONFormat,
		"song.YAML":      YAMLFormat,
		"dir/song.yml":   YAMLFormat,
		"-":              JSONFormat,
		"no-extension":   JSONFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("text round trip of %v gave %v", f, back)
		}
	}
	if got := YAMLFormat.Suffix(); got != ".yaml" {
		t.Errorf("YAMLFormat.Suffix() = %q", got)
	}
}
