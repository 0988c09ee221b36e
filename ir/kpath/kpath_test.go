package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "root",
			path: nil,
			want: "",
		},
		{
			name: "single key",
			path: Path{Key("a")},
			want: "a",
		},
		{
			name: "nested keys",
			path: Path{Key("a"), Key("b"), Key("c")},
			want: "a.b.c",
		},
		{
			name: "index between keys",
			path: Path{Key("section_dimension"), Index(2), Key("lyrics")},
			want: "section_dimension[2].lyrics",
		},
		{
			name: "leading index",
			path: Path{Index(0), Key("title")},
			want: "[0].title",
		},
		{
			name: "nested indices",
			path: Path{Key("a"), Index(1), Index(0)},
			want: "a[1][0]",
		},
		{
			name: "only indices",
			path: Path{Index(3), Index(4)},
			want: "[3][4]",
		},
		{
			name: "non ascii key",
			path: Path{Key("歌词"), Index(0)},
			want: "歌词[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegmentString(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		want string
	}{
		{Key("lyrics"), "lyrics"},
		{Key("歌词"), "歌词"},
		{Index(0), "[0]"},
		{Index(12), "[12]"},
	} {
		if got := tt.seg.SegmentString(); got != tt.want {
			t.Errorf("SegmentString(%v) = %q, want %q", tt.seg, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Path
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "example key",
			input: "section_dimension[2].lyrics",
			want:  Path{Key("section_dimension"), Index(2), Key("lyrics")},
		},
		{
			name:  "leading index",
			input: "[0].a",
			want:  Path{Index(0), Key("a")},
		},
		{
			name:  "multiple indices",
			input: "a[1][22]",
			want:  Path{Key("a"), Index(1), Index(22)},
		},
		{
			name:  "drops empty fragment",
			input: "a..b",
			want:  Path{Key("a"), Key("b")},
		},
		{
			name:  "drops non numeric index",
			input: "a.b[x].c",
			want:  Path{Key("a"), Key("c")},
		},
		{
			name:  "drops negative index",
			input: "a[-1].c",
			want:  Path{Key("c")},
		},
		{
			name:  "drops unclosed bracket",
			input: "a[1.b",
			want:  Path{Key("b")},
		},
		{
			name:  "drops stray close bracket",
			input: "a].b",
			want:  Path{Key("b")},
		},
		{
			name:  "drops trailing text after index",
			input: "a[1]x.b",
			want:  Path{Key("b")},
		},
		{
			name:  "drops overflowing index",
			input: "a[99999999999999999999999].b",
			want:  Path{Key("b")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		input   string
		want    Path
		wantErr bool
	}{
		{input: "", want: nil},
		{input: "a.b", want: Path{Key("a"), Key("b")}},
		{input: "[2]", want: Path{Index(2)}},
		{input: "a..b", wantErr: true},
		{input: "a[x]", wantErr: true},
		{input: "a[]", wantErr: true},
		{input: "a]", wantErr: true},
		{input: "a.", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrict(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadPath) {
					t.Fatalf("ParseStrict(%q) error = %v, want ErrBadPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrict(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStrict(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	paths := []Path{
		{Key("a")},
		{Key("section_dimension"), Index(2), Key("lyrics")},
		{Index(0)},
		{Index(0), Index(10), Key("x y"), Key("z")},
		{Key("歌曲"), Key("分析"), Index(7)},
		{Key("with space"), Key("tab-free"), Key("{braces}")},
		{Key("a"), Index(0), Index(1), Key("b"), Index(2)},
	}
	for _, p := range paths {
		for _, s := range p {
			if f, ok := s.Field(); ok && !ValidField(f) {
				t.Fatalf("test path %v uses invalid field %q", p, f)
			}
		}
		key := p.String()
		got := Parse(key)
		if !got.Equal(p) {
			t.Errorf("Parse(%q) = %v, want %v", key, got, p)
		}
		strict, err := ParseStrict(key)
		if err != nil {
			t.Errorf("ParseStrict(%q): %v", key, err)
			continue
		}
		if !strict.Equal(p) {
			t.Errorf("ParseStrict(%q) = %v, want %v", key, strict, p)
		}
	}
}

func TestValidField(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"a":     true,
		"a.b":   false,
		"a[0]":  false,
		"x]":    false,
		"tab\t": false,
		"歌词":    true,
		"a b":   true,
	}
	for in, want := range tests {
		if got := ValidField(in); got != want {
			t.Errorf("ValidField(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{path: nil, want: ""},
		{path: Path{Key("a"), Index(0), Key("b")}, want: "/a/0/b"},
		{path: Path{Key("a/b"), Key("m~n")}, want: "/a~1b/m~0n"},
		{path: Path{Index(3)}, want: "/3"},
	}
	for _, tt := range tests {
		if got := tt.path.Pointer(); got != tt.want {
			t.Errorf("%v.Pointer() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAppendParent(t *testing.T) {
	base := Path{Key("a")}
	b := base.Append(Index(1))
	c := base.Append(Key("c"))
	if !b.Equal(Path{Key("a"), Index(1)}) {
		t.Errorf("Append = %v", b)
	}
	if !c.Equal(Path{Key("a"), Key("c")}) {
		t.Errorf("Append aliased: %v", c)
	}
	if !b.Parent().Equal(base) {
		t.Errorf("Parent() = %v, want %v", b.Parent(), base)
	}
	if Path(nil).Parent() != nil {
		t.Errorf("root Parent() should be nil")
	}
	last, ok := b.Last()
	if !ok || !last.Equal(Index(1)) {
		t.Errorf("Last() = %v, %v", last, ok)
	}
	if !b.HasPrefix(base) || base.HasPrefix(b) {
		t.Errorf("HasPrefix wrong for %v and %v", b, base)
	}
}

func TestText(t *testing.T) {
	p := Path{Key("a"), Index(4), Key("b")}
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var q Path
	if err := q.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("text round trip (-want +got):\n%s", diff)
	}
	if err := q.UnmarshalText([]byte("a[")); !errors.Is(err, ErrBadPath) {
		t.Errorf("UnmarshalText bad key error = %v", err)
	}
}
