package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Node
	}{
		{
			name:  "null",
			input: "null",
			want:  Null(),
		},
		{
			name:  "number literal kept",
			input: "1.50e3",
			want:  FromNumber("1.50e3"),
		},
		{
			name:  "string",
			input: `"歌曲 | song"`,
			want:  FromString("歌曲 | song"),
		},
		{
			name:  "object order kept",
			input: `{"z": 1, "a": true, "m": null}`,
			want: FromKeyVals([]KeyVal{
				{Key: "z", Val: FromInt(1)},
				{Key: "a", Val: FromBool(true)},
				{Key: "m", Val: Null()},
			}),
		},
		{
			name:  "nested",
			input: `{"a": [{"b": "x"}, [], {}], "c": "y"}`,
			want: FromKeyVals([]KeyVal{
				{Key: "a", Val: FromSlice([]*Node{
					FromKeyVals([]KeyVal{{Key: "b", Val: FromString("x")}}),
					FromSlice(nil),
					FromKeyVals(nil),
				})},
				{Key: "c", Val: FromString("y")},
			}),
		},
		{
			name:  "duplicate key keeps first position and last value",
			input: `{"a": 1, "b": 2, "a": 3}`,
			want: FromKeyVals([]KeyVal{
				{Key: "a", Val: FromInt(3)},
				{Key: "b", Val: FromInt(2)},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseJSON: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseJSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		`{"a" 1}`,
		`[1, 2`,
		`{"a": 1} {"b": 2}`,
		`"a" "b"`,
		`{1: 2}`,
	}
	for _, in := range inputs {
		_, err := ParseJSON([]byte(in))
		if !errors.Is(err, ErrParse) {
			t.Errorf("ParseJSON(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "nil",
			node: nil,
			want: "null",
		},
		{
			name: "ordered object",
			node: FromKeyVals([]KeyVal{
				{Key: "b", Val: FromString("<x>")},
				{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromBool(false), Null()})},
			}),
			want: `{"b":"<x>","a":[1,false,null]}`,
		},
		{
			name: "unicode unescaped",
			node: FromString("摇滚 \"rock\""),
			want: `"摇滚 \"rock\""`,
		},
		{
			name: "empty containers",
			node: FromKeyVals([]KeyVal{{Key: "a", Val: FromSlice(nil)}, {Key: "o", Val: FromKeyVals(nil)}}),
			want: `{"a":[],"o":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.node.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("MarshalJSON = %s, want %s", d, tt.want)
			}
		})
	}
}

func TestMarshalJSONBadNumber(t *testing.T) {
	if _, err := FromNumber("0x1f").MarshalJSON(); err == nil {
		t.Errorf("expected error for non json number literal")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"section_dimension":[{"lyrics":"la","bars":16},{"lyrics":"da","bars":8.5}],"title":"歌","live":true,"notes":null}`
	n, err := ParseJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.JSONString(); got != in {
		t.Errorf("round trip:\n got %s\nwant %s", got, in)
	}
}
