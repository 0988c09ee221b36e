package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeString(t *testing.T) {
	want := map[Type]string{
		NullType:   "null",
		BoolType:   "boolean",
		NumberType: "number",
		StringType: "string",
		ArrayType:  "array",
		ObjectType: "object",
	}
	for _, tt := range Types() {
		if got := tt.String(); got != want[tt] {
			t.Errorf("%d.String() = %q, want %q", tt, got, want[tt])
		}
		var back Type
		if err := back.UnmarshalText([]byte(tt.String())); err != nil || back != tt {
			t.Errorf("UnmarshalText(%q) = %v, %v", tt, back, err)
		}
	}
	if Type(99).String() != "<unknown type>" {
		t.Errorf("unknown type string")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromString("x")})},
		{Key: "b", Val: FromNumber("2")},
	})
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	c.Values[0].Values[0].String = "changed"
	c.Fields[1] = "z"
	if orig.Values[0].Values[0].String != "x" || orig.Fields[1] != "b" {
		t.Errorf("clone shares memory with original")
	}
	if (*Node)(nil).Clone() != nil {
		t.Errorf("nil clone")
	}
}

func TestToAny(t *testing.T) {
	n, err := ParseJSON([]byte(`{"a":[1,"x",true,null],"b":{"c":2.5}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{1.0, "x", true, nil},
		"b": map[string]any{"c": 2.5},
	}
	if diff := cmp.Diff(want, n.ToAny()); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderLike(t *testing.T) {
	ref, err := ParseJSON([]byte(`{"z":{"y":1,"x":2},"a":[{"q":1,"p":2}],"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	n, err := ParseJSON([]byte(`{"a":[{"p":"P","q":"Q"}],"extra":0,"m":"M","z":{"x":"X","y":"Y"}}`))
	if err != nil {
		t.Fatal(err)
	}
	n.OrderLike(ref)
	want := `{"z":{"y":"Y","x":"X"},"a":[{"q":"Q","p":"P"}],"m":"M","extra":0}`
	if got := n.JSONString(); got != want {
		t.Errorf("OrderLike:\n got %s\nwant %s", got, want)
	}
}

func TestFloat64(t *testing.T) {
	if f, ok := FromNumber("1e2").Float64(); !ok || f != 100 {
		t.Errorf("Float64(1e2) = %v, %v", f, ok)
	}
	if _, ok := FromString("1").Float64(); ok {
		t.Errorf("Float64 on string should fail")
	}
}
