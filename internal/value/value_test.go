package value

import (
	"testing"

	"cfgcheck/internal/source"
)

func strs(texts ...string) []Str {
	out := make([]Str, len(texts))
	for i, t := range texts {
		out[i] = NewStr(t)
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{name: "scalar collapses whitespace", val: NewScalar(NewStr("  a \t b\n c  ")), want: "a b c"},
		{name: "scalar empty", val: NewScalar(NewStr("")), want: ""},
		{name: "scalar only spaces", val: NewScalar(NewStr("   ")), want: ""},
		{name: "list plain", val: NewList(strs("a", "b")), want: "a b"},
		{name: "list padded elements", val: NewList(strs(" a ", " b ")), want: "a b"},
		{name: "list drops empty elements", val: NewList(strs("", "a", "  ", "b", "")), want: "a b"},
		{name: "list element with inner whitespace", val: NewList(strs("a   b", "c")), want: "a b c"},
		{name: "list single empty element", val: NewList(strs("")), want: ""},
		{name: "list no elements", val: NewList(nil), want: ""},
		{name: "list keeps order", val: NewList(strs("b", "a")), want: "b a"},
		{name: "empty scalar", val: Empty(Scalar), want: ""},
		{name: "empty list", val: Empty(List), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.val.Normalize()
			if got.Text() != tt.want {
				t.Fatalf("Normalize() = %q, want %q", got.Text(), tt.want)
			}
			again := NewScalar(got).Normalize()
			if again.Text() != got.Text() {
				t.Fatalf("normalization not idempotent: %q -> %q", got.Text(), again.Text())
			}
		})
	}
}

func TestNormalizeSplitsOnASCIISpaceOnly(t *testing.T) {
	nbsp := NewScalar(NewStr("a\u00a0b")).Normalize()
	plain := NewScalar(NewStr("a b")).Normalize()
	if nbsp.Equal(plain) {
		t.Fatalf("NBSP must not compare equal to a plain space")
	}
	if nbsp.Text() != "a\u00a0b" {
		t.Fatalf("NBSP normalized to %q", nbsp.Text())
	}
	if got := NormalizeText("x\u0085y"); got != "x\u0085y" {
		t.Fatalf("NEL normalized to %q", got)
	}
	if got := NormalizeText("\v a\fb\r\n"); got != "a b" {
		t.Fatalf("ASCII controls normalized to %q", got)
	}
	got := OneLinePerWord(NormalizeValue(NewList(strs("a\u2003b", "c"))))
	if got != "a\u2003b \\\n  c" {
		t.Fatalf("OneLinePerWord = %q", got)
	}
}

func TestEmptyShapes(t *testing.T) {
	if got := Empty(Scalar).Type(); got != Scalar {
		t.Fatalf("Empty(Scalar).Type() = %v", got)
	}
	l, ok := Empty(List).(ListValue)
	if !ok {
		t.Fatalf("Empty(List) is %T, want ListValue", Empty(List))
	}
	if l.Len() != 1 {
		t.Fatalf("Empty(List) has %d elements, want 1", l.Len())
	}
}

func TestListPositionFromFirstSurvivingElement(t *testing.T) {
	first := source.Pos{File: "a.mk", Line: 1}
	second := source.Pos{File: "a.mk", Line: 2}
	v := NewList([]Str{NewStrAt(first, "  "), NewStrAt(second, "x")})
	if got := v.Normalize().Pos(); got != second {
		t.Fatalf("position = %v, want %v", got, second)
	}
	empty := NewList([]Str{NewStrAt(first, "")})
	if got := empty.Normalize().Pos(); !got.IsSynthetic() {
		t.Fatalf("position of empty list = %v, want synthetic", got)
	}
}

func TestScalarKeepsPosition(t *testing.T) {
	pos := source.Pos{File: "b.mk", Line: 9}
	got := NewScalar(NewStrAt(pos, " x ")).Normalize()
	if got.Pos() != pos || got.Text() != "x" {
		t.Fatalf("got %q at %v", got.Text(), got.Pos())
	}
}

func TestNewListCopiesInput(t *testing.T) {
	items := strs("a", "b")
	v := NewList(items)
	items[0] = NewStr("z")
	if got := v.Normalize().Text(); got != "a b" {
		t.Fatalf("list aliased caller slice: %q", got)
	}
}

func TestRaw(t *testing.T) {
	if got := NewList(strs(" a", "b ")).Raw(); got != " a b " {
		t.Fatalf("list Raw() = %q", got)
	}
	if got := NewScalar(NewStr(" a  b")).Raw(); got != " a  b" {
		t.Fatalf("scalar Raw() = %q", got)
	}
}

func TestStrEqualityIgnoresPosition(t *testing.T) {
	a := NewStrAt(source.Pos{File: "a.mk", Line: 1}, "x")
	b := NewStrAt(source.Pos{File: "b.mk", Line: 2}, "x")
	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Fatalf("strings with same text must be equal")
	}
	if a.Compare(NewStr("y")) >= 0 {
		t.Fatalf("x must sort before y")
	}
}

func TestNormalizedAbsence(t *testing.T) {
	empty := NormalizeValue(NewList(strs("")))
	if !empty.IsPresent() {
		t.Fatalf("empty list must normalize to a present value")
	}
	if NormalizeValue(nil).IsPresent() || NormalizeStr(nil).IsPresent() {
		t.Fatalf("nil must normalize to absent")
	}
	if empty.Equal(Absent) || Absent.Equal(empty) {
		t.Fatalf("present-but-empty must not equal absent")
	}
	if !Absent.Equal(Absent) {
		t.Fatalf("absent must equal absent")
	}
	s := NewStr("a  b")
	if !NormalizeStr(&s).Equal(NormalizeValue(NewList(strs("a", "b")))) {
		t.Fatalf("scalar and list with same words must be equal")
	}
	if got := Absent.Quoted(); got != "null" {
		t.Fatalf("Absent.Quoted() = %q", got)
	}
	if got := empty.Quoted(); got != `""` {
		t.Fatalf("empty.Quoted() = %q", got)
	}
}

func TestParseVarType(t *testing.T) {
	cases := []struct {
		in      string
		want    VarType
		wantErr bool
	}{
		{"list", List, false},
		{"LIST", List, false},
		{"scalar", Scalar, false},
		{"string", Scalar, false},
		{"", Untyped, false},
		{"map", Untyped, true},
	}
	for _, tc := range cases {
		got, err := ParseVarType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseVarType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseVarType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if Untyped.String() != "untyped" || List.String() != "LIST" || Scalar.String() != "SCALAR" {
		t.Fatalf("unexpected VarType strings")
	}
}

func TestOneLinePerWord(t *testing.T) {
	if got := OneLinePerWord(Absent); got != "<null>" {
		t.Fatalf("absent = %q", got)
	}
	got := OneLinePerWord(NormalizeValue(NewList(strs("a", " b"))))
	if got != "a \\\n  b" {
		t.Fatalf("OneLinePerWord = %q", got)
	}
}

func TestDebug(t *testing.T) {
	v := NewList([]Str{NewStrAt(source.Pos{File: "a.mk", Line: 3}, "x")})
	want := `Value(type=LIST list=["x" (a.mk:3)])`
	if got := Debug(v); got != want {
		t.Fatalf("Debug = %q, want %q", got, want)
	}
	if got := Debug(nil); got != "Value(type=null)" {
		t.Fatalf("Debug(nil) = %q", got)
	}
}
