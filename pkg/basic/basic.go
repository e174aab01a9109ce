package basic

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which of the four primitive node shapes a Value holds.
type Kind int

const (
	// Int holds a signed integer.
	Int Kind = iota
	// Float holds a floating-point number.
	Float
	// String holds a UTF-8 string.
	String
	// Seq holds an ordered, homogeneous-or-not sequence of basic values.
	Seq
	// Null marks the absence of a value, for leaf strategies that need it.
	Null
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Seq:
		return "seq"
	case Null:
		return "null"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a node in the basic form tree. The zero Value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	seq  []Value
}

// NewInt wraps an integer as a basic Value.
func NewInt(i int64) Value { return Value{kind: Int, i: i} }

// NewFloat wraps a float as a basic Value.
func NewFloat(f float64) Value { return Value{kind: Float, f: f} }

// NewString wraps a string as a basic Value.
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewSeq wraps an ordered list of basic values as a basic Value.
func NewSeq(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: Seq, seq: cp}
}

// NewNull returns the null basic Value.
func NewNull() Value { return Value{kind: Null} }

// Kind reports which shape this Value holds.
func (v Value) Kind() Kind { return v.kind }

// Int returns the wrapped integer and whether v is actually an Int.
func (v Value) Int() (int64, bool) { return v.i, v.kind == Int }

// Float returns the wrapped float and whether v is actually a Float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == Float }

// Str returns the wrapped string and whether v is actually a String.
func (v Value) Str() (string, bool) { return v.s, v.kind == String }

// Items returns the wrapped sequence and whether v is actually a Seq.
// The returned slice is a defensive copy.
func (v Value) Items() ([]Value, bool) {
	if v.kind != Seq {
		return nil, false
	}
	cp := make([]Value, len(v.seq))
	copy(cp, v.seq)
	return cp, true
}

// Len returns the length of a Seq value, or 0 for any other kind.
func (v Value) Len() int {
	if v.kind != Seq {
		return 0
	}
	return len(v.seq)
}

// IsNull reports whether v is the Null kind.
func (v Value) IsNull() bool { return v.kind == Null }

// Equal reports whether a and b represent the same basic tree.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Int:
		return a.i == b.i
	case Float:
		return a.f == b.f
	case String:
		return a.s == b.s
	case Null:
		return true
	case Seq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a Value for diagnostics. It is not a serialization
// format — it exists for error messages and test failure output.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return strconv.Quote(v.s)
	case Null:
		return "null"
	case Seq:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid basic.Value>"
	}
}
