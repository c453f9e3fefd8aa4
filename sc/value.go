package sc

import (
	"strconv"
	"strings"
)

// ValueKind identifies the sclang literal form a Value renders as.
type ValueKind int

// Value kinds.
const (
	KindFloat ValueKind = iota
	KindInt
	KindString
	KindSymbol
	KindBool
	KindArray
	KindObject
)

// Value is a single sclang literal or expression.
type Value struct {
	Kind   ValueKind
	Float  float64
	Int    int
	Str    string
	Bool   bool
	Array  []Value
	Object *Object
}

// Float returns a floating point literal value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// Int returns an integer literal value.
func Int(v int) Value {
	return Value{Kind: KindInt, Int: v}
}

// String returns a double-quoted string value.
func String(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// Symbol returns a backslash symbol value such as \wfs.
func Symbol(v string) Value {
	return Value{Kind: KindSymbol, Str: v}
}

// Bool returns a true/false value.
func Bool(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// Array returns a bracketed array value.
func Array(vs ...Value) Value {
	return Value{Kind: KindArray, Array: vs}
}

// Floats returns an array value built from float literals.
func Floats(vs ...float64) Value {
	arr := make([]Value, len(vs))
	for i, v := range vs {
		arr[i] = Float(v)
	}

	return Value{Kind: KindArray, Array: arr}
}

// Nested returns a value wrapping another object call.
func Nested(o *Object) Value {
	return Value{Kind: KindObject, Object: o}
}

// Code renders the value as sclang source text.
func (v Value) Code() string {
	var b strings.Builder

	v.write(&b)

	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case KindFloat:
		b.WriteString(formatFloat(v.Float))
	case KindInt:
		b.WriteString(strconv.Itoa(v.Int))
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindSymbol:
		b.WriteByte('\\')
		b.WriteString(v.Str)
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindArray:
		b.WriteByte('[')

		for i, e := range v.Array {
			if i > 0 {
				b.WriteString(", ")
			}

			e.write(b)
		}

		b.WriteByte(']')
	case KindObject:
		if v.Object != nil {
			b.WriteString(v.Object.Code())
		}
	}
}

// formatFloat keeps a decimal point so sclang reads the literal as a
// Float rather than an Integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
