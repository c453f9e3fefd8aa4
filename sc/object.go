package sc

import "strings"

// Object is a class-method call with positional arguments and keyword
// properties, e.g. Pan2.ar(sig, pos, level: 0.5).
type Object struct {
	ClassName  string
	MethodName string
	Args       []Value
	Properties []Property
}

// Property is a keyword argument. Properties render after positional
// arguments in insertion order.
type Property struct {
	Key   string
	Value Value
}

// NewObject returns an object call on the given class. The method
// defaults to "new" until set with Method.
func NewObject(className string) *Object {
	return &Object{ClassName: className, MethodName: "new"}
}

// Method sets the class method and returns the object for chaining.
func (o *Object) Method(name string) *Object {
	o.MethodName = name

	return o
}

// Arg appends a positional argument.
func (o *Object) Arg(v Value) *Object {
	o.Args = append(o.Args, v)

	return o
}

// ArgFloat appends a float positional argument.
func (o *Object) ArgFloat(v float64) *Object {
	return o.Arg(Float(v))
}

// ArgInt appends an integer positional argument.
func (o *Object) ArgInt(v int) *Object {
	return o.Arg(Int(v))
}

// ArgString appends a string positional argument.
func (o *Object) ArgString(v string) *Object {
	return o.Arg(String(v))
}

// Prop appends a keyword argument.
func (o *Object) Prop(key string, v Value) *Object {
	o.Properties = append(o.Properties, Property{Key: key, Value: v})

	return o
}

// Code renders the call as sclang source text.
func (o *Object) Code() string {
	var b strings.Builder

	b.WriteString(o.ClassName)
	b.WriteByte('.')
	b.WriteString(o.MethodName)
	b.WriteByte('(')

	for i, a := range o.Args {
		if i > 0 {
			b.WriteString(", ")
		}

		a.write(&b)
	}

	for i, p := range o.Properties {
		if i > 0 || len(o.Args) > 0 {
			b.WriteString(", ")
		}

		b.WriteString(p.Key)
		b.WriteString(": ")
		p.Value.write(&b)
	}

	b.WriteByte(')')

	return b.String()
}
