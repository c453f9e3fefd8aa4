// Package sc builds SuperCollider language fragments.
//
// An Object describes a class-method call such as Pan2.ar(sig, pos)
// together with keyword properties, and Code renders it as sclang
// source text. Values cover the sclang literal forms the converter
// emits: numbers, strings, symbols, booleans, arrays, and nested
// object calls.
package sc
