package tabx

import (
	"fmt"
	"math/big"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "string", "bool", "number", "array", "object"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a node of a parsed tree. The zero value is null.
//
// Numbers are held as exact decimal text, so large integers and long
// decimals survive flattening without float rounding.
type Value struct {
	kind    Kind
	text    string
	boolean bool
	items   []Value
	members []Member
}

// Member is one key of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns a number value from its textual form. The text is
// canonicalized: integral values print as plain integers ("1e2" is "100",
// "-0.0" is "0") and other values as exact decimals without exponent or
// trailing zeros ("1.50" is "1.5"). Text that is not a finite decimal
// number, such as YAML's ".inf", is kept as given.
func Number(text string) Value { return Value{kind: KindNumber, text: canonicalNumber(text)} }

// maxFractionDigits bounds the search for an exact decimal expansion.
const maxFractionDigits = 1100

func canonicalNumber(text string) string {
	var r big.Rat
	if _, ok := r.SetString(text); !ok {
		return text
	}
	if r.IsInt() {
		return r.Num().String()
	}
	scaled := new(big.Rat).Set(&r)
	ten := big.NewRat(10, 1)
	for digits := 1; digits <= maxFractionDigits; digits++ {
		scaled.Mul(scaled, ten)
		if scaled.IsInt() {
			return r.FloatString(digits)
		}
	}
	return text
}

// Array returns an array value.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object returns an object value. Keys are unique: a repeated key keeps the
// position of its first occurrence and the value of its last.
func Object(members ...Member) Value {
	out := make([]Member, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := index[m.Key]; ok {
			out[i].Value = m.Value
			continue
		}
		index[m.Key] = len(out)
		out = append(out, m)
	}
	return Value{kind: KindObject, members: out}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Items returns the elements of an array, or nil.
func (v Value) Items() []Value { return v.items }

// Members returns the keys of an object in order, or nil.
func (v Value) Members() []Member { return v.members }

// Text returns the canonical textual form of a scalar. Null and containers
// return the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindNumber:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.boolean)
	default:
		return ""
	}
}
