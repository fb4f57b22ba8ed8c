package lang

import (
	"iter"
	"slices"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindText
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	case KindDict:
		return "dictionary"
	default:
		return "invalid"
	}
}

// Value is a resolved configuration value: an integer, a text string or
// an ordered dictionary of values.
type Value struct {
	Kind    Kind
	Integer int64
	Text    string
	Dict    *Dict
}

// NewInteger returns an integer Value.
func NewInteger(n int64) Value { return Value{Kind: KindInteger, Integer: n} }

// NewText returns a text Value.
func NewText(s string) Value { return Value{Kind: KindText, Text: s} }

// NewDictValue returns a dictionary Value wrapping d.
// A nil d is replaced with an empty dictionary.
func NewDictValue(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}

	return Value{Kind: KindDict, Dict: d}
}

// IsDict reports whether v holds a dictionary.
func (v Value) IsDict() bool { return v.Kind == KindDict && v.Dict != nil }

// Clone returns a deep copy of v. Modifying the copy never affects v.
func (v Value) Clone() Value {
	if v.Kind == KindDict {
		return Value{Kind: KindDict, Dict: v.Dict.Clone()}
	}

	return v
}

// Equal reports whether v and w hold the same data. Dictionaries are equal
// when they hold the same keys in the same order with equal values.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind {
		return false
	}

	switch v.Kind {
	case KindInteger:
		return v.Integer == w.Integer
	case KindText:
		return v.Text == w.Text
	case KindDict:
		return v.Dict.Equal(w.Dict)
	default:
		return true
	}
}

// String returns a short human-readable rendering of v.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Integer, 10)
	case KindText:
		return strconv.Quote(v.Text)
	case KindDict:
		return "dictionary(" + strconv.Itoa(v.Dict.Len()) + ")"
	default:
		return "<invalid>"
	}
}

// Dict is a dictionary that remembers insertion order. The zero value is
// not usable; create one with [NewDict].
type Dict struct {
	keys  []string
	items map[string]Value
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{items: make(map[string]Value)}
}

// Set adds key with value v. It reports false, leaving d unchanged, when
// key is already present.
func (d *Dict) Set(key string, v Value) bool {
	if _, ok := d.items[key]; ok {
		return false
	}

	d.keys = append(d.keys, key)
	d.items[key] = v

	return true
}

// Get returns the value bound to key.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}

	v, ok := d.items[key]

	return v, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}

	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}

	return slices.Clone(d.keys)
}

// All returns an iterator over the entries in insertion order.
func (d *Dict) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}

		for _, k := range d.keys {
			if !yield(k, d.items[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of d.
func (d *Dict) Clone() *Dict {
	c := &Dict{
		keys:  make([]string, 0, d.Len()),
		items: make(map[string]Value, d.Len()),
	}

	for k, v := range d.All() {
		c.keys = append(c.keys, k)
		c.items[k] = v.Clone()
	}

	return c
}

// Equal reports whether d and e hold equal entries in the same order.
func (d *Dict) Equal(e *Dict) bool {
	if d.Len() != e.Len() {
		return false
	}

	if d.Len() == 0 {
		return true
	}

	for i, k := range d.keys {
		if e.keys[i] != k || !d.items[k].Equal(e.items[k]) {
			return false
		}
	}

	return true
}
