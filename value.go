package csonh

import (
	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Value is any CSONH value: an *Object, an Array, a string, an int64, a
// float64, a bool, or nil. It is a plain Go interface rather than a closed
// sum type because Go has no tagged unions; callers type-switch on it the
// way encoding/json callers type-switch on `any`.
type Value = any

// Array is an ordered sequence of values, as produced by a bracketed
// `[...]` literal.
type Array = []Value

// Object is an insertion-ordered mapping from string keys to values.
// Duplicate keys overwrite the stored value in place without moving the
// key's position — first-seen-wins on order, last-write-wins on value,
// exactly as spec.md's Value data model requires. A plain Go map cannot
// express this, so Object wraps an order-preserving linked hash map.
type Object struct {
	m *linkedhashmap.Map[string, Value]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: linkedhashmap.New[string, Value]()}
}

// Set stores value under key. If key was already present, its value is
// replaced but its position in iteration order is unchanged. If key is new,
// it is appended after all existing keys.
func (o *Object) Set(key string, value Value) {
	o.m.Put(key, value)
}

// Get returns the value stored under key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	return o.m.Get(key)
}

// Keys returns the object's keys in first-insertion order.
func (o *Object) Keys() []string {
	return o.m.Keys()
}

// Len returns the number of distinct keys in the object.
func (o *Object) Len() int {
	return o.m.Size()
}

// Each calls fn once per key/value pair, in insertion order.
func (o *Object) Each(fn func(key string, value Value)) {
	o.m.Each(fn)
}

// Equal reports whether o and other hold the same keys, in the same
// order, with deeply equal values. Used by tests; not part of the public
// parsing contract.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.Len() != other.Len() {
		return false
	}
	ok, ks := o.Keys(), other.Keys()
	for i := range ok {
		if ok[i] != ks[i] {
			return false
		}
	}
	equal := true
	o.Each(func(key string, value Value) {
		if !equal {
			return
		}
		ov, found := other.Get(key)
		if !found || !valuesEqual(value, ov) {
			equal = false
		}
	})
	return equal
}

func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		return ok && av.Equal(bv)
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
