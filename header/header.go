// Package header implements a case-insensitive HTTP header map.
//
// Field names are compared case-insensitively but the casing of the last
// write is kept for serialization. A Headers value is never mutated in
// place: every update returns a new value, so copies can be shared freely.
package header

import (
	"sort"
	"strings"
)

type field struct {
	name  string
	value string
}

// Headers maps field names to a single stored value. The zero value is an
// empty map.
type Headers struct {
	fields map[string]field
}

// Pair is one serialized header line.
type Pair struct {
	Name  string
	Value string
}

func Empty() Headers {
	return Headers{}
}

func key(name string) string {
	return strings.ToLower(name)
}

func (h Headers) clone(extra int) map[string]field {
	fields := make(map[string]field, len(h.fields)+extra)
	for k, f := range h.fields {
		fields[k] = f
	}
	return fields
}

// Update inserts or overwrites the value stored under name.
func (h Headers) Update(name, value string) Headers {
	fields := h.clone(1)
	fields[key(name)] = field{name: name, value: value}
	return Headers{fields: fields}
}

// Merge appends value to an existing entry as "old,value", or behaves like
// Update when name is absent. The existing casing is kept.
func (h Headers) Merge(name, value string) Headers {
	k := key(name)
	old, ok := h.fields[k]
	if !ok {
		return h.Update(name, value)
	}
	fields := h.clone(0)
	fields[k] = field{name: old.name, value: old.value + "," + value}
	return Headers{fields: fields}
}

func (h Headers) Remove(name string) Headers {
	k := key(name)
	if _, ok := h.fields[k]; !ok {
		return h
	}
	fields := h.clone(0)
	delete(fields, k)
	return Headers{fields: fields}
}

func (h Headers) Lookup(name string) (string, bool) {
	f, ok := h.fields[key(name)]
	if !ok {
		return "", false
	}
	return f.value, true
}

// Value returns the stored value or "" when name is absent.
func (h Headers) Value(name string) string {
	val, _ := h.Lookup(name)
	return val
}

func (h Headers) Len() int {
	return len(h.fields)
}

// Pairs returns every entry with its stored casing. Entries are sorted by
// lowercased name so renderings are stable; callers must not rely on it.
func (h Headers) Pairs() []Pair {
	keys := make([]string, 0, len(h.fields))
	for k := range h.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		f := h.fields[k]
		pairs = append(pairs, Pair{Name: f.name, Value: f.value})
	}
	return pairs
}
