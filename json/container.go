// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"iter"
	"sort"
)

// List is the payload of an Array value: an ordered sequence of values.
type List struct {
	elems []Value
}

// NewList returns a List holding vs in order.
func NewList(vs ...Value) *List {
	return &List{elems: append([]Value(nil), vs...)}
}

// Len reports the number of elements in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// Index returns a pointer to the i'th element, which may be used to modify it
// in place. It reports an *IndexError if i is out of range.
func (l *List) Index(i int) (*Value, error) {
	if i < 0 || i >= l.Len() {
		return nil, &IndexError{Index: i, Len: l.Len()}
	}
	return &l.elems[i], nil
}

// Set replaces the i'th element with v.
func (l *List) Set(i int, v Value) error {
	p, err := l.Index(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Append adds vs to the end of the list.
func (l *List) Append(vs ...Value) {
	l.elems = append(l.elems, vs...)
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(i, &l.elems[i]) {
				return
			}
		}
	}
}

// Member is a key and value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Map is the payload of an Object value. Keys are unique and members are
// kept in insertion order; replacing the value of an existing key keeps its
// original position.
type Map struct {
	members []Member
	index   map[string]int
}

// NewMap returns a Map holding ms. If a key repeats, the later value replaces
// the earlier one.
func NewMap(ms ...Member) *Map {
	m := &Map{}
	for _, e := range ms {
		m.Set(e.Key, e.Value)
	}
	return m
}

func mapFromGo(in map[string]Value) *Map {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m := &Map{members: make([]Member, 0, len(keys))}
	for _, k := range keys {
		m.members = append(m.members, Member{Key: k, Value: in[k]})
	}
	m.reindex(0)
	return m
}

// Len reports the number of members.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.members)
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Get returns a pointer to the value stored under key, which may be used to
// modify it in place. It reports a *KeyError if key is absent.
func (m *Map) Get(key string) (*Value, error) {
	if m != nil {
		if i, ok := m.index[key]; ok {
			return &m.members[i].Value, nil
		}
	}
	return nil, &KeyError{Key: key}
}

// Set stores v under key, replacing any previous value.
func (m *Map) Set(key string, v Value) {
	if i, ok := m.index[key]; ok {
		m.members[i].Value = v
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.members)
	m.members = append(m.members, Member{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.members = append(m.members[:i], m.members[i+1:]...)
	m.reindex(i)
	return true
}

// Keys returns the keys in member order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		keys = append(keys, m.members[i].Key)
	}
	return keys
}

// All iterates over the members in order.
func (m *Map) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i := 0; i < m.Len(); i++ {
			if !yield(m.members[i].Key, &m.members[i].Value) {
				return
			}
		}
	}
}

// reindex rebuilds the key index for members starting at i.
func (m *Map) reindex(i int) {
	if m.index == nil {
		m.index = make(map[string]int, len(m.members))
	}
	for ; i < len(m.members); i++ {
		m.index[m.members[i].Key] = i
	}
}
