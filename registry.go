// ©brunoczim 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corustine

import (
	"cmp"
	"slices"
)

// entry owns one coroutine and its identifier.
type entry[I cmp.Ordered, M, R any] struct {
	id    I
	co    Coroutine[I, M, R]
	state State
}

// registry keeps entries sorted by identifier.
// Every insertion path goes through search, so the slice stays ordered
// regardless of the order in which tasks are registered.
type registry[I cmp.Ordered, M, R any] struct {
	entries []entry[I, M, R]
}

func compareEntry[I cmp.Ordered, M, R any](e entry[I, M, R], id I) int {
	return cmp.Compare(e.id, id)
}

// search returns the position of id, or the position where it would be
// inserted, and whether it is present.
func (r *registry[I, M, R]) search(id I) (int, bool) {
	return slices.BinarySearchFunc(r.entries, id, compareEntry[I, M, R])
}

// register inserts co under id, or replaces the coroutine in place if id
// is already present. A replaced entry starts over as uninitialized.
func (r *registry[I, M, R]) register(id I, co Coroutine[I, M, R]) {
	i, found := r.search(id)
	if found {
		r.entries[i].co = co
		r.entries[i].state = StateUninitialized
		return
	}
	r.entries = slices.Insert(r.entries, i, entry[I, M, R]{id: id, co: co})
}

// lookup returns the entry for id, or nil.
func (r *registry[I, M, R]) lookup(id I) *entry[I, M, R] {
	i, found := r.search(id)
	if !found {
		return nil
	}
	return &r.entries[i]
}

// IDFor implements View.
func (r *registry[I, M, R]) IDFor(name I) (I, bool) {
	e := r.lookup(name)
	if e == nil {
		var zero I
		return zero, false
	}
	return e.id, true
}

// Len implements View.
func (r *registry[I, M, R]) Len() int {
	return len(r.entries)
}

func (r *registry[I, M, R]) ids() []I {
	ids := make([]I, len(r.entries))
	for i := range r.entries {
		ids[i] = r.entries[i].id
	}
	return ids
}
