// Package pagedseq implements an immutable, paged sequence.
//
// It generalizes the paged integer memory model used by a FORTH-style
// virtual machine (fixed-size pages, binary search over page base
// addresses) into a copy-on-write sequence of any element type. Where
// the original model mutates a page's backing array in place, Paged's
// With and Append copy only the page(s) they touch and return a new
// header, so that a single indexed update does not require copying an
// entire large sequence.
package pagedseq

const defaultPageSize = 64

// Paged is an immutable sequence of T, stored as a list of fixed-size
// pages. The zero value is an empty sequence.
type Paged[T any] struct {
	pageSize int
	pages    [][]T
}

// Len returns the number of elements in the sequence.
func (p Paged[T]) Len() int {
	n := 0
	for _, page := range p.pages {
		n += len(page)
	}
	return n
}

// At returns the element at i, and whether i was in range.
func (p Paged[T]) At(i int) (v T, ok bool) {
	if i < 0 {
		return v, false
	}
	pageID, off := p.locate(i)
	if pageID < 0 {
		return v, false
	}
	return p.pages[pageID][off], true
}

// With returns a copy of the sequence with the element at i replaced
// by v. Only the page containing i is copied; all other pages are
// shared with the receiver. Panics if i is out of range, matching the
// contract that index-update targets an existing element.
func (p Paged[T]) With(i int, v T) Paged[T] {
	pageID, off := p.locate(i)
	if pageID < 0 {
		panic("pagedseq: index out of range")
	}
	pages := make([][]T, len(p.pages))
	copy(pages, p.pages)
	page := make([]T, len(pages[pageID]))
	copy(page, pages[pageID])
	page[off] = v
	pages[pageID] = page
	return Paged[T]{pageSize: p.pageSize, pages: pages}
}

// Append returns a copy of the sequence with vs appended at the end.
// The last existing page is topped up (copied, not mutated) before any
// new pages are allocated.
func (p Paged[T]) Append(vs ...T) Paged[T] {
	if len(vs) == 0 {
		return p
	}
	pageSize := p.pageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	pages := make([][]T, len(p.pages))
	copy(pages, p.pages)

	if n := len(pages); n > 0 {
		last := pages[n-1]
		if room := pageSize - len(last); room > 0 {
			take := room
			if take > len(vs) {
				take = len(vs)
			}
			grown := make([]T, len(last)+take)
			copy(grown, last)
			copy(grown[len(last):], vs[:take])
			pages[n-1] = grown
			vs = vs[take:]
		}
	}

	for len(vs) > 0 {
		take := pageSize
		if take > len(vs) {
			take = len(vs)
		}
		page := make([]T, take)
		copy(page, vs[:take])
		pages = append(pages, page)
		vs = vs[take:]
	}

	return Paged[T]{pageSize: pageSize, pages: pages}
}

// Slice materializes the sequence as a plain slice.
func (p Paged[T]) Slice() []T {
	out := make([]T, 0, p.Len())
	for _, page := range p.pages {
		out = append(out, page...)
	}
	return out
}

// FromSlice builds a Paged sequence from a plain slice.
func FromSlice[T any](vs []T) Paged[T] {
	var p Paged[T]
	return p.Append(vs...)
}

// locate finds the page and in-page offset for index i. Pages are
// scanned in order accumulating lengths; an interpreter's string and
// vector values hold few enough pages that this is simpler than the
// base-address binary search used by the original fixed-size-page
// memory model without costing anything in practice.
func (p Paged[T]) locate(i int) (pageID, off int) {
	if i < 0 {
		return -1, 0
	}
	acc := 0
	for id, page := range p.pages {
		if i < acc+len(page) {
			return id, i - acc
		}
		acc += len(page)
	}
	return -1, 0
}
