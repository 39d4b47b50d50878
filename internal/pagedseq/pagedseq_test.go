package pagedseq

import "testing"

func TestAppendAndAt(t *testing.T) {
	var p Paged[int]
	p = p.Append(1, 2, 3)
	p = p.Append(4, 5)

	if got := p.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
	for i, want := range []int{1, 2, 3, 4, 5} {
		got, ok := p.At(i)
		if !ok || got != want {
			t.Fatalf("At(%d) = %v, %v; want %v, true", i, got, ok, want)
		}
	}
	if _, ok := p.At(5); ok {
		t.Fatalf("At(5) should be out of range")
	}
	if _, ok := p.At(-1); ok {
		t.Fatalf("At(-1) should be out of range")
	}
}

func TestWithDoesNotMutateOriginal(t *testing.T) {
	p := FromSlice([]string{"a", "b", "c"})
	q := p.With(1, "B")

	if got, _ := p.At(1); got != "b" {
		t.Fatalf("original mutated: At(1) = %v, want b", got)
	}
	if got, _ := q.At(1); got != "B" {
		t.Fatalf("With(1, B): At(1) = %v, want B", got)
	}
	if got := q.Len(); got != 3 {
		t.Fatalf("With should not change length, got %d", got)
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	p := FromSlice(in)
	out := p.Slice()
	if len(out) != len(in) {
		t.Fatalf("Slice() len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("Slice()[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestAppendAcrossPages(t *testing.T) {
	var p Paged[byte]
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	p = p.Append(data...)
	if p.Len() != len(data) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(data))
	}
	for i, want := range data {
		got, ok := p.At(i)
		if !ok || got != want {
			t.Fatalf("At(%d) = %v,%v; want %v,true", i, got, ok, want)
		}
	}
	q := p.With(300, 0xFF)
	if got, _ := q.At(300); got != 0xFF {
		t.Fatalf("With across pages failed: got %v", got)
	}
	if got, _ := p.At(300); got != data[300] {
		t.Fatalf("With across pages mutated original")
	}
}
