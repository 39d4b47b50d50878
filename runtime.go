package imp

import "github.com/implang/imp/internal/pagedseq"

// Stdin is the finite, immutable remaining-input cursor (§ Stdin
// cursor). Advancing never copies the underlying character slice; it
// only moves an offset, since |I| is only ever consumed from the
// front.
type Stdin struct {
	chars []rune
	pos   int
}

// NewStdin builds a Stdin cursor over s, decoded as Unicode code
// points (§ Open Questions: code points, not bytes).
func NewStdin(s string) Stdin {
	return Stdin{chars: []rune(s)}
}

// Len returns the number of characters remaining.
func (in Stdin) Len() int {
	if n := len(in.chars) - in.pos; n > 0 {
		return n
	}
	return 0
}

// Peek returns the character at offset d from the cursor, or Unit if
// out of range (including negative d, per § Open Questions).
func (in Stdin) Peek(d int) Value {
	i := in.pos + d
	if d < 0 || i < in.pos || i >= len(in.chars) {
		return Unit{}
	}
	return Char(in.chars[i])
}

// Advance returns a new cursor with k characters dropped from the
// front, clamped at empty.
func (in Stdin) Advance(k int) Stdin {
	if k < 0 {
		k = 0
	}
	pos := in.pos + k
	if pos > len(in.chars) {
		pos = len(in.chars)
	}
	return Stdin{chars: in.chars, pos: pos}
}

// Stdout is the finite, append-only accumulated output (§ Stdout),
// backed by a paged sequence so that long-running programs that
// putc one character at a time don't pay an O(n) copy per character.
type Stdout struct {
	chars pagedseq.Paged[rune]
}

// Put appends the given characters to the output.
func (out Stdout) Put(rs ...rune) Stdout {
	return Stdout{chars: out.chars.Append(rs...)}
}

// Len returns the number of characters written so far.
func (out Stdout) Len() int { return out.chars.Len() }

// String renders the accumulated output as a Go string.
func (out Stdout) String() string { return string(out.chars.Slice()) }

// Runtime is the triple (S, I, O) threaded through every evaluation
// (§ Runtime).
type Runtime struct {
	Store Store
	Stdin Stdin
	Stdout Stdout

	// scopeDepth is the stack-local scope counter (§ Structured control
	// flow): incremented on lambda entry, decremented on exit, and
	// folded into every user-visible local variable's Name.
	scopeDepth int64
}

// NewRuntime seeds an empty runtime with s as the remaining input, per
// § Entry point: R0 = (∅, chars(s), []).
func NewRuntime(s string) Runtime {
	return Runtime{Stdin: NewStdin(s)}
}

// appendValue appends a Value's character representation to out, per
// AM's Put instruction: a Char argument appends the one character, a
// sequence argument (Str) appends the whole sequence.
func appendValue(out Stdout, v Value) Stdout {
	switch x := v.(type) {
	case Char:
		return out.Put(rune(x))
	case Str:
		return out.Put(x.chars.Slice()...)
	default:
		panic(MalformedIR{Reason: "Put expects a Char or Str argument"})
	}
}
