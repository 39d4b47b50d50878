package imp

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"

	"github.com/implang/imp/internal/runeio"
)

// Dumper renders a Runtime's store, remaining input and accumulated
// output for debugging, in the same "# X Dump" / indented-section
// style as the VM dumper this interpreter descends from.
type Dumper struct {
	out io.Writer

	// wide controls whether every store entry gets its own line
	// (enabled automatically for a terminal destination, where a human
	// is presumably reading along) or whether entries are packed onto
	// fewer lines for a piped/redirected destination.
	wide bool
}

// NewDumper builds a Dumper writing to out, auto-detecting a terminal
// destination via isatty the way a CLI driver would decide whether to
// spend the extra vertical space on a human reader.
func NewDumper(out io.Writer) *Dumper {
	wide := false
	if f, ok := out.(*os.File); ok {
		wide = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Dumper{out: out, wide: wide}
}

// Dump writes a full snapshot of rt.
func (d *Dumper) Dump(rt Runtime) {
	fmt.Fprintf(d.out, "# Runtime Dump\n")
	d.dumpStore(rt.Store)
	d.dumpStdin(rt.Stdin)
	d.dumpStdout(rt.Stdout)
}

func (d *Dumper) dumpStore(s Store) {
	fmt.Fprintf(d.out, "  store: %d entries\n", s.Len())

	type entry struct {
		name  string
		value string
	}
	var entries []entry
	s.Each(func(name Name, value Value) {
		entries = append(entries, entry{fmt.Sprintf("%v", name), value.String()})
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	sep := " "
	if d.wide {
		sep = "\n    "
	}
	for _, e := range entries {
		fmt.Fprintf(d.out, "   %s%s = %s", sep, e.name, e.value)
	}
	if len(entries) > 0 {
		fmt.Fprintln(d.out)
	}
}

func (d *Dumper) dumpStdin(in Stdin) {
	fmt.Fprintf(d.out, "  stdin: %d chars remaining\n", in.Len())
	fmt.Fprintf(d.out, "    %s\n", caretQuote(remainingRunes(in)))
}

func (d *Dumper) dumpStdout(out Stdout) {
	fmt.Fprintf(d.out, "  stdout: %d chars written\n", out.Len())
	fmt.Fprintf(d.out, "    %s\n", caretQuote([]rune(out.String())))
}

func remainingRunes(in Stdin) []rune {
	rs := make([]rune, 0, in.Len())
	for i := 0; i < in.Len(); i++ {
		v := in.Peek(i)
		ch, ok := v.(Char)
		if !ok {
			break
		}
		rs = append(rs, rune(ch))
	}
	return rs
}

// caretQuote renders rs with control characters in their ^X caret
// form (runeio.CaretForm), so a dump stays on one line even when the
// program's input or output contains newlines or other C0/C1 control
// characters.
func caretQuote(rs []rune) string {
	buf := make([]byte, 0, len(rs))
	for _, r := range rs {
		if caret := runeio.CaretForm(r); caret != "" {
			buf = append(buf, caret...)
			continue
		}
		buf = append(buf, string(r)...)
	}
	return string(buf)
}
