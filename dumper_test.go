package imp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumperRendersStoreStdinStdout(t *testing.T) {
	rt := NewRuntime("abc\n")
	rt.Store = rt.Store.Set("x", Int(5))
	rt.Stdout = rt.Stdout.Put('h', 'i', '\n')

	var buf bytes.Buffer
	NewDumper(&buf).Dump(rt)

	out := buf.String()
	require.Contains(t, out, "# Runtime Dump")
	require.Contains(t, out, "store: 1 entries")
	require.Contains(t, out, "x = 5")
	require.Contains(t, out, "stdin: 4 chars remaining")
	require.Contains(t, out, "stdout: 3 chars written")
	require.True(t, strings.Contains(out, "^J"), "newline in stdout should render as its caret form")
}

func TestNewDumperIsNotWideForANonTerminal(t *testing.T) {
	var buf bytes.Buffer
	d := NewDumper(&buf)
	require.False(t, d.wide)
}
