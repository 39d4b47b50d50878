package imp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracerStepWritesOneLinePerStep(t *testing.T) {
	var buf bytes.Buffer
	tr := newTracer(&buf)

	tr.step(1, Lit(Int(1)), Runtime{})
	tr.step(2, Lit(Int(2)), Runtime{})

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	require.Equal(t, 2, lines)
	require.Contains(t, buf.String(), tr.runID)
	require.Contains(t, buf.String(), "step=1")
	require.Contains(t, buf.String(), "step=2")
}

func TestTracersGetDistinctRunIDs(t *testing.T) {
	var buf bytes.Buffer
	a := newTracer(&buf)
	b := newTracer(&buf)
	require.NotEqual(t, a.runID, b.runID)
}
