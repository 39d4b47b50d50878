package imp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptionsFlattenNested(t *testing.T) {
	var cfg config
	Options(
		WithMaxSteps(10),
		Options(WithTimeout(time.Second), noption{}),
	).apply(&cfg)

	require.Equal(t, uint64(10), cfg.maxSteps)
	require.Equal(t, time.Second, cfg.timeout)
}

func TestOptionsLastWriteWins(t *testing.T) {
	var cfg config
	Options(WithMaxSteps(1), WithMaxSteps(2)).apply(&cfg)
	require.Equal(t, uint64(2), cfg.maxSteps)
}

func TestIntWidthAndSignedCharOptions(t *testing.T) {
	var cfg config
	Options(WithIntWidth(IntWidth8), WithSignedChar(true)).apply(&cfg)
	require.Equal(t, IntWidth8, cfg.intWidth)
	require.True(t, cfg.signedChar)
}

func TestInvalidIntWidthIsConstructionError(t *testing.T) {
	var cfg config
	Options(WithIntWidth(IntWidth(7))).apply(&cfg)
	require.Error(t, cfg.err)

	_, err := EvalWithOptions(IntLit(1), Runtime{}, WithIntWidth(IntWidth(7)))
	require.Error(t, err)

	_, err = Run(context.Background(), IntLit(1), "", WithIntWidth(IntWidth(7)))
	require.Error(t, err)
}
