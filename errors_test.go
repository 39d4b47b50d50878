package imp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.Equal(t, `malformed IR: bad lhs`, MalformedIR{Reason: "bad lhs"}.Error())
	require.Equal(t, `unsupported operator "&" for operand types [Int Str]`,
		UnsupportedOperator{Sym: "&", Types: []string{"Int", "Str"}}.Error())
	require.Equal(t, `division by zero in "/"`, DivisionByZero{Sym: "/"}.Error())
	require.Equal(t, "step limit exceeded: step 12,004 of max 10,000",
		StepLimitExceeded{Steps: 12004, MaxSteps: 10000}.Error())
}

func TestInternalInvariantViolationUnwrapsAndReportsStack(t *testing.T) {
	err := newInvariantViolation("broke: %s", "reason")
	require.Contains(t, err.Error(), "broke: reason")
	require.NotEmpty(t, InvariantStack(err))

	wrapped := errors.New("not an invariant violation")
	require.Empty(t, InvariantStack(wrapped))
}
