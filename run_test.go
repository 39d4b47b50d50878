package imp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/implang/imp"
	"github.com/implang/imp/examples"
)

func TestRunCalculator(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"addition", "2 + 3\n", "5\n"},
		{"subtraction", "10 - 4\n", "6\n"},
		{"multiplication", "6 * 7\n", "42\n"},
		{"division", "20 / 4\n", "5\n"},
		{"modulo", "20 % 6\n", "2\n"},
		{"division by zero", "1 / 0\n", "Division by zero!\n"},
		{"modulo zero", "1 % 0\n", "Modulo zero!\n"},
		{"unknown operator", "1 ^ 2\n", "Invalid OP: ^\n"},
		{"negative operands", "-5 + -3\n", "-8\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := imp.Run(context.Background(), examples.Calculator(), tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRunGreet(t *testing.T) {
	cases := []struct {
		name     string
		language examples.Language
		input    string
		want     string
	}{
		{"english", examples.English, "  World  \n", "Hello, World!\n"},
		{"french", examples.French, "Monde\n", "Bonjour, Monde !\n"},
		{"chinese", examples.Chinese, "世界\n", "世界好。\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := imp.Run(context.Background(), examples.Greet(tc.language), tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRunMergeSort(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already sorted", "1, 2, 3\n", "[1, 2, 3]\n"},
		{"reverse sorted", "5, 4, 3, 2, 1\n", "[1, 2, 3, 4, 5]\n"},
		{"single element", "42\n", "[42]\n"},
		{"empty", "\n", "[]\n"},
		{"negatives and repeats", "3, -1, 2, -1, 0\n", "[-1, -1, 0, 2, 3]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := imp.Run(context.Background(), examples.MergeSort(), tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRunRespectsMaxSteps(t *testing.T) {
	_, err := imp.Run(context.Background(), examples.MergeSort(), "5, 4, 3, 2, 1\n", imp.WithMaxSteps(5))
	require.Error(t, err)
}
