package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyIntMode(t *testing.T) {
	require.Equal(t, "0", Money(0, "int", 2))
	require.Equal(t, "1,234", Money(1234, "int", 2))
	require.Equal(t, "-1,234,567", Money(-1234567, "int", 2))
}

func TestMoneyFloatMode(t *testing.T) {
	require.Equal(t, "1,234.00", Money(1234, "float", 2))
	require.Equal(t, "1,234.000", Money(1234, "float", 3))
	require.Equal(t, "1,234", Money(1234, "float", 0))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"42", 42},
		{" 1,234 ", 1234},
		{"99.4", 99},
		{"99.5", 100},
		{"-10", -10},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseAmount("abc")
	require.Error(t, err)
}

func TestAutoForeground(t *testing.T) {
	require.Equal(t, "black", AutoForeground("#ffffff"))
	require.Equal(t, "white", AutoForeground("#000000"))
	require.Equal(t, "white", AutoForeground("#336699"))
	require.Equal(t, "black", AutoForeground("ffee00"))
	require.Equal(t, "black", AutoForeground("#zzz"))
	require.Equal(t, "black", AutoForeground(""))
}
