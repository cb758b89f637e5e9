package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0501234567", "0501234567"},
		{"050-123-4567", "0501234567"},
		{"+966 53 796 0319", "966537960319"},
		{"(050) 123.4567", "0501234567"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}
