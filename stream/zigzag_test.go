package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigzag(t *testing.T) {
	type TC struct {
		v int32
		u uint32
	}

	tcs := []TC{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{0x7FFFFFFF, 0xFFFFFFFE},
		{-0x7FFFFFFF - 1, 0xFFFFFFFF},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.u, zigzag(tc.v))
		require.Equal(t, tc.v, unzigzag(tc.u))
	}
}
