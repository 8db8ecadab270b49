package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestArgMax(t *testing.T) {
	require.Equal(t, 1, ArgMax([]int{1, 5, 5, 2}))
	require.Equal(t, 2, ArgMax([]float64{-1.5, -0.5, 0.25}))
	require.Equal(t, -1, ArgMax([]int{}))
}
