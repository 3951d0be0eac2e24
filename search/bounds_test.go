package search_test

import (
	"testing"

	"github.com/oski-go/bcsrfill/search"
	"github.com/stretchr/testify/require"
)

func TestLowerBound(t *testing.T) {
	t.Parallel()

	s := []int{0, 2, 2, 2, 5, 9, 9, 12}

	cases := []struct {
		key  int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 4},
		{9, 5},
		{10, 7},
		{12, 7},
		{13, 8},
	}
	for _, c := range cases {
		got := search.LowerBound(s, 0, len(s), c.key)
		require.Equalf(t, c.want, got, "key=%d", c.key)
	}
}

func TestUpperBound(t *testing.T) {
	t.Parallel()

	s := []int{0, 2, 2, 2, 5, 9, 9, 12}

	cases := []struct {
		key  int
		want int
	}{
		{-1, 0},
		{0, 1},
		{1, 1},
		{2, 4},
		{5, 5},
		{9, 7},
		{12, 8},
		{13, 8},
	}
	for _, c := range cases {
		got := search.UpperBound(s, 0, len(s), c.key)
		require.Equalf(t, c.want, got, "key=%d", c.key)
	}
}

func TestBounds_WindowRestriction(t *testing.T) {
	t.Parallel()

	// Searching only the window [2:6) == {2,5,9,12} of the full slice.
	s := []int{99, 99, 2, 5, 9, 12, -1, -1}
	require.Equal(t, 2, search.LowerBound(s, 2, 6, 0))
	require.Equal(t, 3, search.LowerBound(s, 2, 6, 5))
	require.Equal(t, 6, search.LowerBound(s, 2, 6, 100))
	require.Equal(t, 6, search.UpperBound(s, 2, 6, 100))
}

func TestBounds_EmptyWindow(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}
	require.Equal(t, 1, search.LowerBound(s, 1, 1, 5))
	require.Equal(t, 1, search.UpperBound(s, 1, 1, 5))
}
