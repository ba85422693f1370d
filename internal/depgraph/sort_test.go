package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortChain(t *testing.T) {
	t.Parallel()

	order, err := Sort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestSortKeepsIndependentOrder(t *testing.T) {
	t.Parallel()

	order, err := Sort(4, func(int) []int { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestSortSmallestReadyFirst(t *testing.T) {
	t.Parallel()

	// 0 waits for 3; 1 and 2 are free.
	order, err := Sort(4, func(i int) []int {
		if i == 0 {
			return []int{3}
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0}, order)
}

func TestSortCycle(t *testing.T) {
	t.Parallel()

	_, err := Sort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	require.ErrorIs(t, err, ErrCycle)
}

func TestSortOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Sort(1, func(int) []int { return []int{5} })
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCycle)
}

func TestSortEmpty(t *testing.T) {
	t.Parallel()

	order, err := Sort(0, nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}
