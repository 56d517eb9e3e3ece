package lisa_test

import (
	"testing"

	"github.com/katalvlaran/geolisa/lisa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationTable_Draws(t *testing.T) {
	t.Parallel()

	const n, perms = 12, 40
	tbl, err := lisa.NewPermutationTable(n, perms, []int{0, 3, 3, 1, 11, 0}, 9, 2)
	require.NoError(t, err)

	assert.Equal(t, n, tbl.N())
	assert.Equal(t, perms, tbl.Permutations())
	assert.Equal(t, []int{1, 3, 11}, tbl.Counts(), "only counts that occur, zero excluded")

	for _, k := range tbl.Counts() {
		for p := 0; p < perms; p++ {
			d, err := tbl.Draw(k, p)
			require.NoError(t, err)
			require.Len(t, d, k)
			seen := make(map[int]bool, k)
			for _, j := range d {
				assert.True(t, j >= 0 && j < n-1, "index %d outside all-but-self pool", j)
				assert.False(t, seen[j], "k=%d p=%d repeats %d", k, p, j)
				seen[j] = true
			}
		}
	}

	// k = N-1 draws the whole pool.
	d, err := tbl.Draw(11, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, d)
}

func TestPermutationTable_Deterministic(t *testing.T) {
	t.Parallel()

	counts := []int{2, 4, 5}
	a, err := lisa.NewPermutationTable(20, 30, counts, 77, 1)
	require.NoError(t, err)
	b, err := lisa.NewPermutationTable(20, 30, counts, 77, 0)
	require.NoError(t, err)
	c, err := lisa.NewPermutationTable(20, 30, []int{4}, 77, 4)
	require.NoError(t, err)

	for _, k := range counts {
		for p := 0; p < 30; p++ {
			da, _ := a.Draw(k, p)
			db, _ := b.Draw(k, p)
			assert.Equal(t, da, db)
		}
	}
	// A count's stream does not depend on which other counts are present.
	da, _ := a.Draw(4, 17)
	dc, _ := c.Draw(4, 17)
	assert.Equal(t, da, dc)
}

func TestPermutationTable_Errors(t *testing.T) {
	t.Parallel()

	_, err := lisa.NewPermutationTable(5, 10, []int{5}, 1, 1)
	assert.ErrorIs(t, err, lisa.ErrNeighborCount, "k may not exceed N-1")
	_, err = lisa.NewPermutationTable(5, 10, []int{-1}, 1, 1)
	assert.ErrorIs(t, err, lisa.ErrNeighborCount)
	_, err = lisa.NewPermutationTable(5, 0, []int{1}, 1, 1)
	assert.ErrorIs(t, err, lisa.ErrOptionViolation)

	tbl, err := lisa.NewPermutationTable(5, 10, []int{2}, 1, 1)
	require.NoError(t, err)
	_, err = tbl.Draw(3, 0)
	assert.ErrorIs(t, err, lisa.ErrNeighborCount)
	_, err = tbl.Draw(2, 10)
	assert.ErrorIs(t, err, lisa.ErrOptionViolation)
}
