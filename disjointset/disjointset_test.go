package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ds := New(5)

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 5, ds.Sets())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i), "element %d should be its own root", i)
		assert.Zero(t, ds.rank[i])
	}
}

func TestUnion(t *testing.T) {
	t.Run("merge reports true then false", func(t *testing.T) {
		ds := New(4)

		assert.True(t, ds.Union(0, 1))
		assert.False(t, ds.Union(1, 0))
		assert.False(t, ds.Union(0, 0))
		assert.Equal(t, 3, ds.Sets())
	})

	t.Run("tie attaches second root under first and bumps rank", func(t *testing.T) {
		ds := New(2)

		require.True(t, ds.Union(0, 1))
		assert.Equal(t, 0, ds.Find(1))
		assert.Equal(t, 1, ds.rank[0])
		assert.Equal(t, 0, ds.rank[1])
	})

	t.Run("lower rank root goes under higher rank root", func(t *testing.T) {
		ds := New(3)

		require.True(t, ds.Union(1, 2)) // root 1, rank 1
		require.True(t, ds.Union(0, 2)) // root 0 has rank 0

		assert.Equal(t, 1, ds.Find(0))
		assert.Equal(t, 1, ds.rank[1])
	})
}

func TestConnected(t *testing.T) {
	ds := New(6)
	ds.Union(0, 1)
	ds.Union(2, 3)
	ds.Union(1, 3)

	assert.True(t, ds.Connected(0, 2))
	assert.True(t, ds.Connected(3, 0))
	assert.False(t, ds.Connected(0, 4))
	assert.False(t, ds.Connected(4, 5))
	assert.Equal(t, 3, ds.Sets())
}

func TestFindCompressesPath(t *testing.T) {
	const n = 100000
	ds := New(n)

	// Build a degenerate chain by hand; Union alone would keep it shallow.
	for i := 1; i < n; i++ {
		ds.parent[i] = i - 1
	}

	assert.Equal(t, 0, ds.Find(n-1))
	for i := 0; i < n; i++ {
		assert.Equal(t, 0, ds.parent[i], "node %d not relinked to root", i)
	}
}

func TestFindIsOrderIndependent(t *testing.T) {
	ds := New(8)
	pairs := [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {1, 3}, {5, 7}, {3, 7}}
	for _, p := range pairs {
		ds.Union(p[0], p[1])
	}

	root := ds.Find(7)
	for i := 7; i >= 0; i-- {
		assert.Equal(t, root, ds.Find(i))
	}
	assert.Equal(t, 1, ds.Sets())
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 16
	for i := 0; i < b.N; i++ {
		ds := New(n)
		for j := 1; j < n; j++ {
			ds.Union(j-1, j)
		}
		_ = ds.Find(n - 1)
	}
}
