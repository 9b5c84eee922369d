package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawTree(rt *rapid.T) *tree {
	return &tree{
		Name:  rapid.StringMatching(`[a-z]{0,8}`).Draw(rt, "name"),
		Items: rapid.SliceOfN(rapid.Int(), 1, 16).Draw(rt, "items"),
		Index: rapid.MapOfN(
			rapid.StringMatching(`[a-z]{1,6}`),
			rapid.SliceOfN(rapid.Int(), 1, 4),
			1, 6,
		).Draw(rt, "index"),
		Leaf: &leaf{Value: rapid.Int().Draw(rt, "leaf")},
	}
}

// TestCopy_Properties checks that a shallow copy is equal to its source,
// is a distinct instance, and shares nested containers.
func TestCopy_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawTree(rt)

		dst, err := Copy(src)
		require.NoError(rt, err)

		assert.Equal(rt, src, dst)
		assert.NotSame(rt, src, dst)

		i := rapid.IntRange(0, len(src.Items)-1).Draw(rt, "i")
		dst.Items[i]++
		assert.Equal(rt, dst.Items[i], src.Items[i])
	})
}

// TestDeepCopy_Properties checks that a deep copy is equal to its source
// and shares no mutable state with it.
func TestDeepCopy_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawTree(rt)
		want, err := DeepCopy(src)
		require.NoError(rt, err)

		dst, err := DeepCopy(src)
		require.NoError(rt, err)
		assert.Equal(rt, src, dst)
		assert.NotSame(rt, src.Leaf, dst.Leaf)

		for i := range dst.Items {
			dst.Items[i]++
		}
		keys := make([]string, 0, len(dst.Index))
		for k := range dst.Index {
			keys = append(keys, k)
		}
		for _, k := range keys {
			dst.Index[k][0]++
			dst.Index[k+"!"] = nil
		}
		dst.Leaf.Value++

		assert.Equal(rt, want, src, "source unchanged by mutating the copy")
	})
}
