package braceexpand_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/modules/braceexpand"
	"pgregory.net/rapid"
)

func TestProperty_IntegerRangeBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		from := rapid.IntRange(-500, 500).Draw(rt, "from")
		to := rapid.IntRange(-500, 500).Draw(rt, "to")

		got, err := braceexpand.Expand(fmt.Sprintf("{%d..%d}", from, to))
		require.NoError(rt, err)

		size := to - from
		if size < 0 {
			size = -size
		}
		require.Len(rt, got, size+1)
		require.Equal(rt, strconv.Itoa(from), got[0])
		require.Equal(rt, strconv.Itoa(to), got[len(got)-1])
	})
}

func TestProperty_ListProductSize(t *testing.T) {
	word := rapid.StringMatching(`[a-z]{1,4}`)
	rapid.Check(t, func(rt *rapid.T) {
		left := rapid.SliceOfN(word, 2, 5).Draw(rt, "left")
		right := rapid.SliceOfN(word, 2, 5).Draw(rt, "right")

		pattern := "{" + strings.Join(left, ",") + "}-{" + strings.Join(right, ",") + "}"
		got, err := braceexpand.Expand(pattern)
		require.NoError(rt, err)
		require.Len(rt, got, len(left)*len(right))
		require.Equal(rt, left[0]+"-"+right[0], got[0])
	})
}
