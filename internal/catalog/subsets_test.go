package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeaturedAndNewestKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	var c Catalog
	for i := 0; i < 6; i++ {
		c.Tools = append(c.Tools, Tool{ID: fmt.Sprintf("t%d", i), IsPopular: i%2 == 0, IsNew: i > 0})
	}

	require.Equal(t, []string{"t0", "t2", "t4"}, toolIDs(Featured(c, 4)))
	require.Equal(t, []string{"t1", "t2", "t3", "t4"}, toolIDs(Newest(c, 4)))
	require.Empty(t, Featured(c, 0))
	require.NotNil(t, Newest(Empty(), 4))
}

func TestRelatedExcludesSelf(t *testing.T) {
	t.Parallel()

	c := Catalog{Tools: []Tool{
		{ID: "a", Category: "写作"},
		{ID: "b", Category: "写作"},
		{ID: "c", Category: "图像"},
		{ID: "d", Category: "写作"},
		{ID: "e", Category: "写作"},
		{ID: "f", Category: "写作"},
		{ID: "g", Category: "写作"},
	}}
	require.Equal(t, []string{"b", "d", "e", "f"}, toolIDs(Related(c, c.Tools[0], 4)))
	require.Empty(t, Related(c, c.Tools[2], 4))
}

func TestCountByCategory(t *testing.T) {
	t.Parallel()

	counts := CountByCategory(mustLoadFixture(t))
	require.Equal(t, 1, counts["写作"])
	require.Equal(t, 1, counts["图像"])
	require.Zero(t, counts["音频"])
}
