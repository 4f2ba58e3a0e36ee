package optimize

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixIdsQualifiesIDAndReference(t *testing.T) {
	d, svg := newDoc()
	rectID := child(d, svg, "rect")
	set(rectID, "id", "box")
	use := child(d, svg, "use")
	set(use, "xlink:href", "#box")

	require.NoError(t, run(d, NewPrefixIds(PrefixIdsOptions{Prefix: "p"})))

	id, ok := attrString(rectID, atom.AttrID)
	require.True(t, ok)
	assert.Equal(t, "p_box", id)

	href, ok := attrString(use, atom.AttrXlinkHref)
	require.True(t, ok)
	assert.Equal(t, "#p_box", href)
}

func TestPrefixIdsIsIdempotent(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	set(rect, "id", "box")

	pass := NewPrefixIds(PrefixIdsOptions{Prefix: "p"})
	require.NoError(t, run(d, pass))
	require.NoError(t, run(d, pass))

	id, ok := attrString(rect, atom.AttrID)
	require.True(t, ok)
	assert.Equal(t, "p_box", id)
}

func TestPrefixIdsQualifiesClassTokens(t *testing.T) {
	d, svg := newDoc()
	rect := child(d, svg, "rect")
	rect.ClassList().Add("a")
	rect.ClassList().Add("b")

	require.NoError(t, run(d, NewPrefixIds(PrefixIdsOptions{Prefix: "p"})))

	assert.Equal(t, []string{"p_a", "p_b"}, rect.ClassList().Iter())
}
