package attr

import (
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, "red", c.String())
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	assert.Equal(t, "#369", c.String())
}

func TestParseColorRGBFunction(t *testing.T) {
	c, err := ParseColor("rgb(255, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, "red", c.String())
}

func TestParsePaintURL(t *testing.T) {
	p, err := ParsePaint("url(#grad1) red")
	require.NoError(t, err)
	assert.Equal(t, "grad1", p.URL)
	assert.Equal(t, "red", p.Color.String())
}

func TestParsePaintNone(t *testing.T) {
	p, err := ParsePaint("none")
	require.NoError(t, err)
	assert.True(t, p.IsNone)
	assert.Equal(t, "none", p.String())
}

func TestParseLength(t *testing.T) {
	l, err := ParseLength("10px")
	require.NoError(t, err)
	assert.Equal(t, "10px", l.String())

	l2, err := ParseLength("0")
	require.NoError(t, err)
	assert.Equal(t, "0", l2.String())
}

func TestParseLengthPercentage(t *testing.T) {
	lp, err := ParseLengthPercentage("50%")
	require.NoError(t, err)
	assert.Equal(t, "50%", lp.String())
}

func TestAttrTotalParsing(t *testing.T) {
	a := ParseAttr("fill", "not a paint ((")
	assert.Equal(t, atom.AttrFill, a.ID)
	// falls back to Unknown on a malformed value, preserving raw text.
	if _, ok := a.Value.(*Unknown); !ok {
		t.Fatalf("expected fallback to Unknown, got %T", a.Value)
	}
}

func TestAttrUnknownName(t *testing.T) {
	a := ParseAttr("data-custom", "whatever")
	assert.Equal(t, atom.AttrUnknown, a.ID)
	assert.Equal(t, "whatever", a.Value.String())
}

func TestAttrPathValue(t *testing.T) {
	a := ParseAttr("d", "M0 0L10 10")
	require.Equal(t, atom.AttrD, a.ID)
	pv, ok := a.Value.(*PathValue)
	require.True(t, ok)
	assert.False(t, pv.IsEmpty())
}

func TestAttrTransformValue(t *testing.T) {
	a := ParseAttr("transform", "translate(10,20)")
	require.Equal(t, atom.AttrTransform, a.ID)
	inh, ok := a.Value.(*Inheritable[*TransformValue])
	require.True(t, ok)
	assert.False(t, inh.IsEmpty())
}

func TestInheritableInherit(t *testing.T) {
	inh := Inherited[*Number]()
	assert.Equal(t, "inherit", inh.String())
}

func TestTokenListClass(t *testing.T) {
	a := ParseAttr("class", "a b c")
	tl, ok := a.Value.(*TokenList)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, tl.Tokens)
	assert.Equal(t, "a b c", tl.String())
}

func TestParsePoints(t *testing.T) {
	p, err := ParsePoints("0,0 10,10 20,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 10, 10, 20, 0}, p.Values)
}

func TestParseViewBox(t *testing.T) {
	v, err := ParseViewBox("0 0 100 200")
	require.NoError(t, err)
	assert.Equal(t, ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 200}, v)
}

func TestParseURLIdentFragment(t *testing.T) {
	u, err := ParseURLIdent("#foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", u.Ident)
	assert.Equal(t, "#foo", u.String())
}

func TestVisitURLOverPaint(t *testing.T) {
	p, err := ParsePaint("url(#a)")
	require.NoError(t, err)
	var seen string
	p.VisitURL(func(url *string) { seen = *url })
	assert.Equal(t, "a", seen)
}
