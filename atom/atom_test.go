package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementIdByName(t *testing.T) {
	assert.Equal(t, ElPath, ElementIdByName("path"))
	assert.Equal(t, ElG, ElementIdByName("g"))
	assert.Equal(t, ElUnknown, ElementIdByName("frobnicate"))
}

func TestAttrIdByName(t *testing.T) {
	assert.Equal(t, AttrFill, AttrIdByName("fill"))
	assert.Equal(t, AttrUnknown, AttrIdByName("frobnicate"))
}

func TestAttrDefault(t *testing.T) {
	v, ok := AttrFillOpacity.Default()
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = AttrD.Default()
	assert.False(t, ok)
}

func TestInheritable(t *testing.T) {
	assert.True(t, AttrFill.Inheritable())
	assert.False(t, AttrTransform.Inheritable())
}

func TestPermittedChild(t *testing.T) {
	assert.True(t, ElDefs.PermittedChild(ElPath))
	assert.False(t, ElDefs.PermittedChild(ElScript))
	// unpoliced containers permit anything
	assert.True(t, ElG.PermittedChild(ElScript))
}

func TestPermittedAttribute(t *testing.T) {
	assert.True(t, ElCircle.PermittedAttribute(AttrCx))
	assert.False(t, ElRect.PermittedAttribute(AttrCx))
	assert.True(t, ElRect.PermittedAttribute(AttrWidth))

	assert.True(t, ElRect.PermittedAttribute(AttrID))
	assert.True(t, ElRect.PermittedAttribute(AttrFill))
	assert.False(t, ElStyle.PermittedAttribute(AttrFill))

	assert.True(t, ElSVG.PermittedAttribute(AttrViewBox))
	assert.False(t, ElRect.PermittedAttribute(AttrViewBox))

	assert.True(t, ElUse.PermittedAttribute(AttrXlinkHref))
	assert.False(t, ElRect.PermittedAttribute(AttrXlinkHref))

	assert.True(t, ElLinearGradient.PermittedAttribute(AttrGradientTransform))
	assert.False(t, ElPattern.PermittedAttribute(AttrGradientTransform))

	// unrecognized elements permit anything, the same conservative default
	// PermittedChild uses.
	assert.True(t, ElUnknown.PermittedAttribute(AttrCx))
}

func TestNameEqual(t *testing.T) {
	a := Name{Prefix: Prefix{NS: NSXLink, Prefix: "xlink"}, LocalName: "href"}
	b := Name{Prefix: Prefix{NS: NSXLink, Prefix: "x"}, LocalName: "href"}
	assert.True(t, a.Equal(b))
	assert.Equal(t, "xlink:href", a.String())
}
