package svg

import (
	"strings"
	"testing"

	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/xmlwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBuildsElementTreeWithAttributes(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><rect fill="red" width="10"/></svg>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	root := doc.SVGElement()
	require.NotNil(t, root)
	assert.Equal(t, atom.ElSVG, root.ID)

	rect := root.FirstElementChild()
	require.NotNil(t, rect)
	assert.Equal(t, atom.ElRect, rect.ID)

	fillAttr := rect.Attrs.GetNamedItemLocal("fill")
	require.NotNil(t, fillAttr)
	assert.Equal(t, "red", fillAttr.Value.String())
}

func TestReadResolvesXlinkNamespace(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#box"/></svg>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	use := doc.SVGElement().FirstElementChild()
	require.NotNil(t, use)
	href := use.Attrs.GetNamedItemLocal("xlink:href")
	require.NotNil(t, href)
	assert.Equal(t, "#box", href.Value.String())
}

func TestReadCollectsStyleTextIntoData(t *testing.T) {
	src := `<svg><style>.a{fill:red}</style></svg>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	style := doc.SVGElement().FirstElementChild()
	require.NotNil(t, style)
	assert.Equal(t, atom.ElStyle, style.ID)
	assert.Equal(t, ".a{fill:red}", style.Data)
}

func TestReadThenWriteRoundTrips(t *testing.T) {
	src := `<svg><rect fill="blue" width="10"/></svg>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Write(&b, doc, xmlwriter.Options{EnableSelfClosing: true}))

	out := b.String()
	assert.Contains(t, out, `fill="#00f"`)
	assert.Contains(t, out, `<rect`)
}

func TestReadCapturesXMLDeclaration(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="no"?><svg/>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	require.NotNil(t, doc.Declaration)
	assert.Equal(t, "1.0", doc.Declaration.Version)
	assert.Equal(t, "UTF-8", doc.Declaration.Encoding)
	assert.True(t, doc.Declaration.HasStandalone)
	assert.False(t, doc.Declaration.Standalone)
}

func TestReadLeavesDeclarationNilWhenAbsent(t *testing.T) {
	src := `<svg/>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Nil(t, doc.Declaration)
}

func TestReadThenWriteRoundTripsDeclaration(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?><svg><rect width="10"/></svg>`
	doc, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Write(&b, doc, xmlwriter.Options{EnableSelfClosing: true}))

	assert.True(t, strings.HasPrefix(b.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
}
