// Package atom provides interned identifiers for SVG element and attribute
// names, namespaces, and prefixes, plus the closed ElementId/AttrId
// enumerations that drive the rest of the optimizer's typed model.
package atom

import "sort"

// Namespace identifies one of the handful of XML namespaces the optimizer
// understands by name.
type Namespace int

const (
	NSSVG Namespace = iota
	NSXLink
	NSXML
	NSXMLNS
	NSUnknown
)

var namespaceURIs = map[Namespace]string{
	NSSVG:     "http://www.w3.org/2000/svg",
	NSXLink:   "http://www.w3.org/1999/xlink",
	NSXML:     "http://www.w3.org/XML/1998/namespace",
	NSXMLNS:   "http://www.w3.org/2000/xmlns/",
	NSUnknown: "",
}

// URI returns the canonical namespace URI for ns.
func (ns Namespace) URI() string { return namespaceURIs[ns] }

// NamespaceByURI resolves a URI string back to a known Namespace, or
// NSUnknown if the URI isn't one of the recognized set.
func NamespaceByURI(uri string) Namespace {
	for ns, u := range namespaceURIs {
		if ns != NSUnknown && u == uri {
			return ns
		}
	}
	return NSUnknown
}

// Prefix is a (namespace, textual-prefix) pair. The textual prefix is
// display-only: two Prefixes with the same Namespace are equal regardless of
// the atom used to spell the prefix.
type Prefix struct {
	NS     Namespace
	Prefix string
}

// Name is a namespace-qualified element or attribute name. Equality is
// defined by namespace + local name; the Prefix field never participates in
// equality, only in serialization.
type Name struct {
	Prefix    Prefix
	LocalName string
}

// Equal reports whether n and o refer to the same qualified name.
func (n Name) Equal(o Name) bool {
	return n.Prefix.NS == o.Prefix.NS && n.LocalName == o.LocalName
}

// Local returns a namespace-less Name for the given local name, the common
// case for SVG's own element and presentation-attribute vocabulary.
func Local(local string) Name {
	return Name{Prefix: Prefix{NS: NSSVG}, LocalName: local}
}

// String renders the name the way it would appear in a start tag, including
// the prefix if one is set.
func (n Name) String() string {
	if n.Prefix.Prefix != "" {
		return n.Prefix.Prefix + ":" + n.LocalName
	}
	return n.LocalName
}

// CategoryBits is a bit set of the broad SVG element categories used to
// drive pass eligibility checks (e.g. "is this a shape?").
type CategoryBits uint32

const (
	CategoryShape CategoryBits = 1 << iota
	CategoryStructural
	CategoryContainer
	CategoryGradient
	CategoryAnimation
	CategoryDescriptive
	CategoryText
	CategoryPaintServer
)

// InfoBits carries per-element facts that aren't categories but still guide
// optimization (e.g. "never renders anything itself").
type InfoBits uint32

const (
	InfoNonRendering InfoBits = 1 << iota
	InfoTextContent
)

// ElementId is a closed enumeration over every SVG 1.1/2 element name the
// optimizer has specific knowledge of, plus Unknown for anything else.
type ElementId int

const (
	ElUnknown ElementId = iota
	ElSVG
	ElG
	ElDefs
	ElSymbol
	ElUse
	ElSwitch
	ElMarker
	ElLinearGradient
	ElRadialGradient
	ElStop
	ElPattern
	ElClipPath
	ElMask
	ElFilter
	ElPath
	ElRect
	ElCircle
	ElEllipse
	ElLine
	ElPolyline
	ElPolygon
	ElText
	ElTSpan
	ElTextPath
	ElImage
	ElForeignObject
	ElStyle
	ElScript
	ElTitle
	ElDesc
	ElMetadata
	ElA
	ElView
	ElAltGlyph
	ElAltGlyphDef
	ElAltGlyphItem
	ElGlyph
	ElGlyphRef
	ElTref
)

type elementInfo struct {
	name       string
	categories CategoryBits
	info       InfoBits
}

var elementTable = []elementInfo{
	ElUnknown:        {"", 0, 0},
	ElSVG:            {"svg", CategoryStructural | CategoryContainer, 0},
	ElG:              {"g", CategoryStructural | CategoryContainer, 0},
	ElDefs:           {"defs", CategoryStructural | CategoryContainer, InfoNonRendering},
	ElSymbol:         {"symbol", CategoryStructural | CategoryContainer, InfoNonRendering},
	ElUse:            {"use", CategoryStructural, 0},
	ElSwitch:         {"switch", CategoryStructural | CategoryContainer, 0},
	ElMarker:         {"marker", CategoryContainer, InfoNonRendering},
	ElLinearGradient: {"linearGradient", CategoryGradient | CategoryPaintServer, InfoNonRendering},
	ElRadialGradient: {"radialGradient", CategoryGradient | CategoryPaintServer, InfoNonRendering},
	ElStop:           {"stop", 0, InfoNonRendering},
	ElPattern:        {"pattern", CategoryContainer | CategoryPaintServer, InfoNonRendering},
	ElClipPath:       {"clipPath", CategoryContainer, InfoNonRendering},
	ElMask:           {"mask", CategoryContainer, InfoNonRendering},
	ElFilter:         {"filter", CategoryContainer, InfoNonRendering},
	ElPath:           {"path", CategoryShape, 0},
	ElRect:           {"rect", CategoryShape, 0},
	ElCircle:         {"circle", CategoryShape, 0},
	ElEllipse:        {"ellipse", CategoryShape, 0},
	ElLine:           {"line", CategoryShape, 0},
	ElPolyline:       {"polyline", CategoryShape, 0},
	ElPolygon:        {"polygon", CategoryShape, 0},
	ElText:           {"text", CategoryText | CategoryContainer, InfoTextContent},
	ElTSpan:          {"tspan", CategoryText | CategoryContainer, InfoTextContent},
	ElTextPath:       {"textPath", CategoryText | CategoryContainer, InfoTextContent},
	ElImage:          {"image", CategoryShape, 0},
	ElForeignObject:  {"foreignObject", CategoryContainer, 0},
	ElStyle:          {"style", CategoryDescriptive, InfoNonRendering},
	ElScript:         {"script", CategoryDescriptive, InfoNonRendering},
	ElTitle:          {"title", CategoryDescriptive, InfoNonRendering},
	ElDesc:           {"desc", CategoryDescriptive, InfoNonRendering},
	ElMetadata:       {"metadata", CategoryDescriptive, InfoNonRendering},
	ElA:              {"a", CategoryContainer, InfoTextContent},
	ElView:           {"view", CategoryDescriptive, InfoNonRendering},
	ElAltGlyph:       {"altGlyph", CategoryText, InfoTextContent},
	ElAltGlyphDef:    {"altGlyphDef", CategoryDescriptive, InfoNonRendering | InfoTextContent},
	ElAltGlyphItem:   {"altGlyphItem", CategoryDescriptive, InfoNonRendering | InfoTextContent},
	ElGlyph:          {"glyph", CategoryShape, InfoTextContent},
	ElGlyphRef:       {"glyphRef", CategoryShape, InfoTextContent},
	ElTref:           {"tref", CategoryText, InfoTextContent},
}

var elementByName map[string]ElementId

func init() {
	elementByName = make(map[string]ElementId, len(elementTable))
	for id, info := range elementTable {
		if info.name != "" {
			elementByName[info.name] = ElementId(id)
		}
	}
}

// ElementIdByName resolves a local element name to its ElementId, returning
// ElUnknown if the name isn't one the table recognizes.
func ElementIdByName(local string) ElementId {
	if id, ok := elementByName[local]; ok {
		return id
	}
	return ElUnknown
}

// Name returns the canonical local name for id, or "" for ElUnknown.
func (id ElementId) Name() string {
	if int(id) < 0 || int(id) >= len(elementTable) {
		return ""
	}
	return elementTable[id].name
}

// Categories returns the category bits for id.
func (id ElementId) Categories() CategoryBits {
	if int(id) < 0 || int(id) >= len(elementTable) {
		return 0
	}
	return elementTable[id].categories
}

// Info returns the info bits for id.
func (id ElementId) Info() InfoBits {
	if int(id) < 0 || int(id) >= len(elementTable) {
		return 0
	}
	return elementTable[id].info
}

// IsNonRendering reports whether elements of this kind never render visible
// content themselves, though their content may still be referenced (defs,
// clipPath, linearGradient, ...).
func (id ElementId) IsNonRendering() bool {
	return id.Info()&InfoNonRendering != 0
}

// IsTextContent reports whether the element is one whose content is text
// runs that the XML writer must not re-indent or whitespace-trim.
func (id ElementId) IsTextContent() bool {
	return id.Info()&InfoTextContent != 0
}

// containerChildren maps a container ElementId to the set of child
// ElementIds permitted directly beneath it. Absence from the map means "any
// element is permitted" (conservative default for elements we don't police).
var containerChildren = map[ElementId]map[ElementId]bool{
	ElDefs: allOf(ElG, ElPath, ElRect, ElCircle, ElEllipse, ElLine, ElPolyline, ElPolygon,
		ElLinearGradient, ElRadialGradient, ElPattern, ElClipPath, ElMask, ElFilter,
		ElSymbol, ElUse, ElMarker, ElImage, ElText, ElStyle),
	ElClipPath: allOf(ElPath, ElRect, ElCircle, ElEllipse, ElLine, ElPolyline, ElPolygon, ElUse, ElText),
}

func allOf(ids ...ElementId) map[ElementId]bool {
	m := make(map[ElementId]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// PermittedChild reports whether child is a permitted direct child of an
// element of kind id. Containers absent from the policed set permit any
// child, matching the conservative default spec.md's RemoveUnknownsAndDefaults
// relies on ("removes elements not permitted under their parent").
func (id ElementId) PermittedChild(child ElementId) bool {
	allowed, ok := containerChildren[id]
	if !ok {
		return true
	}
	return allowed[child]
}

// PermittedAttribute reports whether attr is a permitted attribute on
// elements of kind id: id/class/style are universal, GroupCore's
// viewBox/preserveAspectRatio are restricted to viewport-establishing
// elements, GroupXLink's href/xlink:href to referencing elements,
// GroupGeometry attributes to the specific shape they apply to, and
// GroupPresentation attributes to every element except the purely
// descriptive/metadata ones -- except gradientTransform/patternTransform,
// which are further restricted to their own element. An unrecognized id
// (ElUnknown) permits anything, the same conservative default
// PermittedChild uses for elements this table doesn't police.
func (id ElementId) PermittedAttribute(attr AttrId) bool {
	if id == ElUnknown || attr == AttrUnknown {
		return true
	}

	switch attr.Group() {
	case GroupCore:
		switch attr {
		case AttrViewBox, AttrPreserveAspectRatio:
			return viewportElements[id]
		}
		return true
	case GroupXLink:
		return xlinkHrefElements[id]
	case GroupGeometry:
		return geometryAttrsByElement[id][attr]
	case GroupPresentation:
		switch attr {
		case AttrGradientTransform:
			return id == ElLinearGradient || id == ElRadialGradient
		case AttrPatternTransform:
			return id == ElPattern
		}
		return !nonPresentationElements[id]
	}
	return true
}

// viewportElements is the set of elements GroupCore's viewBox/
// preserveAspectRatio attributes are permitted on -- the elements that
// establish their own viewport/symbol instance.
var viewportElements = allOf(ElSVG, ElSymbol, ElPattern, ElMarker, ElView)

// xlinkHrefElements is the set of elements href/xlink:href is permitted on.
var xlinkHrefElements = allOf(ElUse, ElImage, ElTextPath, ElA, ElLinearGradient, ElRadialGradient, ElPattern)

// nonPresentationElements is the set of elements that never take
// presentation attributes (fill, stroke, opacity, transform, ...): metadata
// and descriptive elements with no rendered geometry of their own.
var nonPresentationElements = allOf(ElStyle, ElScript, ElTitle, ElDesc, ElMetadata)

// geometryAttrsByElement maps an ElementId to the GroupGeometry attributes
// permitted directly on it (e.g. cx/cy/r on <circle> but not <rect>).
// Absence from this map means the element takes no GroupGeometry attribute
// at all.
var geometryAttrsByElement = map[ElementId]map[AttrId]bool{
	ElSVG:            attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElSymbol:         attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElPattern:        attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElForeignObject:  attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElUse:            attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElImage:          attrSet(AttrX, AttrY, AttrWidth, AttrHeight),
	ElRect:           attrSet(AttrX, AttrY, AttrWidth, AttrHeight, AttrRx, AttrRy, AttrPathLength),
	ElCircle:         attrSet(AttrCx, AttrCy, AttrR, AttrPathLength),
	ElEllipse:        attrSet(AttrCx, AttrCy, AttrRx, AttrRy, AttrPathLength),
	ElLine:           attrSet(AttrX1, AttrY1, AttrX2, AttrY2, AttrPathLength),
	ElPolyline:       attrSet(AttrPoints, AttrPathLength),
	ElPolygon:        attrSet(AttrPoints, AttrPathLength),
	ElPath:           attrSet(AttrD, AttrPathLength),
	ElLinearGradient: attrSet(AttrX1, AttrY1, AttrX2, AttrY2),
	ElRadialGradient: attrSet(AttrCx, AttrCy, AttrR),
	ElStop:           attrSet(AttrOffset),
	ElText:           attrSet(AttrX, AttrY),
	ElTSpan:          attrSet(AttrX, AttrY),
}

func attrSet(ids ...AttrId) map[AttrId]bool {
	m := make(map[AttrId]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// GroupBits is a bit set of the attribute grouping taxonomy SVG defines
// (presentation attributes, core attributes, animation-timing attributes, ...).
type GroupBits uint32

const (
	GroupPresentation GroupBits = 1 << iota
	GroupCore
	GroupAnimationTiming
	GroupConditionalProcessing
	GroupGeometry
	GroupXLink
)

// AttrId is a closed enumeration over SVG attributes the optimizer has
// specific typed knowledge of.
type AttrId int

const (
	AttrUnknown AttrId = iota
	AttrID
	AttrClass
	AttrStyle
	AttrD
	AttrTransform
	AttrGradientTransform
	AttrPatternTransform
	AttrFill
	AttrFillOpacity
	AttrFillRule
	AttrStroke
	AttrStrokeWidth
	AttrStrokeOpacity
	AttrStrokeDasharray
	AttrStrokeDashoffset
	AttrStrokeLinecap
	AttrStrokeLinejoin
	AttrStrokeMiterlimit
	AttrOpacity
	AttrDisplay
	AttrVisibility
	AttrX
	AttrY
	AttrWidth
	AttrHeight
	AttrCx
	AttrCy
	AttrR
	AttrRx
	AttrRy
	AttrX1
	AttrY1
	AttrX2
	AttrY2
	AttrPoints
	AttrViewBox
	AttrClipPath
	AttrMask
	AttrFilter
	AttrHref
	AttrXlinkHref
	AttrMarkerStart
	AttrMarkerMid
	AttrMarkerEnd
	AttrOffset
	AttrStopColor
	AttrStopOpacity
	AttrPreserveAspectRatio
	AttrPathLength
)

type attrInfo struct {
	name    string
	group   GroupBits
	info    InfoBits
	isDflt  bool
	dfltRaw string
}

var attrTable = []attrInfo{
	AttrUnknown:             {"", 0, 0, false, ""},
	AttrID:                  {"id", GroupCore, 0, false, ""},
	AttrClass:               {"class", GroupCore, 0, false, ""},
	AttrStyle:               {"style", GroupCore, 0, false, ""},
	AttrD:                   {"d", GroupGeometry, 0, false, ""},
	AttrTransform:           {"transform", GroupPresentation, 0, true, ""},
	AttrGradientTransform:   {"gradientTransform", GroupPresentation, 0, true, ""},
	AttrPatternTransform:    {"patternTransform", GroupPresentation, 0, true, ""},
	AttrFill:                {"fill", GroupPresentation, 0, true, "black"},
	AttrFillOpacity:         {"fill-opacity", GroupPresentation, 0, true, "1"},
	AttrFillRule:            {"fill-rule", GroupPresentation, 0, true, "nonzero"},
	AttrStroke:              {"stroke", GroupPresentation, 0, true, "none"},
	AttrStrokeWidth:         {"stroke-width", GroupPresentation, 0, true, "1"},
	AttrStrokeOpacity:       {"stroke-opacity", GroupPresentation, 0, true, "1"},
	AttrStrokeDasharray:     {"stroke-dasharray", GroupPresentation, 0, true, "none"},
	AttrStrokeDashoffset:    {"stroke-dashoffset", GroupPresentation, 0, true, "0"},
	AttrStrokeLinecap:       {"stroke-linecap", GroupPresentation, 0, true, "butt"},
	AttrStrokeLinejoin:      {"stroke-linejoin", GroupPresentation, 0, true, "miter"},
	AttrStrokeMiterlimit:    {"stroke-miterlimit", GroupPresentation, 0, true, "4"},
	AttrOpacity:             {"opacity", GroupPresentation, 0, true, "1"},
	AttrDisplay:             {"display", GroupPresentation, 0, true, "inline"},
	AttrVisibility:          {"visibility", GroupPresentation, 0, true, "visible"},
	AttrX:                   {"x", GroupGeometry, 0, true, "0"},
	AttrY:                   {"y", GroupGeometry, 0, true, "0"},
	AttrWidth:                {"width", GroupGeometry, 0, false, ""},
	AttrHeight:               {"height", GroupGeometry, 0, false, ""},
	AttrCx:                  {"cx", GroupGeometry, 0, true, "0"},
	AttrCy:                  {"cy", GroupGeometry, 0, true, "0"},
	AttrR:                   {"r", GroupGeometry, 0, true, "0"},
	AttrRx:                  {"rx", GroupGeometry, 0, true, "auto"},
	AttrRy:                  {"ry", GroupGeometry, 0, true, "auto"},
	AttrX1:                  {"x1", GroupGeometry, 0, true, "0"},
	AttrY1:                  {"y1", GroupGeometry, 0, true, "0"},
	AttrX2:                  {"x2", GroupGeometry, 0, true, "0"},
	AttrY2:                  {"y2", GroupGeometry, 0, true, "0"},
	AttrPoints:              {"points", GroupGeometry, 0, false, ""},
	AttrViewBox:             {"viewBox", GroupCore, 0, false, ""},
	AttrClipPath:            {"clip-path", GroupPresentation, 0, true, "none"},
	AttrMask:                {"mask", GroupPresentation, 0, true, "none"},
	AttrFilter:              {"filter", GroupPresentation, 0, true, "none"},
	AttrHref:                {"href", GroupXLink, 0, false, ""},
	AttrXlinkHref:           {"xlink:href", GroupXLink, 0, false, ""},
	AttrMarkerStart:         {"marker-start", GroupPresentation, 0, true, "none"},
	AttrMarkerMid:           {"marker-mid", GroupPresentation, 0, true, "none"},
	AttrMarkerEnd:           {"marker-end", GroupPresentation, 0, true, "none"},
	AttrOffset:              {"offset", GroupGeometry, 0, false, ""},
	AttrStopColor:           {"stop-color", GroupPresentation, 0, true, "black"},
	AttrStopOpacity:         {"stop-opacity", GroupPresentation, 0, true, "1"},
	AttrPreserveAspectRatio: {"preserveAspectRatio", GroupCore, 0, true, "xMidYMid meet"},
	AttrPathLength:          {"pathLength", GroupGeometry, 0, false, ""},
}

var attrByName map[string]AttrId

func init() {
	attrByName = make(map[string]AttrId, len(attrTable))
	for id, info := range attrTable {
		if info.name != "" {
			attrByName[info.name] = AttrId(id)
		}
	}
}

// AttrIdByName resolves a local attribute name to its AttrId, returning
// AttrUnknown if the name isn't recognized.
func AttrIdByName(local string) AttrId {
	if id, ok := attrByName[local]; ok {
		return id
	}
	return AttrUnknown
}

// Name returns the canonical name for id, or "" for AttrUnknown.
func (id AttrId) Name() string {
	if int(id) < 0 || int(id) >= len(attrTable) {
		return ""
	}
	return attrTable[id].name
}

// Group returns the attribute grouping bits for id.
func (id AttrId) Group() GroupBits {
	if int(id) < 0 || int(id) >= len(attrTable) {
		return 0
	}
	return attrTable[id].group
}

// Inheritable reports whether the CSS property behind id cascades through
// ancestor elements, per the SVG/CSS inheritance table.
func (id AttrId) Inheritable() bool {
	switch id {
	case AttrFill, AttrFillOpacity, AttrFillRule, AttrStroke, AttrStrokeWidth,
		AttrStrokeOpacity, AttrStrokeDasharray, AttrStrokeDashoffset,
		AttrStrokeLinecap, AttrStrokeLinejoin, AttrStrokeMiterlimit,
		AttrVisibility, AttrMarkerStart, AttrMarkerMid, AttrMarkerEnd:
		return true
	}
	return false
}

// Default returns the attribute's initial value per the SVG spec, if one is
// defined, as its raw textual form.
func (id AttrId) Default() (string, bool) {
	if int(id) < 0 || int(id) >= len(attrTable) {
		return "", false
	}
	info := attrTable[id]
	return info.dfltRaw, info.isDflt
}

// AllAttrNames returns every recognized attribute name in sorted order.
func AllAttrNames() []string {
	names := make([]string, 0, len(attrByName))
	for name := range attrByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
