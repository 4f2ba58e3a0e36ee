package optimize

import (
	"github.com/pgavlin/svgo/atom"
	"github.com/pgavlin/svgo/attr"
	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/path"
	"github.com/pgavlin/svgo/visitor"
	"github.com/pgavlin/svgo/xform"
)

// ApplyTransformsOptions configures ApplyTransforms.
type ApplyTransformsOptions struct {
	// TransformPrecision is the rounding precision applied to rewritten
	// path coordinates; defaults to 3 when zero.
	TransformPrecision int `json:"transformPrecision"`
}

// ApplyTransforms bakes a <path>'s static transform into its `d`, removing
// the transform attribute. Stroke-related lengths are rescaled instead of
// preserved when the transform's scale is proportional (uniform in x/y);
// otherwise the transform is left in place, since a non-uniform scale
// cannot be represented as a single rescaled stroke-width.
type ApplyTransforms struct {
	visitor.BaseVisitor
	opts ApplyTransformsOptions
}

// NewApplyTransforms returns a configured ApplyTransforms pass.
func NewApplyTransforms(opts ApplyTransformsOptions) *ApplyTransforms {
	if opts.TransformPrecision == 0 {
		opts.TransformPrecision = 3
	}
	return &ApplyTransforms{opts: opts}
}

func (p *ApplyTransforms) Name() string { return "applyTransforms" }

func (p *ApplyTransforms) Element(elem *dom.Node, ctx *visitor.Context) {
	if elem.ID != atom.ElPath {
		return
	}

	transform, hasTransform := transformOf(elem)
	if !hasTransform || transform.IsEmpty() {
		return
	}

	m := transform.ToMatrix()

	d, hasD := attrString(elem, atom.AttrD)
	if !hasD {
		return
	}
	pth, err := path.Parse(d)
	if err != nil {
		return
	}

	newPath, ok := transformPath(pth, m)
	if !ok {
		return
	}

	factor, proportional := m.ScaleFactor()
	hasStroke := elementHasStroke(elem)

	if hasStroke && !proportional {
		// Non-uniform scale can't be folded into a scalar stroke-width;
		// leave the transform (and path) untouched.
		return
	}

	pv := attr.PathValue{Path: newPath}
	pv.Round(p.opts.TransformPrecision, false)
	setAttr(elem, atom.AttrD, pv.String())
	removeAttr(elem, atom.AttrTransform)

	if hasStroke && factor != 0 && factor != 1 {
		rescaleStrokeLengths(elem, factor)
	}
}

func transformOf(elem *dom.Node) (xform.TransformList, bool) {
	if elem.Attrs == nil {
		return nil, false
	}
	a := elem.Attrs.GetNamedItemLocal(atom.AttrTransform.Name())
	if a == nil {
		return nil, false
	}
	inh, ok := a.Value.(*attr.Inheritable[*attr.TransformValue])
	if !ok || inh.Inherited {
		return nil, false
	}
	return inh.Value.List, true
}

func elementHasStroke(elem *dom.Node) bool {
	p, inherited, ok := paintOf(elem, atom.AttrStroke)
	if !ok {
		return false
	}
	if inherited {
		return true
	}
	return !p.IsNone
}

func rescaleStrokeLengths(elem *dom.Node, factor float64) {
	for _, id := range []atom.AttrId{atom.AttrStrokeWidth, atom.AttrStrokeDashoffset} {
		lp, ok := lengthPercentageOf(elem, id)
		if !ok || lp.IsPercent {
			continue
		}
		lp.Length.Value *= factor
		setAttr(elem, id, lp.String())
	}

	if a := elem.Attrs.GetNamedItemLocal(atom.AttrStrokeDasharray.Name()); a != nil {
		if list, ok := a.Value.(*attr.ListOf[*attr.LengthPercentage]); ok {
			for _, item := range list.Items {
				if !item.IsPercent {
					item.Length.Value *= factor
				}
			}
			setAttr(elem, atom.AttrStrokeDasharray, list.String())
		}
	}
}

// transformPath rewrites every command in pth into the frame m maps into,
// re-expressing the result as an absolute, canonicalized command sequence
// (H/V folded to L, leading lowercase m folded to M, implicit
// continuations dropped).
func transformPath(pth path.Path, m xform.Matrix) (path.Path, bool) {
	positioned := pth.Positioned()
	if len(positioned) == 0 {
		return path.Path{}, false
	}

	tp := func(p path.Point) path.Point {
		x, y := m.MulPoint(p.X, p.Y)
		return path.Point{X: x, Y: y}
	}

	out := make([]path.Command, 0, len(positioned))
	for _, pc := range positioned {
		switch pc.Kind {
		case path.KindMoveTo:
			e := tp(pc.End)
			out = append(out, path.Command{Kind: path.KindMoveTo, Args: []float64{e.X, e.Y}})

		case path.KindLineTo, path.KindHorizontal, path.KindVertical:
			e := tp(absoluteEnd(pc))
			out = append(out, path.Command{Kind: path.KindLineTo, Args: []float64{e.X, e.Y}})

		case path.KindCubicBezier, path.KindSmoothBezier:
			c1, c2, e := tp(pc.Control1), tp(pc.Control2), tp(pc.End)
			out = append(out, path.Command{Kind: path.KindCubicBezier, Args: []float64{c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y}})

		case path.KindQuadraticBezier, path.KindSmoothQuadraticBezier:
			c1, e := tp(pc.Control1), tp(pc.End)
			out = append(out, path.Command{Kind: path.KindQuadraticBezier, Args: []float64{c1.X, c1.Y, e.X, e.Y}})

		case path.KindArc:
			rx, ry, rot, largeArc, sweep := pc.Args[0], pc.Args[1], pc.Args[2], pc.Args[3] != 0, pc.Args[4] != 0
			nrx, nry, nrot, nsweep := path.TransformEllipse(rx, ry, rot, sweep, m.A, m.B, m.C, m.D)
			if m.Determinant() < 0 {
				nsweep = !nsweep
			}
			e := tp(pc.End)
			out = append(out, path.Command{Kind: path.KindArc, Args: []float64{
				nrx, nry, nrot, boolArg(largeArc), boolArg(nsweep), e.X, e.Y,
			}})

		case path.KindClosePath:
			out = append(out, path.Command{Kind: path.KindClosePath})

		default:
			return path.Path{}, false
		}
	}
	return path.Path{Commands: out}, true
}

func absoluteEnd(pc path.PositionedCommand) path.Point {
	switch pc.Kind {
	case path.KindHorizontal:
		return path.Point{X: pc.End.X, Y: pc.Start.Y}
	case path.KindVertical:
		return path.Point{X: pc.Start.X, Y: pc.End.Y}
	default:
		return pc.End
	}
}

func boolArg(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
