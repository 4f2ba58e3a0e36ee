package optimize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgavlin/svgo/dom"
	"github.com/pgavlin/svgo/visitor"
)

// Registry is an ordered, named collection of configured passes, the
// pipeline-configuration surface callers build from serialized options.
type Registry struct {
	passes []Pass
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Add appends p to the end of the registry's run order.
func (r *Registry) Add(p Pass) *Registry {
	r.passes = append(r.passes, p)
	return r
}

// Passes returns the registry's passes in run order.
func (r *Registry) Passes() []Pass { return r.passes }

// Run executes every registered pass, in order, over doc, wrapping the
// first error encountered in a PassError naming the pass that raised it.
func (r *Registry) Run(doc *dom.Document) error {
	for _, p := range r.passes {
		pipeline := visitor.NewPipeline(p)
		if err := pipeline.Run(doc, nil); err != nil {
			return &PassError{Pass: p.Name(), Err: err}
		}
	}
	return nil
}

// DefaultPipeline returns the optimizer's default pass ordering: passes
// that shrink the tree run first so later structural/geometric passes have
// less work, and PrefixIds runs last so it only rewrites idents that
// survived everything else.
func DefaultPipeline() *Registry {
	return NewRegistry().
		Add(NewRemoveHiddenElems(RemoveHiddenElemsOptions{})).
		Add(NewRemoveUnknownsAndDefaults(RemoveUnknownsAndDefaultsOptions{})).
		Add(NewCollapseGroups(CollapseGroupsOptions{})).
		Add(NewConvertTransform(ConvertTransformOptions{})).
		Add(NewApplyTransforms(ApplyTransformsOptions{})).
		Add(NewMergePaths(MergePathsOptions{})).
		Add(NewReusePaths(ReusePathsOptions{})).
		Add(NewRemoveUselessStrokeAndFill(RemoveUselessStrokeAndFillOptions{})).
		Add(NewMinifyStyles(MinifyStylesOptions{})).
		Add(NewPrefixIds(PrefixIdsOptions{Prefix: "prefix"}))
}

// constructors maps every pass's Name() to a factory taking its options as
// raw JSON, the name -> constructor table a serialized pipeline
// configuration is built from.
var constructors = map[string]func(json.RawMessage) (Pass, error){
	"removeHiddenElems": func(raw json.RawMessage) (Pass, error) {
		var o RemoveHiddenElemsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewRemoveHiddenElems(o), nil
	},
	"removeUnknownsAndDefaults": func(raw json.RawMessage) (Pass, error) {
		var o RemoveUnknownsAndDefaultsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewRemoveUnknownsAndDefaults(o), nil
	},
	"collapseGroups": func(raw json.RawMessage) (Pass, error) {
		var o CollapseGroupsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewCollapseGroups(o), nil
	},
	"convertTransform": func(raw json.RawMessage) (Pass, error) {
		var o ConvertTransformOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewConvertTransform(o), nil
	},
	"applyTransforms": func(raw json.RawMessage) (Pass, error) {
		var o ApplyTransformsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewApplyTransforms(o), nil
	},
	"mergePaths": func(raw json.RawMessage) (Pass, error) {
		var o MergePathsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewMergePaths(o), nil
	},
	"reusePaths": func(raw json.RawMessage) (Pass, error) {
		var o ReusePathsOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewReusePaths(o), nil
	},
	"removeUselessStrokeAndFill": func(raw json.RawMessage) (Pass, error) {
		var o RemoveUselessStrokeAndFillOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewRemoveUselessStrokeAndFill(o), nil
	},
	"minifyStyles": func(raw json.RawMessage) (Pass, error) {
		var o MinifyStylesOptions
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewMinifyStyles(o), nil
	},
	"prefixIds": func(raw json.RawMessage) (Pass, error) {
		o := PrefixIdsOptions{Prefix: "prefix"}
		if err := unmarshalOptions(raw, &o); err != nil {
			return nil, err
		}
		return NewPrefixIds(o), nil
	},
}

func unmarshalOptions(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(into)
}

// defaultOrder is DefaultPipeline's pass order, by name.
var defaultOrder = []string{
	"removeHiddenElems", "removeUnknownsAndDefaults", "collapseGroups",
	"convertTransform", "applyTransforms", "mergePaths", "reusePaths",
	"removeUselessStrokeAndFill", "minifyStyles", "prefixIds",
}

// FromConfig builds a Registry from a serialized pipeline configuration: a
// JSON object keyed by pass name (see defaultOrder for the valid keys),
// each value either `false` to drop that pass from the default pipeline
// or an options object overriding that pass's defaults. Passes absent
// from cfg keep running with their DefaultPipeline options. An unknown
// key is reported as an error rather than silently ignored.
func FromConfig(cfg map[string]json.RawMessage) (*Registry, error) {
	enabled := map[string]json.RawMessage{}
	for _, name := range defaultOrder {
		enabled[name] = nil
	}
	for name, raw := range cfg {
		if _, ok := enabled[name]; !ok {
			return nil, fmt.Errorf("optimize: unknown pass %q in config", name)
		}
		if strings.TrimSpace(string(raw)) == "false" {
			delete(enabled, name)
			continue
		}
		enabled[name] = raw
	}

	reg := NewRegistry()
	for _, name := range defaultOrder {
		raw, ok := enabled[name]
		if !ok {
			continue
		}
		p, err := constructors[name](raw)
		if err != nil {
			return nil, fmt.Errorf("optimize: pass %q: %w", name, err)
		}
		reg.Add(p)
	}
	return reg, nil
}
