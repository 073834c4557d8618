package fig

import "sort"

// BuiltinDefaults returns the system-wide default style: the lowest
// priority level of the resolution chain. Every recognized option has a
// concrete value here, which is what guarantees resolved styles are
// always dense.
func BuiltinDefaults() ResolvedStyle {
	return ResolvedStyle{
		Color:       Color{0, 0, 0},
		FillNone:    true,
		LineWidth:   1,
		Opacity:     1,
		FillOpacity: 1,
		Dash:        DashSolid,
		Cap:         LineCapButt,
		Join:        LineJoinMiter,
		MarkerSize:  2,
	}
}

// Resolver computes concrete styles for figure objects by merging, in
// increasing priority: built-in defaults, the figure default intent,
// the object's group intent (if any), and the object's own intent.
// Later sources override earlier ones key by key.
//
// The defaults are explicit state on the resolver rather than a global
// registry, so tests and concurrent render passes cannot contaminate
// each other.
type Resolver struct {
	builtin ResolvedStyle
}

// NewResolver returns a resolver seeded with BuiltinDefaults.
func NewResolver() *Resolver {
	return &Resolver{builtin: BuiltinDefaults()}
}

// NewResolverWith returns a resolver with caller-supplied defaults, for
// embedders that want a different house style as the lowest layer.
func NewResolverWith(defaults ResolvedStyle) *Resolver {
	return &Resolver{builtin: defaults}
}

// Resolve returns the dense style for obj within f. Resolution cannot
// fail: intents are validated when they are built, so by the time an
// object is in a figure every set option carries a well-typed value.
func (r *Resolver) Resolve(f *Figure, obj *Object) ResolvedStyle {
	rs := r.builtin
	rs.set = 0
	applyIntent(&rs, f.defaultStyle)
	if obj.group != "" {
		applyIntent(&rs, f.groups[obj.group])
	}
	applyIntent(&rs, obj.style)
	return rs
}

// applyIntent overlays one sparse intent onto a dense style.
func applyIntent(rs *ResolvedStyle, s StyleIntent) {
	for o, v := range s.values {
		switch o {
		case OptColor:
			rs.Color = v.(Color)
		case OptFill:
			fv := v.(fillValue)
			rs.Fill = fv.color
			rs.FillNone = fv.none
		case OptLineWidth:
			rs.LineWidth = v.(float64)
		case OptOpacity:
			rs.Opacity = v.(float64)
		case OptFillOpacity:
			rs.FillOpacity = v.(float64)
		case OptDash:
			rs.Dash = v.(Dash)
		case OptLineCap:
			rs.Cap = v.(LineCap)
		case OptLineJoin:
			rs.Join = v.(LineJoin)
		case OptLabel:
			rs.Label = v.(string)
		case OptZ:
			rs.Z = v.(int)
			rs.HasZ = true
		case OptDouble:
			rs.Double = v.(bool)
		case OptMarkerSize:
			rs.MarkerSize = v.(float64)
		}
		rs.set.add(o)
	}
}

// sortItems orders render items for emission. Insertion mode keeps the
// figure's order untouched. Explicit mode sorts ascending by z for
// objects that set one; objects without an explicit z keep their
// insertion position relative to each other at z 0, and all ties break
// by insertion order, so the sort is fully deterministic.
func sortItems(items []RenderItem, mode ZOrderMode) {
	if mode != ZOrderExplicit {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		zi, zj := 0, 0
		if items[i].Style.HasZ {
			zi = items[i].Style.Z
		}
		if items[j].Style.HasZ {
			zj = items[j].Style.Z
		}
		return zi < zj
	})
}
