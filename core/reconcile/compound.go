package reconcile

import (
	"fmt"

	"param-host/core/parameter"
	"param-host/core/plug"
)

// CompoundAdapter adapts a CompoundParameter to a CompoundPlug and recurses into
// its children through a Cache.
type CompoundAdapter struct {
	parameter *parameter.CompoundParameter
	plug      *plug.CompoundPlug
	cache     *Cache
}

// NewCompound reconciles the plug for p under plugParent and creates adapters for
// p's children.
//
// The plug is named after p, or Config.DefaultPlugName when p is unnamed. An
// existing CompoundPlug of that name is adopted so that anything else attached to
// it survives; otherwise a new one is attached. Plugs with no same-named child
// parameter are then removed, and every child is resolved in declaration order.
// Children that end up without an adapter do not keep a plug.
func NewCompound(f *Factory, p *parameter.CompoundParameter, plugParent *plug.CompoundPlug) *CompoundAdapter {
	name := p.Name()
	if name == "" {
		name = f.cfg.DefaultPlugName
	}

	node, ok := plug.GetChild[*plug.CompoundPlug](plugParent, name)
	if !ok {
		node = plug.NewCompound(name)
		plugParent.SetChild(name, node)
	}

	a := &CompoundAdapter{
		parameter: p,
		plug:      node,
		cache:     NewCache(f, node),
	}

	// Collect first: removing while iterating would skip siblings
	var stale []plug.Plug
	for _, child := range node.Children() {
		if p.Child(child.Name()) == nil {
			stale = append(stale, child)
		}
	}
	for _, child := range stale {
		_ = node.RemoveChild(child)
	}

	for _, child := range p.Ordered() {
		if a.cache.Resolve(child, true) != nil {
			continue
		}
		if orphan := node.Child(child.Name()); orphan != nil {
			_ = node.RemoveChild(orphan)
		}
	}

	return a
}

// Parameter implements Adapter.
func (a *CompoundAdapter) Parameter() parameter.Parameter {
	return a.parameter
}

// Plug implements Adapter.
func (a *CompoundAdapter) Plug() plug.Plug {
	return a.plug
}

// CompoundPlug returns the plug with its concrete type.
func (a *CompoundAdapter) CompoundPlug() *plug.CompoundPlug {
	return a.plug
}

// SetPlugValue pushes every child parameter value to its plug, in declaration order.
// Children without an adapter are skipped. The first child error stops the walk.
func (a *CompoundAdapter) SetPlugValue() error {
	return a.each(Adapter.SetPlugValue)
}

// SetParameterValue pushes every child plug value to its parameter, in declaration order.
// Children without an adapter are skipped. The first child error stops the walk.
func (a *CompoundAdapter) SetParameterValue() error {
	return a.each(Adapter.SetParameterValue)
}

func (a *CompoundAdapter) each(transfer func(Adapter) error) error {
	for _, child := range a.parameter.Ordered() {
		h := a.cache.Resolve(child, false)
		if h == nil {
			continue
		}
		if err := transfer(h); err != nil {
			return fmt.Errorf("%s: %w", child.Name(), err)
		}
	}
	return nil
}

// ChildAdapter returns the adapter for child, resolving it first when
// createIfMissing is set. Resolution memoizes, so this mutates the cache even
// though callers typically treat it as a read.
func (a *CompoundAdapter) ChildAdapter(child parameter.Parameter, createIfMissing bool) Adapter {
	return a.cache.Resolve(child, createIfMissing)
}

// View returns a read-only view of a.
func (a *CompoundAdapter) View() View {
	return readOnly{a: a}
}

// readOnly exposes a CompoundAdapter without any creating path.
type readOnly struct {
	a *CompoundAdapter
}

func (r readOnly) Parameter() parameter.Parameter {
	return r.a.parameter
}

func (r readOnly) Plug() plug.Plug {
	return r.a.plug
}

func (r readOnly) ChildAdapter(child parameter.Parameter) Adapter {
	h, _ := r.a.cache.Lookup(child)
	return h
}
