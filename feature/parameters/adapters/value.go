package adapters

import (
	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"
)

// ValueAdapter moves a scalar value between a TypedParameter and a ValuePlug.
type ValueAdapter[T parameter.Value] struct {
	parameter *parameter.TypedParameter[T]
	plug      *plug.ValuePlug[T]
}

// NewValue creates or adopts the plug for p under plugParent.
// A same-named plug of another type is replaced.
func NewValue[T parameter.Value](p *parameter.TypedParameter[T], plugParent *plug.CompoundPlug) *ValueAdapter[T] {
	v, ok := plug.GetChild[*plug.ValuePlug[T]](plugParent, p.Name())
	if !ok {
		v = plug.NewValue(p.Default())
		plugParent.SetChild(p.Name(), v)
	}
	return &ValueAdapter[T]{parameter: p, plug: v}
}

// Parameter implements reconcile.Adapter.
func (a *ValueAdapter[T]) Parameter() parameter.Parameter {
	return a.parameter
}

// Plug implements reconcile.Adapter.
func (a *ValueAdapter[T]) Plug() plug.Plug {
	return a.plug
}

// ValuePlug returns the plug with its concrete type.
func (a *ValueAdapter[T]) ValuePlug() *plug.ValuePlug[T] {
	return a.plug
}

// SetParameterValue validates the plug value and stores it in the parameter.
func (a *ValueAdapter[T]) SetParameterValue() error {
	return a.parameter.SetValue(a.plug.Get())
}

// SetPlugValue copies the parameter value to the plug.
func (a *ValueAdapter[T]) SetPlugValue() error {
	a.plug.Set(a.parameter.Value())
	return nil
}

func create[T parameter.Value](_ *reconcile.Factory, p *parameter.TypedParameter[T], plugParent *plug.CompoundPlug) reconcile.Adapter {
	return NewValue(p, plugParent)
}

// RegisterIn adds the scalar adapters to r. The default registry gets them at init.
func RegisterIn(r *reconcile.Registry) {
	reconcile.RegisterIn(r, create[float64])
	reconcile.RegisterIn(r, create[int])
	reconcile.RegisterIn(r, create[string])
	reconcile.RegisterIn(r, create[bool])
}

func init() {
	RegisterIn(reconcile.DefaultRegistry())
}
