package plug

import (
	"fmt"

	"param-host/core/utils"
)

// Value is the set of scalar types a ValuePlug can hold.
type Value interface {
	float64 | int | string | bool
}

// ValueHolder is implemented by every ValuePlug regardless of its type parameter.
// It lets generic code (snapshots, HTTP) read and write values untyped.
type ValueHolder interface {
	Plug
	Any() any
	DefaultAny() any
	SetAny(v any) error
}

// ValuePlug holds a single scalar value.
type ValuePlug[T Value] struct {
	base
	value        T
	defaultValue T
}

// NewValue creates a detached value plug whose value starts at defaultValue.
func NewValue[T Value](defaultValue T) *ValuePlug[T] {
	return &ValuePlug[T]{value: defaultValue, defaultValue: defaultValue}
}

// TypeName implements Plug.
func (p *ValuePlug[T]) TypeName() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "FloatPlug"
	case int:
		return "IntPlug"
	case string:
		return "StringPlug"
	case bool:
		return "BoolPlug"
	default:
		return fmt.Sprintf("%TPlug", zero)
	}
}

// Get returns the current value.
func (p *ValuePlug[T]) Get() T {
	return p.value
}

// Default returns the default value.
func (p *ValuePlug[T]) Default() T {
	return p.defaultValue
}

// Set stores v, emitting ValueChanged when the value differs.
func (p *ValuePlug[T]) Set(v T) {
	if p.value == v {
		return
	}
	p.value = v
	if p.parent != nil {
		p.parent.emit(Event{Kind: ValueChanged, Parent: p.parent, Plug: p})
	}
}

// SetToDefault restores the default value.
func (p *ValuePlug[T]) SetToDefault() {
	p.Set(p.defaultValue)
}

// Any implements ValueHolder.
func (p *ValuePlug[T]) Any() any {
	return p.value
}

// DefaultAny implements ValueHolder.
func (p *ValuePlug[T]) DefaultAny() any {
	return p.defaultValue
}

// SetAny coerces v to T and stores it.
func (p *ValuePlug[T]) SetAny(v any) error {
	var converted any
	var err error

	var zero T
	switch any(zero).(type) {
	case float64:
		converted, err = utils.ToFloat(v)
	case int:
		converted, err = utils.ToInt(v)
	case string:
		converted = utils.ToString(v)
	case bool:
		converted, err = utils.ToBool(v)
	}
	if err != nil {
		return fmt.Errorf("plug %q: %w", p.name, err)
	}

	p.Set(converted.(T))
	return nil
}
