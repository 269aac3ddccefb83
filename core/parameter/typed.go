package parameter

import (
	"fmt"
	"reflect"
)

// Value is the set of scalar types a TypedParameter can hold.
type Value interface {
	float64 | int | string | bool
}

// TypedParameter holds a single scalar value.
type TypedParameter[T Value] struct {
	base
	value        T
	defaultValue T
	validators   []func(T) error
}

type (
	FloatParameter  = TypedParameter[float64]
	IntParameter    = TypedParameter[int]
	StringParameter = TypedParameter[string]
	BoolParameter   = TypedParameter[bool]
)

// Option configures a TypedParameter at construction.
type Option[T Value] func(*TypedParameter[T])

// WithRange rejects values outside [lo, hi].
func WithRange[T float64 | int](lo, hi T) Option[T] {
	return func(p *TypedParameter[T]) {
		p.validators = append(p.validators, func(v T) error {
			if v < lo || v > hi {
				return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, lo, hi)
			}
			return nil
		})
	}
}

// WithValidator adds a custom validation function.
func WithValidator[T Value](fn func(T) error) Option[T] {
	return func(p *TypedParameter[T]) {
		p.validators = append(p.validators, fn)
	}
}

// NewTyped creates a parameter whose current value starts at defaultValue.
func NewTyped[T Value](name, description string, defaultValue T, opts ...Option[T]) *TypedParameter[T] {
	p := &TypedParameter[T]{
		base:         newBase(name, description),
		value:        defaultValue,
		defaultValue: defaultValue,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFloat creates a FloatParameter.
func NewFloat(name, description string, defaultValue float64, opts ...Option[float64]) *FloatParameter {
	return NewTyped(name, description, defaultValue, opts...)
}

// NewInt creates an IntParameter.
func NewInt(name, description string, defaultValue int, opts ...Option[int]) *IntParameter {
	return NewTyped(name, description, defaultValue, opts...)
}

// NewString creates a StringParameter.
func NewString(name, description, defaultValue string, opts ...Option[string]) *StringParameter {
	return NewTyped(name, description, defaultValue, opts...)
}

// NewBool creates a BoolParameter.
func NewBool(name, description string, defaultValue bool, opts ...Option[bool]) *BoolParameter {
	return NewTyped(name, description, defaultValue, opts...)
}

// TypeName implements Parameter.
func (p *TypedParameter[T]) TypeName() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "FloatParameter"
	case int:
		return "IntParameter"
	case string:
		return "StringParameter"
	case bool:
		return "BoolParameter"
	default:
		return reflect.TypeOf(zero).String() + "Parameter"
	}
}

// Value returns the current value.
func (p *TypedParameter[T]) Value() T {
	return p.value
}

// Default returns the default value.
func (p *TypedParameter[T]) Default() T {
	return p.defaultValue
}

// Validate runs the configured validators against v.
func (p *TypedParameter[T]) Validate(v T) error {
	for _, validate := range p.validators {
		if err := validate(v); err != nil {
			return err
		}
	}
	return nil
}

// SetValue validates and stores v. The current value is unchanged on error.
func (p *TypedParameter[T]) SetValue(v T) error {
	if err := p.Validate(v); err != nil {
		return fmt.Errorf("parameter %q: %w", p.name, err)
	}
	p.value = v
	return nil
}

// Reset restores the default value.
func (p *TypedParameter[T]) Reset() {
	p.value = p.defaultValue
}
