package document

import (
	"errors"
	"fmt"

	"param-host/core/parameter"
	"param-host/core/utils"
)

// Values returns the current values of root as nested maps keyed by name.
// Opaque parameters contribute their raw value.
func Values(root *parameter.CompoundParameter) map[string]any {
	out := make(map[string]any, root.Len())
	for _, child := range root.Ordered() {
		switch p := child.(type) {
		case *parameter.CompoundParameter:
			out[p.Name()] = Values(p)
		case *parameter.FloatParameter:
			out[p.Name()] = p.Value()
		case *parameter.IntParameter:
			out[p.Name()] = p.Value()
		case *parameter.StringParameter:
			out[p.Name()] = p.Value()
		case *parameter.BoolParameter:
			out[p.Name()] = p.Value()
		case *parameter.OpaqueParameter:
			out[p.Name()] = p.Value
		}
	}
	return out
}

// ApplyValues sets parameter values from nested maps shaped like Values output.
// Keys without a matching parameter are ignored. Every failing key is reported;
// the others are still applied.
func ApplyValues(root *parameter.CompoundParameter, values map[string]any) error {
	return applyValues(root, values, root.Name())
}

func applyValues(root *parameter.CompoundParameter, values map[string]any, path string) error {
	var errs []error
	for _, child := range root.Ordered() {
		v, ok := values[child.Name()]
		if !ok {
			continue
		}
		childPath := join(path, child.Name())
		if c, isCompound := child.(*parameter.CompoundParameter); isCompound {
			nested, isMap := v.(map[string]any)
			if !isMap {
				errs = append(errs, fmt.Errorf("%s: %w: %T is not a map", childPath, utils.ErrNotConvertible, v))
				continue
			}
			if err := applyValues(c, nested, childPath); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := SetValue(child, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", childPath, err))
		}
	}
	return errors.Join(errs...)
}

// SetValue coerces v to the parameter's value type and stores it.
func SetValue(p parameter.Parameter, v any) error {
	switch p := p.(type) {
	case *parameter.FloatParameter:
		f, err := utils.ToFloat(v)
		if err != nil {
			return err
		}
		return p.SetValue(f)
	case *parameter.IntParameter:
		i, err := utils.ToInt(v)
		if err != nil {
			return err
		}
		return p.SetValue(i)
	case *parameter.StringParameter:
		return p.SetValue(utils.ToString(v))
	case *parameter.BoolParameter:
		b, err := utils.ToBool(v)
		if err != nil {
			return err
		}
		return p.SetValue(b)
	case *parameter.OpaqueParameter:
		p.Value = v
		return nil
	default:
		return fmt.Errorf("%w: %s has no scalar value", utils.ErrNotConvertible, p.TypeName())
	}
}
