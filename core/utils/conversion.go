package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotConvertible is returned when a value cannot be coerced to the requested type.
var ErrNotConvertible = errors.New("value is not convertible")

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, integral floats, strings, and byte slices.
// Decoders disagree on number types (JSON yields float64, TOML int64, YAML int),
// so all of them are accepted.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not integral", ErrNotConvertible, v)
		}
		return int(v), nil
	case float32:
		return ToInt(float64(v))
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q to int", ErrNotConvertible, v)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, fmt.Errorf("%w: %T to int", ErrNotConvertible, val)
	}
}

// ToFloat converts numeric types and numeric strings to float64.
func ToFloat(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		i, err := ToInt(v)
		return float64(i), err
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q to float", ErrNotConvertible, v)
		}
		return f, nil
	case []byte:
		return ToFloat(string(v))
	default:
		return 0, fmt.Errorf("%w: %T to float", ErrNotConvertible, val)
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true, 0=false), and strings ("1", "true", "0", "false").
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		i, err := ToInt(v)
		if err != nil || (i != 0 && i != 1) {
			return false, fmt.Errorf("%w: %v to bool", ErrNotConvertible, v)
		}
		return i == 1, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q to bool", ErrNotConvertible, v)
	case []byte:
		return ToBool(string(v))
	default:
		return false, fmt.Errorf("%w: %T to bool", ErrNotConvertible, val)
	}
}
