package document

import (
	"fmt"
	"math"
	"strings"

	"param-host/core/parameter"
	"param-host/core/utils"
)

// Node types understood by Build.
const (
	TypeCompound = "compound"
	TypeFloat    = "float"
	TypeInt      = "int"
	TypeString   = "string"
	TypeBool     = "bool"
)

// Build creates a fresh parameter tree from doc. Every call returns new
// parameters, so one parsed document can seed any number of sessions.
func (d *Document) Build() (*parameter.CompoundParameter, error) {
	root, err := parameter.NewCompound(d.Name, d.Description)
	if err != nil {
		return nil, err
	}
	if err := addChildren(root, d.Children, d.Name); err != nil {
		return nil, err
	}
	return root, nil
}

func addChildren(parent *parameter.CompoundParameter, nodes []Node, path string) error {
	for _, n := range nodes {
		p, err := build(n, join(path, n.Name))
		if err != nil {
			return err
		}
		if err := parent.Add(p); err != nil {
			return err
		}
	}
	return nil
}

func build(n Node, path string) (parameter.Parameter, error) {
	if n.Name == "" || strings.Contains(n.Name, ".") {
		return nil, fmt.Errorf("%w: %q: names must be non-empty and contain no dots", ErrInvalidNode, path)
	}

	var (
		p   parameter.Parameter
		err error
	)
	switch strings.ToLower(n.Type) {
	case TypeCompound:
		var c *parameter.CompoundParameter
		c, err = parameter.NewCompound(n.Name, n.Description)
		if err == nil {
			err = addChildren(c, n.Children, path)
		}
		p = c
	case TypeFloat:
		p, err = buildFloat(n)
	case TypeInt:
		p, err = buildInt(n)
	case TypeString:
		p = parameter.NewString(n.Name, n.Description, utils.ToString(n.Default))
	case TypeBool:
		var def bool
		if n.Default != nil {
			def, err = utils.ToBool(n.Default)
		}
		p = parameter.NewBool(n.Name, n.Description, def)
	case "":
		return nil, fmt.Errorf("%w: %q: missing type", ErrInvalidNode, path)
	default:
		p = parameter.NewOpaque(n.Name, n.Description, n.Type, n.Default)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidNode, path, err)
	}

	for k, v := range n.UserData {
		p.UserData()[k] = v
	}
	return p, nil
}

func buildFloat(n Node) (parameter.Parameter, error) {
	var def float64
	if n.Default != nil {
		v, err := utils.ToFloat(n.Default)
		if err != nil {
			return nil, err
		}
		def = v
	}
	var opts []parameter.Option[float64]
	if n.Min != nil || n.Max != nil {
		lo, hi := bounds(n)
		opts = append(opts, parameter.WithRange(lo, hi))
	}
	p := parameter.NewFloat(n.Name, n.Description, def, opts...)
	if err := p.Validate(def); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return p, nil
}

func buildInt(n Node) (parameter.Parameter, error) {
	var def int
	if n.Default != nil {
		v, err := utils.ToInt(n.Default)
		if err != nil {
			return nil, err
		}
		def = v
	}
	var opts []parameter.Option[int]
	if n.Min != nil || n.Max != nil {
		lo, hi := bounds(n)
		opts = append(opts, parameter.WithRange(clampInt(math.Ceil(lo)), clampInt(math.Floor(hi))))
	}
	p := parameter.NewInt(n.Name, n.Description, def, opts...)
	if err := p.Validate(def); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return p, nil
}

// bounds returns the declared range, open ends widened to infinity.
func bounds(n Node) (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if n.Min != nil {
		lo = *n.Min
	}
	if n.Max != nil {
		hi = *n.Max
	}
	return lo, hi
}

func clampInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
