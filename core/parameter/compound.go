package parameter

import "fmt"

// CompoundParameter groups child parameters in declaration order.
type CompoundParameter struct {
	base
	children []Parameter
}

// NewCompound creates a compound parameter holding children in the given order.
func NewCompound(name, description string, children ...Parameter) (*CompoundParameter, error) {
	c := &CompoundParameter{base: newBase(name, description)}
	for _, child := range children {
		if err := c.Add(child); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// TypeName implements Parameter.
func (c *CompoundParameter) TypeName() string {
	return "CompoundParameter"
}

// Add appends a child. Names must be unique within the compound.
func (c *CompoundParameter) Add(p Parameter) error {
	if c.Child(p.Name()) != nil {
		return fmt.Errorf("%w: %q in %q", ErrDuplicateName, p.Name(), c.name)
	}
	c.children = append(c.children, p)
	return nil
}

// Remove deletes the named child, reporting whether it existed.
func (c *CompoundParameter) Remove(name string) bool {
	for i, child := range c.children {
		if child.Name() == name {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Child returns the named child, or nil.
func (c *CompoundParameter) Child(name string) Parameter {
	for _, child := range c.children {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// Ordered returns the children in declaration order.
// The returned slice is a copy; the parameters are shared.
func (c *CompoundParameter) Ordered() []Parameter {
	out := make([]Parameter, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of children.
func (c *CompoundParameter) Len() int {
	return len(c.children)
}
