package plug

import "strings"

// CompoundPlug is a plug with uniquely named children.
type CompoundPlug struct {
	base
	children    []Plug
	subscribers []func(Event)
}

// NewCompound creates a detached compound plug. The name is replaced when the
// plug is attached with SetChild.
func NewCompound(name string) *CompoundPlug {
	return &CompoundPlug{base: base{name: name}}
}

// TypeName implements Plug.
func (c *CompoundPlug) TypeName() string {
	return "CompoundPlug"
}

// Child returns the named child, or nil.
func (c *CompoundPlug) Child(name string) Plug {
	for _, child := range c.children {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// GetChild returns the named child of parent if it exists and has type T.
func GetChild[T Plug](parent *CompoundPlug, name string) (T, bool) {
	var zero T
	if parent == nil {
		return zero, false
	}
	typed, ok := parent.Child(name).(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Children returns a snapshot of the children in attach order.
func (c *CompoundPlug) Children() []Plug {
	out := make([]Plug, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of children.
func (c *CompoundPlug) Len() int {
	return len(c.children)
}

// SetChild attaches p under name. A different plug already attached under that
// name is removed first; p is detached from any previous parent.
func (c *CompoundPlug) SetChild(name string, p Plug) {
	if existing := c.Child(name); existing != nil {
		if existing == p {
			return
		}
		_ = c.RemoveChild(existing)
	}
	if old := p.Parent(); old != nil {
		_ = old.RemoveChild(p)
	}
	p.attach(c, name)
	c.children = append(c.children, p)
	c.emit(Event{Kind: ChildAdded, Parent: c, Plug: p})
}

// RemoveChild detaches p from c.
func (c *CompoundPlug) RemoveChild(p Plug) error {
	for i, child := range c.children {
		if child == p {
			c.children = append(c.children[:i], c.children[i+1:]...)
			p.detach()
			c.emit(Event{Kind: ChildRemoved, Parent: c, Plug: p})
			return nil
		}
	}
	return ErrNotChild
}

// Descendant resolves a dotted path relative to c, or returns nil.
func (c *CompoundPlug) Descendant(path string) Plug {
	if path == "" {
		return nil
	}
	var cur Plug = c
	for _, part := range strings.Split(path, ".") {
		compound, ok := cur.(*CompoundPlug)
		if !ok {
			return nil
		}
		cur = compound.Child(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Subscribe registers fn for events on c's children and on all descendants.
func (c *CompoundPlug) Subscribe(fn func(Event)) {
	c.subscribers = append(c.subscribers, fn)
}

// emit delivers e to c and its ancestors.
func (c *CompoundPlug) emit(e Event) {
	for cur := c; cur != nil; cur = cur.parent {
		for _, fn := range cur.subscribers {
			fn(e)
		}
	}
}
