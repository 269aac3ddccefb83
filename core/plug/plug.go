package plug

import (
	"errors"
	"strings"
)

// ErrNotChild is returned when removing a plug that is not a child of the receiver.
var ErrNotChild = errors.New("plug is not a child")

// Plug is a node of the control tree.
type Plug interface {
	// Name returns the name the plug was attached under.
	Name() string
	// Parent returns the owning compound, or nil for a detached plug.
	Parent() *CompoundPlug
	// TypeName returns the plug variant name.
	TypeName() string

	attach(parent *CompoundPlug, name string)
	detach()
}

// EventKind identifies what changed.
type EventKind int

const (
	ChildAdded EventKind = iota
	ChildRemoved
	ValueChanged
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case ChildAdded:
		return "child_added"
	case ChildRemoved:
		return "child_removed"
	case ValueChanged:
		return "value_changed"
	default:
		return "unknown"
	}
}

// Event describes a change to Plug, a direct child of Parent.
type Event struct {
	Kind   EventKind
	Parent *CompoundPlug
	Plug   Plug
}

// base carries naming and parenting shared by all plugs.
type base struct {
	name   string
	parent *CompoundPlug
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Parent() *CompoundPlug {
	return b.parent
}

func (b *base) attach(parent *CompoundPlug, name string) {
	b.parent = parent
	b.name = name
}

func (b *base) detach() {
	b.parent = nil
}

// FullName returns the dotted path from the outermost ancestor to p.
func FullName(p Plug) string {
	var parts []string
	for cur := p; cur != nil; {
		parts = append(parts, cur.Name())
		parent := cur.Parent()
		if parent == nil {
			break
		}
		cur = parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// RelativeName returns the dotted path from ancestor to p, excluding ancestor.
// ok is false if ancestor is not above p.
func RelativeName(ancestor *CompoundPlug, p Plug) (name string, ok bool) {
	var parts []string
	for cur := p; cur != nil; {
		parent := cur.Parent()
		parts = append(parts, cur.Name())
		if parent == nil {
			return "", false
		}
		if parent == ancestor {
			break
		}
		cur = parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "."), true
}

// Walk visits root's descendants depth-first in attach order.
// Returning false from fn skips the children of that plug.
func Walk(root *CompoundPlug, fn func(p Plug) bool) {
	for _, child := range root.Children() {
		if !fn(child) {
			continue
		}
		if compound, ok := child.(*CompoundPlug); ok {
			Walk(compound, fn)
		}
	}
}
