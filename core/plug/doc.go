// Package plug implements the control tree: named plugs that a host observes and edits.
//
// A CompoundPlug holds uniquely named children. ValuePlug[T] holds one scalar
// value. Children are kept in attach order so listings are deterministic, but
// lookup is always by name.
//
// # Events
//
// Structural changes (ChildAdded, ChildRemoved) and value changes (ValueChanged)
// are delivered to subscribers of the affected plug's parent and of every ancestor
// above it, so subscribing at the root observes the whole tree.
//
// # Usage
//
//	node := plug.NewCompound("node")
//	node.SetChild("width", plug.NewValue(1.0))
//	w, ok := plug.GetChild[*plug.ValuePlug[float64]](node, "width")
package plug
