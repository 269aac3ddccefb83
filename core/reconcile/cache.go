package reconcile

import (
	"param-host/core/intern"
	"param-host/core/parameter"
	"param-host/core/plug"

	"go.uber.org/zap"
)

// Cache memoizes the adapter for each child of one compound, keyed by interned name.
// A nil entry records a child that is deliberately absent: excluded by user data,
// or for which no adapter could be created. Entries are never updated or removed,
// so a cache does not notice later changes to the parameter tree.
type Cache struct {
	factory *Factory
	owner   *plug.CompoundPlug
	entries map[intern.Name]Adapter
}

// NewCache creates an empty cache whose adapters attach their plugs under owner.
func NewCache(f *Factory, owner *plug.CompoundPlug) *Cache {
	return &Cache{
		factory: f,
		owner:   owner,
		entries: make(map[intern.Name]Adapter),
	}
}

// Resolve returns the adapter for child.
//
// A previously resolved child returns its memoized result. Otherwise, when
// createIfMissing is false nothing is stored and nil is returned; when it is true
// the child is resolved exactly once: excluded children and children no creator
// accepts are stored as absent (the latter with a warning), everything else gets
// a newly created adapter.
func (c *Cache) Resolve(child parameter.Parameter, createIfMissing bool) Adapter {
	key := child.InternedName()
	if a, ok := c.entries[key]; ok {
		return a
	}
	if !createIfMissing {
		return nil
	}

	if c.excluded(child) {
		c.entries[key] = nil
		return nil
	}

	a := c.factory.Create(child, c.owner)
	if a == nil {
		c.factory.logger.Warn("Unable to create adapter for parameter",
			zap.String("component", component),
			zap.String("parameter", child.Name()),
			zap.String("type", child.TypeName()),
		)
	}
	c.entries[key] = a
	return a
}

// Lookup returns the memoized result for child without resolving it.
// resolved is false if child has never been resolved by a creating call.
func (c *Cache) Lookup(child parameter.Parameter) (a Adapter, resolved bool) {
	a, resolved = c.entries[child.InternedName()]
	return a, resolved
}

// Len returns the number of resolved children, absent ones included.
func (c *Cache) Len() int {
	return len(c.entries)
}

// excluded reports whether child opts out of plug representation.
func (c *Cache) excluded(child parameter.Parameter) bool {
	v, ok := child.UserData().Bool(c.factory.cfg.ExcludeKey)
	return ok && v
}
