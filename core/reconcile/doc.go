// Package reconcile keeps a control tree (core/plug) shaped like a specification
// tree (core/parameter) and moves values between the two.
//
// # Architecture
//
// The reconcile system consists of four components:
//
// 1. Adapter: bridges one parameter and the one plug it owns. SetPlugValue pushes
// the parameter value to the plug, SetParameterValue pushes the plug value back.
//
// 2. Registry: maps a parameter's dynamic type to a Creator. Packages add
// variants from init() with Register, without modifying this package.
//
// 3. Cache: memoizes "child name -> adapter" for one compound. The first
// creating lookup of a name decides the outcome (an adapter, or permanently
// absent when the parameter is excluded by user data or no creator matched) for
// the lifetime of the cache.
//
// 4. CompoundAdapter: on construction adopts or creates its CompoundPlug, prunes
// plugs that no longer match a parameter, and populates one adapter per child in
// declaration order (recursing through nested compounds). Afterwards SetPlugValue
// and SetParameterValue walk the children in the same order.
//
// # Shape changes
//
// Value propagation never changes shape. When the parameter tree gains or loses
// children, build a new CompoundAdapter over the same plug parent: existing plugs
// are adopted, stale ones are pruned.
//
// # Concurrency
//
// Nothing here locks except the Registry. Callers serialize access to the trees
// and adapters.
//
// # Usage Example
//
//	factory := reconcile.NewFactory(cfg.Reconcile, logger, nil)
//	adapter := reconcile.NewCompound(factory, root, node)
//
//	// parameters -> plugs
//	err := adapter.SetPlugValue()
//
//	// plugs -> parameters
//	err = adapter.SetParameterValue()
package reconcile
