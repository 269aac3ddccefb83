package reconcile

import (
	"param-host/core/parameter"
	"param-host/core/plug"
)

// Adapter defines the contract between one parameter and the plug that represents it.
// An adapter exclusively owns its plug for its lifetime; it only references its
// parameter, whose tree must outlive it.
type Adapter interface {
	// Parameter returns the parameter this adapter reads and writes.
	Parameter() parameter.Parameter

	// Plug returns the plug this adapter created or adopted.
	Plug() plug.Plug

	// SetParameterValue pushes the plug value into the parameter.
	// Errors (for example validation failures) are returned unchanged.
	SetParameterValue() error

	// SetPlugValue pushes the parameter value into the plug.
	SetPlugValue() error
}

// View is the read-only face of a CompoundAdapter. It never creates adapters.
type View interface {
	Parameter() parameter.Parameter
	Plug() plug.Plug
	// ChildAdapter returns the adapter already resolved for child, or nil.
	ChildAdapter(child parameter.Parameter) Adapter
}
