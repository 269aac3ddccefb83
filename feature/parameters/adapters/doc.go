// Package adapters registers the scalar adapters with the default reconcile registry.
//
// Importing the package (usually for side effects) makes FloatParameter,
// IntParameter, StringParameter and BoolParameter representable as plugs:
//
//	import _ "param-host/feature/parameters/adapters"
//
// Each adapter owns one ValuePlug of the matching type. It adopts an existing plug
// of that name and type, so values set on the plug survive a resync.
package adapters
