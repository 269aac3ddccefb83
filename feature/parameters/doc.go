// Package parameters hosts one parameter tree and serves it over HTTP.
//
// A Service owns a host plug node. Opening a document builds its parameter tree
// and reconciles a plug tree for it under the host node through a
// reconcile.CompoundAdapter; later documents are reconciled over the same node, so
// surviving plugs and their values are kept. Values flow parameter to plug on
// open and refresh, and plug to parameter when a plug is edited, a snapshot is
// restored, or a resync keeps the existing plug values.
//
// # HTTP Endpoints
//
//   - GET  /parameters            : current parameter values
//   - PUT  /parameters            : apply a nested value map
//   - GET  /parameters/plugs      : the plug tree
//   - PUT  /parameters/plugs/*    : set one plug ({"value": ...}), pushed to its parameter
//   - GET  /parameters/adapters   : adaptable parameter types
//   - POST /parameters/refresh    : push parameter values to plugs
//   - POST /parameters/resync     : reconcile against {"source": ...} or {"document": {...}}
//   - POST /parameters/snapshot   : save plug values to the database
//   - POST /parameters/restore    : restore saved plug values
//   - POST /parameters/export     : upload values to the bucket (?format=yaml|json|toml)
package parameters
