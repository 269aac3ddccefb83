// Package integrity reports on the health of a parameter host.
//
// It validates the infrastructure around a hosted session rather than the
// parameter values themselves.
//
// # Checks Provided
//
//   - Structure: the storage bucket has the documents/ and exports/ folders.
//   - Documents: every stored parameter document parses and builds.
//   - Schema: the snapshot table has every column the snapshot store writes.
//   - Shape: the hosted plug tree matches the parameter tree. Missing plugs,
//     stale plugs, excluded and unadapted parameters are listed separately.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/documents : Runs documents check.
//   - GET /integrity/schema : Runs snapshot schema check.
//   - GET /integrity/shape : Runs shape check against the hosted session.
package integrity
