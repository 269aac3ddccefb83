// Package snapshot saves and restores plug values.
//
// A snapshot is the set of value plugs below a session's root plug, stored one row
// per plug in the plug_values table (session, dotted relative path, plug type, JSON
// value). Saving replaces the session's rows inside a transaction. Restoring walks
// the saved rows and sets every plug that still exists; rows for plugs that were
// pruned by a later reconciliation are reported as missing.
//
// Capture and Apply are the pure halves and need no database.
package snapshot
