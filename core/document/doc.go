// Package document reads and writes parameter documents.
//
// A document declares a parameter tree in YAML, JSON or TOML:
//
//	name: ""
//	children:
//	  - name: gain
//	    type: float
//	    default: 0.5
//	    min: 0
//	    max: 1
//	  - name: debug
//	    type: compound
//	    user_data: {noHostMapping: true}
//	    children:
//	      - {name: verbose, type: bool}
//
// Build turns a document into a fresh parameter.CompoundParameter. Unknown types
// become opaque parameters, which no adapter handles, so the host reports them and
// leaves them out of the plug tree.
//
// Values and ApplyValues convert a tree's current values to and from nested maps,
// which Marshal and Unmarshal encode in any supported format.
//
// Loader fetches documents from the object store with a TTL cache and
// singleflight deduplication.
package document
