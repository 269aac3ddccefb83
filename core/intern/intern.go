// Package intern provides a process-wide string interning table.
//
// Interned names are small integers that compare equal exactly when their
// strings compare equal, which makes them cheap map keys for name-based
// identity (see core/reconcile).
//
// # Usage
//
//	n := intern.Of("width")
//	fmt.Println(n == intern.Of("width")) // true
//	fmt.Println(n.String())              // "width"
package intern

import "sync"

// Name is an interned string. The zero Name is the empty string.
type Name uint32

// table maps strings to monotonically assigned IDs and back.
var table = struct {
	mu   sync.RWMutex
	ids  map[string]Name
	strs []string
}{
	ids:  map[string]Name{"": 0},
	strs: []string{""},
}

// Of returns the interned Name for s, assigning a new one on first use.
func Of(s string) Name {
	table.mu.RLock()
	n, ok := table.ids[s]
	table.mu.RUnlock()
	if ok {
		return n
	}

	table.mu.Lock()
	defer table.mu.Unlock()
	// Another caller may have interned s between the two locks
	if n, ok := table.ids[s]; ok {
		return n
	}
	n = Name(len(table.strs))
	table.ids[s] = n
	table.strs = append(table.strs, s)
	return n
}

// String returns the string n was interned from.
func (n Name) String() string {
	table.mu.RLock()
	defer table.mu.RUnlock()
	if int(n) >= len(table.strs) {
		return ""
	}
	return table.strs[n]
}

// Len returns the number of interned strings, including the empty string.
func Len() int {
	table.mu.RLock()
	defer table.mu.RUnlock()
	return len(table.strs)
}
