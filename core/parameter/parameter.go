package parameter

import (
	"errors"

	"param-host/core/intern"
)

var (
	// ErrDuplicateName is returned when adding a child whose name is already taken.
	ErrDuplicateName = errors.New("duplicate parameter name")
	// ErrOutOfRange is returned when a numeric value falls outside its range.
	ErrOutOfRange = errors.New("value out of range")
)

// Parameter is a node of the specification tree.
type Parameter interface {
	// Name returns the parameter name. The root of a tree may be unnamed.
	Name() string
	// InternedName returns the interned form of Name, used as an identity key.
	InternedName() intern.Name
	// TypeName returns the dynamic type name, used in diagnostics.
	TypeName() string
	// Description returns the human-readable description.
	Description() string
	// UserData returns the metadata bag. The map is live: writes are visible.
	UserData() UserData
}

// UserData is arbitrary per-parameter metadata.
type UserData map[string]any

// Bool returns the boolean stored under key. ok is false when the key is
// missing or does not hold a bool.
func (u UserData) Bool(key string) (value, ok bool) {
	v, found := u[key]
	if !found {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

// base carries the fields shared by every parameter type.
type base struct {
	name        string
	description string
	userData    UserData
}

func newBase(name, description string) base {
	return base{name: name, description: description, userData: UserData{}}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) InternedName() intern.Name {
	return intern.Of(b.name)
}

func (b *base) Description() string {
	return b.description
}

func (b *base) UserData() UserData {
	return b.userData
}
