package parameter

// OpaqueParameter carries a value of a type this package does not model,
// such as a color or a file path declared by a document.
type OpaqueParameter struct {
	base
	typeName string
	Value    any
}

// NewOpaque creates a parameter reporting typeName as its type.
func NewOpaque(name, description, typeName string, value any) *OpaqueParameter {
	return &OpaqueParameter{base: newBase(name, description), typeName: typeName, Value: value}
}

// TypeName implements Parameter.
func (p *OpaqueParameter) TypeName() string {
	return p.typeName
}
