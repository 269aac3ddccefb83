package snapshot

import "time"

// TableName is the table plug values are stored in.
const TableName = "plug_values"

// Columns lists the columns the store reads and writes.
var Columns = []string{"id", "session", "path", "kind", "value", "updated_at"}

// PlugValue is one saved plug value. Path is relative to the session's root plug
// and Value holds the JSON encoding of the plug value.
type PlugValue struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Session   string    `gorm:"size:64;not null;uniqueIndex:idx_plug_values_session_path" json:"session"`
	Path      string    `gorm:"size:255;not null;uniqueIndex:idx_plug_values_session_path" json:"path"`
	Kind      string    `gorm:"size:32;not null" json:"kind"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName implements gorm's tabler.
func (PlugValue) TableName() string {
	return TableName
}
