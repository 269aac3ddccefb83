package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrTableNotFound is returned when inspecting a table that does not exist.
var ErrTableNotFound = errors.New("table not found")

// Column describes one column as reported by the database.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

// TableColumns returns the columns of tableName with lowercased names and types.
func TableColumns(db *gorm.DB, tableName string) ([]Column, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(tableName) {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
	}

	types, err := migrator.ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]Column, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		pk, _ := ct.PrimaryKey()
		columns = append(columns, Column{
			Name:       strings.ToLower(ct.Name()),
			Type:       strings.ToLower(ct.DatabaseTypeName()),
			Nullable:   nullable,
			PrimaryKey: pk,
		})
	}
	return columns, nil
}

// MissingColumns returns the names in want that tableName lacks, in want order.
func MissingColumns(db *gorm.DB, tableName string, want []string) ([]string, error) {
	columns, err := TableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Name] = true
	}
	var missing []string
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
