package checks

import (
	"errors"
	"fmt"

	"param-host/core/database"
	"param-host/feature/snapshot"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned by schema checks without a connection.
var ErrNoDatabase = errors.New("database connection is nil")

// TableReport describes how a live table matches what the code writes.
type TableReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSnapshotTable verifies the snapshot table has every column the store uses.
func CheckSnapshotTable(db *gorm.DB) (*TableReport, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	report := &TableReport{Table: snapshot.TableName, MissingColumns: []string{}, Status: "ok"}
	missing, err := database.MissingColumns(db, snapshot.TableName, snapshot.Columns)
	switch {
	case errors.Is(err, database.ErrTableNotFound):
		report.Status = "error"
		return report, nil
	case err != nil:
		return nil, fmt.Errorf("inspect %s: %w", snapshot.TableName, err)
	}

	report.Exists = true
	if len(missing) > 0 {
		report.MissingColumns = missing
		report.Status = "error"
	}
	return report, nil
}
