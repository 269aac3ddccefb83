// Package database opens the optional SQL connection used for value snapshots.
//
// Connect wraps GORM with either the MySQL or the SQLite dialector, applies
// pool settings and verifies the connection with a bounded ping.
//
// The inspector helpers (TableColumns, MissingColumns) read the live schema through
// GORM's migrator; the integrity feature uses them to confirm the snapshot table
// has the columns the snapshot store writes.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
