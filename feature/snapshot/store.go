package snapshot

import (
	"context"
	"errors"
	"fmt"

	"param-host/core/plug"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoSnapshot is returned when restoring a session that has nothing saved.
var ErrNoSnapshot = errors.New("no snapshot for session")

// Store persists plug values per session.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the plug_values table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&PlugValue{}); err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

// Save replaces the session's snapshot with the current values below root.
// It returns the number of values written.
func (s *Store) Save(ctx context.Context, session string, root *plug.CompoundPlug) (int, error) {
	rows, err := Capture(session, root)
	if err != nil {
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session = ?", session).Delete(&PlugValue{}).Error; err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Snapshot saved", zap.String("session", session), zap.Int("values", len(rows)))
	return len(rows), nil
}

// Load returns the saved rows of a session ordered by path.
func (s *Store) Load(ctx context.Context, session string) ([]PlugValue, error) {
	var rows []PlugValue
	err := s.db.WithContext(ctx).
		Where("session = ?", session).
		Order("path").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return rows, nil
}

// Restore applies the session's saved values to the plugs below root.
func (s *Store) Restore(ctx context.Context, session string, root *plug.CompoundPlug) (Result, error) {
	rows, err := s.Load(ctx, session)
	if err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w %q", ErrNoSnapshot, session)
	}

	res := Apply(rows, root)
	if len(res.Missing) > 0 || len(res.Failed) > 0 {
		s.logger.Warn("Snapshot partially restored",
			zap.String("session", session),
			zap.Strings("missing", res.Missing),
			zap.Int("failed", len(res.Failed)),
		)
	}
	return res, nil
}

// Sessions lists the sessions that have a snapshot.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	var sessions []string
	err := s.db.WithContext(ctx).
		Model(&PlugValue{}).
		Distinct("session").
		Order("session").
		Pluck("session", &sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session's snapshot and returns the number of rows removed.
func (s *Store) Delete(ctx context.Context, session string) (int64, error) {
	res := s.db.WithContext(ctx).Where("session = ?", session).Delete(&PlugValue{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete snapshot: %w", res.Error)
	}
	return res.RowsAffected, nil
}
