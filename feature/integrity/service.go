package integrity

import (
	"context"
	"errors"

	"param-host/core/reconcile"
	"param-host/core/storage"
	"param-host/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoStorage is returned by bucket checks without a storage client.
	ErrNoStorage = errors.New("storage client not configured")
	// ErrNoSession is returned by the shape check when no session is attached.
	ErrNoSession = errors.New("no parameter session attached")
)

// ShapeSource exposes a hosted parameter tree to the shape check.
// *parameters.Service satisfies it.
type ShapeSource interface {
	WithView(fn func(reconcile.View)) error
	ExcludeKey() string
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	shape  ShapeSource
}

// NewService creates a new integrity service. db and shape may be nil; the
// checks needing them then report an error.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, shape ShapeSource) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		shape:  shape,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDocuments builds every stored parameter document.
func (s *Service) CheckDocuments(ctx context.Context) (*checks.DocumentReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckDocuments(ctx, s.client, s.bucket)
}

// CheckSchema verifies the snapshot table.
func (s *Service) CheckSchema() (*checks.TableReport, error) {
	return checks.CheckSnapshotTable(s.db)
}

// CheckShape compares the hosted parameter tree with its plugs.
func (s *Service) CheckShape() (*checks.ShapeReport, error) {
	if s.shape == nil {
		return nil, ErrNoSession
	}
	var report *checks.ShapeReport
	err := s.shape.WithView(func(v reconcile.View) {
		report = checks.CheckShape(v, s.shape.ExcludeKey())
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
