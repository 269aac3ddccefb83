package cmd

import (
	"context"
	"fmt"
	"time"

	"param-host/core/config"
	"param-host/core/database"
	"param-host/core/document"
	"param-host/core/logger"
	"param-host/core/storage"
	"param-host/feature/parameters"
	"param-host/feature/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configPath string

// host holds what every command builds from configuration. The database and
// the storage bucket are optional: when they cannot be reached they stay nil.
type host struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	snapshots *snapshot.Store
	store     storage.Client
}

func bootstrap(ctx context.Context) (*host, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	h := &host{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		h.db = conn
		store := snapshot.NewStore(conn, logg)
		if err := store.Migrate(); err != nil {
			logg.Warn("Snapshot table migration failed", zap.Error(err))
		} else {
			h.snapshots = store
		}
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
		return h, nil
	}
	timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := checkBucket(ctx, client, cfg.Storage); err != nil {
		logg.Warn("Optional storage unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		return h, nil
	}
	h.store = client
	return h, nil
}

func checkBucket(ctx context.Context, client storage.Client, cfg storage.Config) error {
	if cfg.CreateBucket {
		return storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", cfg.Bucket)
	}
	return nil
}

// open creates a parameter session and opens source in it. An empty source
// means the configured document.
func (h *host) open(ctx context.Context, session, source string) (*parameters.Service, error) {
	if source == "" {
		source = h.cfg.Document.Source
	}

	var docs *document.Loader
	if h.cfg.Document.FromBucket {
		if h.store == nil {
			return nil, fmt.Errorf("document %s: %w: storage", source, parameters.ErrUnavailable)
		}
		ttl := time.Duration(h.cfg.Document.CacheTTLSeconds) * time.Second
		docs = document.NewLoader(h.store, h.cfg.Storage.Bucket, ttl, h.logger)
	}

	svc := parameters.NewService(parameters.Options{
		Reconcile: h.cfg.Reconcile,
		Loader:    docs,
		Client:    h.store,
		Bucket:    h.cfg.Storage.Bucket,
		Snapshots: h.snapshots,
		Logger:    h.logger,
		Session:   session,
	})

	doc, err := svc.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	if err := svc.Open(doc, source); err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	return svc, nil
}
