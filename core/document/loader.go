package document

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"param-host/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader reads parameter documents from a storage bucket.
//
// Parsed documents are kept for a TTL, and concurrent loads of the same key share
// one fetch. Returned documents are shared between callers and must not be
// modified; Build them into fresh parameter trees instead.
type Loader struct {
	client storage.Client
	bucket string
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	entries map[string]cached
	sf      singleflight.Group
}

type cached struct {
	doc     *Document
	fetched time.Time
}

// NewLoader creates a loader over bucket. A zero ttl disables caching but
// still deduplicates concurrent loads.
func NewLoader(client storage.Client, bucket string, ttl time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client:  client,
		bucket:  bucket,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]cached),
	}
}

// Load returns the parsed document stored under key.
func (l *Loader) Load(ctx context.Context, key string) (*Document, error) {
	if doc, ok := l.fresh(key); ok {
		return doc, nil
	}

	result, err, shared := l.sf.Do(key, func() (any, error) {
		if doc, ok := l.fresh(key); ok {
			return doc, nil
		}

		doc, err := l.fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		if l.ttl > 0 {
			l.mu.Lock()
			l.entries[key] = cached{doc: doc, fetched: time.Now()}
			l.mu.Unlock()
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.logger.Debug("Shared document fetch", zap.String("key", key))
	}
	return result.(*Document), nil
}

// Invalidate drops the cached copy of key.
func (l *Loader) Invalidate(key string) {
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()
}

// List returns the keys under prefix that have a known document extension, sorted.
func (l *Loader) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range l.client.ListObjects(ctx, l.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list documents: %w", obj.Err)
		}
		if _, err := FormatOf(obj.Key); err == nil {
			keys = append(keys, obj.Key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (l *Loader) fresh(key string) (*Document, bool) {
	if l.ttl <= 0 {
		return nil, false
	}
	l.mu.RLock()
	entry, ok := l.entries[key]
	l.mu.RUnlock()
	if !ok || time.Since(entry.fetched) > l.ttl {
		return nil, false
	}
	return entry.doc, true
}

func (l *Loader) fetch(ctx context.Context, key string) (*Document, error) {
	format, err := FormatOf(key)
	if err != nil {
		return nil, err
	}

	obj, err := l.client.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	l.logger.Debug("Fetched document", zap.String("key", key), zap.Int("bytes", len(data)))
	return doc, nil
}
