// Package storage abstracts the S3-compatible object store.
//
// Client is the subset of the MinIO client the application needs: bucket
// checks, object upload, download and listing. Parameter documents are read
// from the configured bucket and value exports are written back to it.
//
// A testify mock of Client lives in core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
