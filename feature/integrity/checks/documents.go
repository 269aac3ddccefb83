package checks

import (
	"context"

	"param-host/core/document"
	"param-host/core/storage"
)

// DocumentsPrefix is where parameter documents live in the bucket.
const DocumentsPrefix = "documents/"

// DocumentReport lists which stored documents build into a parameter tree.
type DocumentReport struct {
	Valid   []string          `json:"valid"`
	Invalid map[string]string `json:"invalid"`
	Status  string            `json:"status"` // "ok", "error"
}

// CheckDocuments parses and builds every document under DocumentsPrefix.
func CheckDocuments(ctx context.Context, client storage.Client, bucket string) (*DocumentReport, error) {
	loader := document.NewLoader(client, bucket, 0, nil)
	keys, err := loader.List(ctx, DocumentsPrefix)
	if err != nil {
		return nil, err
	}

	report := &DocumentReport{Valid: []string{}, Invalid: map[string]string{}, Status: "ok"}
	for _, key := range keys {
		doc, err := loader.Load(ctx, key)
		if err == nil {
			_, err = doc.Build()
		}
		if err != nil {
			report.Invalid[key] = err.Error()
			report.Status = "error"
			continue
		}
		report.Valid = append(report.Valid, key)
	}
	return report, nil
}
