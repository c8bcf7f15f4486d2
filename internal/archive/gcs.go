// Package archive stores cleaned canonical CSV exports in Google Cloud
// Storage so every ingested upload keeps a durable copy of the exact
// rows it was derived from.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"cloud.google.com/go/storage"

	"campusfin/procure-csv/internal/logging"
)

const uploadTimeout = 2 * time.Minute

// Archiver uploads cleaned CSV files to a GCS bucket and hands back the
// gs:// path recorded in upload metadata.
type Archiver struct {
	client *storage.Client
	bucket string
	logger logging.Logger
}

// New wraps an existing storage client. The client is expected to carry
// Application Default Credentials.
func New(client *storage.Client, bucket string, logger logging.Logger) *Archiver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// ArchiveFile uploads a local file under clean/{dataset}/{uploadID}/ and
// returns the resulting gs:// object path.
func (a *Archiver) ArchiveFile(ctx context.Context, dataset, uploadID, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file %q: %w", filePath, err)
	}
	defer f.Close()

	objectName := ObjectName(dataset, uploadID, path.Base(filePath))
	if err := a.upload(ctx, objectName, f); err != nil {
		return "", err
	}

	storagePath := fmt.Sprintf("gs://%s/%s", a.bucket, objectName)
	a.logger.Info("Archived cleaned export",
		logging.Field{Key: logging.FieldDataset, Value: dataset},
		logging.Field{Key: logging.FieldFile, Value: storagePath})
	return storagePath, nil
}

func (a *Archiver) upload(ctx context.Context, objectName string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("copy file to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload of %s: %w", objectName, err)
	}
	return nil
}

// ObjectName builds the object path for a cleaned export.
func ObjectName(dataset, uploadID, filename string) string {
	return path.Join("clean", dataset, uploadID, filename)
}
