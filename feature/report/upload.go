package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// uploadArtifact copies a generated file into the report bucket, creating
// the bucket on first use. Objects are keyed reports/<format>/<filename>.
func (w *Writer) uploadArtifact(ctx context.Context, localPath string, format Format) (string, error) {
	if err := w.ensureBucket(ctx); err != nil {
		return "", err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("report: failed to open %s for upload: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}

	object := path.Join("reports", string(format), filepath.Base(localPath))
	contentType := "text/csv"
	if format == FormatExcel {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	_, err = w.store.PutObject(ctx, w.bucket, object, f, info.Size(), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("report: failed to upload %s: %w", object, err)
	}

	w.log.Debug("report uploaded",
		zap.String("bucket", w.bucket),
		zap.String("object", object),
	)
	return object, nil
}

func (w *Writer) ensureBucket(ctx context.Context) error {
	exists, err := w.store.BucketExists(ctx, w.bucket)
	if err != nil {
		return fmt.Errorf("report: failed to check bucket %s: %w", w.bucket, err)
	}
	if exists {
		return nil
	}
	if err := w.store.MakeBucket(ctx, w.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("report: failed to create bucket %s: %w", w.bucket, err)
	}
	return nil
}

// removeUploaded deletes the objects a failed run already uploaded, best
// effort.
func (w *Writer) removeUploaded(ctx context.Context, artifacts []Artifact) {
	for _, a := range artifacts {
		if a.Object == "" {
			continue
		}
		if err := w.store.RemoveObject(ctx, w.bucket, a.Object, minio.RemoveObjectOptions{}); err != nil {
			w.log.Warn("failed to remove uploaded report",
				zap.String("object", a.Object),
				zap.Error(err),
			)
		}
	}
}
