package report

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prune removes uploaded report objects whose last modification is older
// than age and returns how many were removed. It is a no-op without a
// storage client.
func (w *Writer) Prune(ctx context.Context, age time.Duration) (int, error) {
	if w.store == nil {
		return 0, nil
	}
	cutoff := w.now().Add(-age)

	var stale []minio.ObjectInfo
	listing := w.store.ListObjects(ctx, w.bucket, minio.ListObjectsOptions{
		Prefix:    "reports/",
		Recursive: true,
	})
	for info := range listing {
		if info.Err != nil {
			return 0, fmt.Errorf("report: failed to list bucket %s: %w", w.bucket, info.Err)
		}
		if info.LastModified.Before(cutoff) {
			stale = append(stale, info)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, info := range stale {
			objectsCh <- info
		}
	}()

	var firstErr error
	failed := 0
	for rerr := range w.store.RemoveObjects(ctx, w.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("report: failed to remove %s: %w", rerr.ObjectName, rerr.Err)
			}
		}
	}
	removed := len(stale) - failed
	if firstErr != nil {
		return removed, firstErr
	}

	w.log.Info("pruned report objects",
		zap.Int("count", removed),
		zap.String("bucket", w.bucket),
	)
	return removed, nil
}
