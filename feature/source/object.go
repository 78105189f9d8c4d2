package source

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"data-recon/core/dataset"
)

// loadObject fetches a bucket object and parses it by extension.
func (l *Loader) loadObject(ctx context.Context, spec Spec) (*dataset.Dataset, error) {
	if l.store == nil {
		return nil, fmt.Errorf("source: no storage client configured for object specs")
	}

	obj, err := l.store.GetObject(ctx, l.bucket, spec.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("source: failed to fetch object %s: %w", spec.Object, err)
	}
	defer obj.Close()

	switch ext := strings.ToLower(path.Ext(spec.Object)); ext {
	case ".csv":
		return readCSV(obj, spec.File, spec.Columns)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(obj)
		if err != nil {
			return nil, fmt.Errorf("source: failed to open object %s: %w", spec.Object, err)
		}
		defer f.Close()
		return readExcel(f, spec.File, spec.Columns)
	default:
		return nil, fmt.Errorf("source: unsupported object extension %q", ext)
	}
}
