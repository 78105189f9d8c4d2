package report

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"data-recon/core/storage/mocks"
)

func objectChannel(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func removeErrorChannel(errs ...minio.RemoveObjectError) <-chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError, len(errs))
	for _, e := range errs {
		ch <- e
	}
	close(ch)
	return ch
}

// TestWriter_Prune tests that objects past the retention age are removed
// and newer ones stay.
func TestWriter_Prune(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-48 * time.Hour)
	fresh := now.Add(-time.Hour)

	store := new(mocks.Client)
	store.On("ListObjects", mock.Anything, "recon", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "reports/csv/a.csv", LastModified: old},
		minio.ObjectInfo{Key: "reports/excel/b.xlsx", LastModified: old},
		minio.ObjectInfo{Key: "reports/csv/c.csv", LastModified: fresh},
	))

	var removed []string
	store.On("RemoveObjects", mock.Anything, "recon", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ch := args.Get(2).(<-chan minio.ObjectInfo)
			for info := range ch {
				removed = append(removed, info.Key)
			}
		}).
		Return(removeErrorChannel())

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon"})
	w.now = func() time.Time { return now }

	count, err := w.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"reports/csv/a.csv", "reports/excel/b.xlsx"}, removed)
}

// TestWriter_Prune_NothingStale tests that a bucket of fresh objects stays
// untouched.
func TestWriter_Prune_NothingStale(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store := new(mocks.Client)
	store.On("ListObjects", mock.Anything, "recon", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "reports/csv/c.csv", LastModified: now.Add(-time.Hour)},
	))

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon"})
	w.now = func() time.Time { return now }

	count, err := w.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, count)
	store.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestWriter_Prune_NoStore tests that pruning without storage is a no-op.
func TestWriter_Prune_NoStore(t *testing.T) {
	w := newTestWriter(t, Options{Dir: t.TempDir()})

	count, err := w.Prune(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestWriter_Prune_ListError tests that a listing failure aborts the prune.
func TestWriter_Prune_ListError(t *testing.T) {
	store := new(mocks.Client)
	store.On("ListObjects", mock.Anything, "recon", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Err: assert.AnError},
	))

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon"})

	_, err := w.Prune(context.Background(), time.Hour)
	assert.ErrorContains(t, err, "failed to list")
}
