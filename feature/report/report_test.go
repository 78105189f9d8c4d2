package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"data-recon/core/dataset"
	"data-recon/core/engine"
	"data-recon/core/storage/mocks"
)

// newTestWriter pins the clock and run id so artifact names and contents
// are deterministic.
func newTestWriter(t *testing.T, opts Options) *Writer {
	t.Helper()

	w, err := NewWriter(opts, zap.NewNop())
	require.NoError(t, err)
	w.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
	w.newID = func() string { return "run-fixed" }
	return w
}

// sampleInput reconciles a small pair with one mismatch, one missing row,
// and one extra row.
func sampleInput(t *testing.T) Input {
	t.Helper()

	source, err := dataset.New([]string{"id", "region", "amount"}, []dataset.Row{
		{"id": int64(1), "region": "emea", "amount": 10.5},
		{"id": int64(2), "region": "emea", "amount": 20.0},
		{"id": int64(3), "region": "apac", "amount": 30.0},
		{"id": int64(4), "region": "apac", "amount": 40.0},
	})
	require.NoError(t, err)
	target, err := dataset.New([]string{"id", "region", "amount"}, []dataset.Row{
		{"id": int64(1), "region": "emea", "amount": 10.5},
		{"id": int64(2), "region": "emea", "amount": 99.0},
		{"id": int64(3), "region": "apac", "amount": 30.0},
		{"id": int64(5), "region": "emea", "amount": 50.0},
	})
	require.NoError(t, err)

	eng, err := engine.New(zap.NewNop(), engine.DefaultOptions())
	require.NoError(t, err)
	res, err := eng.Reconcile(context.Background(), source, target, []string{"id"})
	require.NoError(t, err)

	return Input{
		Result:     res,
		Source:     source,
		Target:     target,
		PrimaryKey: []string{"id"},
		SourceName: "orders_csv",
		TargetName: "orders_db",
	}
}

// summaryValues reads the Summary sheet into a metric -> value map.
func summaryValues(t *testing.T, f *excelize.File) map[string]string {
	t.Helper()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)

	values := make(map[string]string)
	for _, row := range rows[1:] {
		if len(row) >= 2 {
			values[row[0]] = row[1]
		} else if len(row) == 1 {
			values[row[0]] = ""
		}
	}
	return values
}

// TestWriter_Write_Excel tests the workbook end to end: sheet set, summary
// metrics, and the record views.
func TestWriter_Write_Excel(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter(t, Options{Dir: dir})
	in := sampleInput(t)

	artifacts, err := w.Write(context.Background(), in, FormatExcel)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	wantPath := filepath.Join(dir, "excel", "reconciliation_20240301_123045.xlsx")
	assert.Equal(t, wantPath, artifacts[0].Path)
	assert.Equal(t, "run-fixed", artifacts[0].RunID)
	assert.Empty(t, artifacts[0].Object)

	f, err := excelize.OpenFile(wantPath)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{
		"Summary", "Matched_Records", "Mismatched_Records", "Missing_in_Target", "Extra_in_Target",
	}, f.GetSheetList())

	summary := summaryValues(t, f)
	assert.Equal(t, "orders_csv", summary["Source Name"])
	assert.Equal(t, "orders_db", summary["Target Name"])
	assert.Equal(t, "4", summary["Total Source Records"])
	assert.Equal(t, "4", summary["Total Target Records"])
	assert.Equal(t, "2", summary["Matched Records"])
	assert.Equal(t, "1", summary["Mismatched Records"])
	assert.Equal(t, "1", summary["Missing Records"])
	assert.Equal(t, "1", summary["Extra Records"])
	assert.Equal(t, "FAILED", summary["Overall Status"])
	assert.Equal(t, "id", summary["Primary Keys"])
	assert.Equal(t, "2024-03-01T12:30:45Z", summary["Execution Time"])

	matched, err := f.GetRows("Matched_Records")
	require.NoError(t, err)
	require.Len(t, matched, 3, "header plus the two matched rows")
	assert.Equal(t, []string{"id", "region", "amount"}, matched[0])
	assert.Equal(t, "1", matched[1][0])
	assert.Equal(t, "3", matched[2][0])

	mismatched, err := f.GetRows("Mismatched_Records")
	require.NoError(t, err)
	require.Len(t, mismatched, 2)
	assert.Equal(t, []string{"Primary_Key", "Column", "Source_Value", "Target_Value"}, mismatched[0])
	assert.Equal(t, []string{"(2)", "amount", "20", "99"}, mismatched[1])

	missing, err := f.GetRows("Missing_in_Target")
	require.NoError(t, err)
	require.Len(t, missing, 2)
	assert.Equal(t, "4", missing[1][0])

	extra, err := f.GetRows("Extra_in_Target")
	require.NoError(t, err)
	require.Len(t, extra, 2)
	assert.Equal(t, "5", extra[1][0])
}

// TestWriter_Write_Excel_CleanRun tests that a fully matched run only
// carries the summary and matched sheets.
func TestWriter_Write_Excel_CleanRun(t *testing.T) {
	ds, err := dataset.New([]string{"id"}, []dataset.Row{{"id": int64(1)}})
	require.NoError(t, err)

	eng, err := engine.New(zap.NewNop(), engine.DefaultOptions())
	require.NoError(t, err)
	res, err := eng.Reconcile(context.Background(), ds, ds, []string{"id"})
	require.NoError(t, err)

	w := newTestWriter(t, Options{Dir: t.TempDir()})
	artifacts, err := w.Write(context.Background(), Input{
		Result: res, Source: ds, Target: ds, PrimaryKey: []string{"id"},
	}, FormatExcel)
	require.NoError(t, err)

	f, err := excelize.OpenFile(artifacts[0].Path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Matched_Records"}, f.GetSheetList())

	summary := summaryValues(t, f)
	assert.Equal(t, "Source", summary["Source Name"], "side names default")
	assert.Equal(t, "PASSED", summary["Overall Status"])
}

// TestWriter_Write_CSV tests the one-record summary artifact.
func TestWriter_Write_CSV(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter(t, Options{Dir: dir, Prefix: "nightly"})
	in := sampleInput(t)

	artifacts, err := w.Write(context.Background(), in, FormatCSV)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	wantPath := filepath.Join(dir, "csv", "nightly_20240301_123045.csv")
	assert.Equal(t, wantPath, artifacts[0].Path)

	raw, err := os.ReadFile(wantPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"matched_records,mismatched_records,missing_records,extra_records,"+
			"total_source_records,total_target_records,status,"+
			"mismatch_count,missing_count,extra_count,"+
			"source_name,target_name,execution_timestamp",
		lines[0])
	assert.Equal(t, "2,1,1,1,4,4,FAILED,1,1,1,orders_csv,orders_db,2024-03-01T12:30:45Z", lines[1])
}

// TestWriter_Write_SharedRunID tests that both artifacts of one call carry
// the same run id.
func TestWriter_Write_SharedRunID(t *testing.T) {
	w := newTestWriter(t, Options{Dir: t.TempDir()})
	in := sampleInput(t)

	artifacts, err := w.Write(context.Background(), in, FormatExcel, FormatCSV)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	assert.Equal(t, artifacts[0].RunID, artifacts[1].RunID)
	assert.Equal(t, FormatExcel, artifacts[0].Format)
	assert.Equal(t, FormatCSV, artifacts[1].Format)
}

// TestWriter_Write_Errors tests the input guards.
func TestWriter_Write_Errors(t *testing.T) {
	w := newTestWriter(t, Options{Dir: t.TempDir()})
	in := sampleInput(t)

	_, err := w.Write(context.Background(), Input{}, FormatCSV)
	assert.ErrorContains(t, err, "nil result")

	_, err = w.Write(context.Background(), in)
	assert.ErrorContains(t, err, "no formats")

	_, err = w.Write(context.Background(), in, Format("pdf"))
	assert.ErrorContains(t, err, "unsupported format")

	noSource := in
	noSource.Source = nil
	_, err = w.Write(context.Background(), noSource, FormatExcel)
	assert.ErrorContains(t, err, "requires both datasets")
}

// TestParseFormat tests the closed format set.
func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, FormatExcel, got)

	got, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, got)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

// TestWriter_Write_Upload tests that enabling upload pushes the artifact
// into the bucket and records the object key.
func TestWriter_Write_Upload(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "recon").Return(true, nil)
	store.On("PutObject", mock.Anything, "recon", "reports/csv/reconciliation_20240301_123045.csv",
		mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "text/csv"}).
		Return(minio.UploadInfo{}, nil)

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon", Upload: true})
	artifacts, err := w.Write(context.Background(), sampleInput(t), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "reports/csv/reconciliation_20240301_123045.csv", artifacts[0].Object)
	store.AssertExpectations(t)
}

// TestWriter_Write_UploadCreatesBucket tests the first-use bucket setup.
func TestWriter_Write_UploadCreatesBucket(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "recon").Return(false, nil)
	store.On("MakeBucket", mock.Anything, "recon", minio.MakeBucketOptions{}).Return(nil)
	store.On("PutObject", mock.Anything, "recon", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon", Upload: true})
	_, err := w.Write(context.Background(), sampleInput(t), FormatCSV)
	require.NoError(t, err)

	store.AssertExpectations(t)
}

// TestWriter_Write_UploadRollback tests that a failed upload removes the
// objects the run already pushed.
func TestWriter_Write_UploadRollback(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "recon").Return(true, nil)
	store.On("PutObject", mock.Anything, "recon", "reports/excel/reconciliation_20240301_123045.xlsx",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	store.On("PutObject", mock.Anything, "recon", "reports/csv/reconciliation_20240301_123045.csv",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)
	store.On("RemoveObject", mock.Anything, "recon", "reports/excel/reconciliation_20240301_123045.xlsx",
		minio.RemoveObjectOptions{}).Return(nil)

	w := newTestWriter(t, Options{Dir: t.TempDir(), Store: store, Bucket: "recon", Upload: true})
	_, err := w.Write(context.Background(), sampleInput(t), FormatExcel, FormatCSV)
	require.Error(t, err)

	store.AssertExpectations(t)
}
