package engine

import (
	"context"
	"sort"

	"data-recon/core/dataset"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs reconciliations with a fixed option set and an explicit
// logger handle.
type Engine struct {
	log  *zap.Logger
	opts Options
}

// New validates the options and returns an Engine. A nil logger is replaced
// with a no-op logger.
func New(log *zap.Logger, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log, opts: opts}, nil
}

// Reconcile compares source against target keyed by primaryKey and returns
// the aggregate Result. It owns every index and intermediate set it builds;
// nothing is shared across calls. The context is checked between batches so
// oversized comparisons can be abandoned.
func (e *Engine) Reconcile(ctx context.Context, source, target *dataset.Dataset, primaryKey []string) (*Result, error) {
	if source == nil || target == nil {
		return nil, &ConfigError{Field: "datasets", Message: "source and target must not be nil"}
	}
	if err := validatePrimaryKey(primaryKey); err != nil {
		return nil, err
	}

	e.log.Info("starting reconciliation",
		zap.Int("source_rows", source.Len()),
		zap.Int("target_rows", target.Len()),
		zap.Strings("primary_key", primaryKey),
	)

	// Both datasets are validated before any other work; either failure
	// aborts the call with no partial result.
	if err := validateKeys("source", source, primaryKey); err != nil {
		return nil, err
	}
	if err := validateKeys("target", target, primaryKey); err != nil {
		return nil, err
	}

	srcIdx, err := buildIndex("source", source, primaryKey)
	if err != nil {
		return nil, err
	}
	tgtIdx, err := buildIndex("target", target, primaryKey)
	if err != nil {
		return nil, err
	}

	parts := classify(srcIdx, tgtIdx)

	result := &Result{
		TotalSource: source.Len(),
		TotalTarget: target.Len(),
		Missing:     len(parts.missing),
		Extra:       len(parts.extra),
	}

	cols := comparableColumns(source, target, primaryKey, &e.opts.Comparison)

	matched, diffs, err := e.compareCommon(ctx, parts.common, srcIdx, tgtIdx, cols)
	if err != nil {
		return nil, err
	}
	result.Matched = matched
	result.Mismatched = len(diffs)

	// Candidate details are ordered by key before the cap applies so the
	// retained sample does not depend on worker scheduling.
	sort.Slice(diffs, func(i, j int) bool { return keyLess(diffs[i].Key, diffs[j].Key) })
	if detailCap := e.opts.Comparison.MismatchDetailCap; len(diffs) > detailCap {
		diffs = diffs[:detailCap]
		result.DetailsTruncated = true
	}
	if diffs == nil {
		diffs = []RowDiff{}
	}
	result.Details = diffs

	result.MissingKeys, result.MissingKeysTruncated = collectKeys(parts.missing, srcIdx, e.opts.Comparison.KeyListCap)
	result.ExtraKeys, result.ExtraKeysTruncated = collectKeys(parts.extra, tgtIdx, e.opts.Comparison.KeyListCap)

	result.Status = evaluateStatus(result, e.opts.Thresholds)

	e.log.Info("reconciliation complete",
		zap.Int("matched", result.Matched),
		zap.Int("mismatched", result.Mismatched),
		zap.Int("missing", result.Missing),
		zap.Int("extra", result.Extra),
		zap.String("status", string(result.Status)),
	)

	return result, nil
}

// compareCommon compares the common-key rows, sequentially or across a
// bounded worker pool. Each worker reads only its own key slice and writes
// only its own slot; the merge below is the single accumulation point.
func (e *Engine) compareCommon(ctx context.Context, common []string, srcIdx, tgtIdx map[string]entry, cols []string) (int, []RowDiff, error) {
	if len(common) == 0 {
		return 0, nil, ctx.Err()
	}

	workers := e.opts.Workers
	if workers > len(common) {
		workers = len(common)
	}
	if workers < 2 {
		return e.compareChunk(ctx, common, srcIdx, tgtIdx, cols)
	}

	type chunkResult struct {
		matched int
		diffs   []RowDiff
	}
	results := make([]chunkResult, workers)

	g, ctx := errgroup.WithContext(ctx)
	per := (len(common) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if end > len(common) {
			end = len(common)
		}
		if start >= end {
			break
		}
		slot := w
		part := common[start:end]
		g.Go(func() error {
			matched, diffs, err := e.compareChunk(ctx, part, srcIdx, tgtIdx, cols)
			if err != nil {
				return err
			}
			results[slot] = chunkResult{matched: matched, diffs: diffs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	var matched int
	var diffs []RowDiff
	for _, r := range results {
		matched += r.matched
		diffs = append(diffs, r.diffs...)
	}
	return matched, diffs, nil
}

// compareChunk walks one slice of common keys, checking for cancellation
// every batch.
func (e *Engine) compareChunk(ctx context.Context, keys []string, srcIdx, tgtIdx map[string]entry, cols []string) (int, []RowDiff, error) {
	matched := 0
	var diffs []RowDiff
	for i, ck := range keys {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, nil, err
			}
		}
		src := srcIdx[ck]
		tgt := tgtIdx[ck]
		if colDiffs := compareRow(src.row, tgt.row, cols, &e.opts.Comparison); len(colDiffs) > 0 {
			diffs = append(diffs, RowDiff{Key: src.key, Columns: colDiffs})
		} else {
			matched++
		}
	}
	return matched, diffs, nil
}

// collectKeys materializes a sorted, capped key list from canonical keys.
func collectKeys(cks []string, idx map[string]entry, keyCap int) ([]Key, bool) {
	truncated := false
	n := len(cks)
	if n > keyCap {
		n = keyCap
		truncated = true
	}
	keys := make([]Key, 0, n)
	for _, ck := range cks[:n] {
		keys = append(keys, idx[ck].key)
	}
	return keys, truncated
}
