package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"data-recon/core/dataset"
	"data-recon/core/engine"

	"go.uber.org/zap"
)

func main() {
	logg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Build synthetic datasets with known drift:
	// id 2 differs in amount by 0.005, id 3 differs by 2.0,
	// id 4 only exists in source, id 5 only in target.
	columns := []string{"id", "region", "amount"}
	src, err := dataset.New(columns, []dataset.Row{
		{"id": int64(1), "region": "emea", "amount": 10.5},
		{"id": int64(2), "region": "apac", "amount": 20.0},
		{"id": int64(3), "region": "amer", "amount": 30.0},
		{"id": int64(4), "region": "emea", "amount": 40.0},
	})
	if err != nil {
		log.Fatal(err)
	}
	tgt, err := dataset.New(columns, []dataset.Row{
		{"id": int64(1), "region": "EMEA", "amount": 10.5},
		{"id": int64(2), "region": "apac", "amount": 20.005},
		{"id": int64(3), "region": "amer", "amount": 32.0},
		{"id": int64(5), "region": "apac", "amount": 50.0},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Test 1: Default options. Expect id 1 and 2 matched (case fold +
	// tolerance 0.01), id 3 mismatched, one missing, one extra.
	fmt.Println("=== TEST 1: Default Options ===")
	eng, err := engine.New(logg, engine.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	result, err := eng.Reconcile(ctx, src, tgt, []string{"id"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Matched: %d, Mismatched: %d, Missing: %d, Extra: %d\n",
		result.Matched, result.Mismatched, result.Missing, result.Extra)
	for _, d := range result.Details {
		for _, col := range d.Columns {
			fmt.Printf("MISMATCH key=%s column=%s source=%v target=%v\n",
				d.Key.String(), col.Column, col.Source, col.Target)
		}
	}

	// Test 2: Wide tolerance. The 2.0 amount drift on id 3 should now pass.
	fmt.Println("\n=== TEST 2: Tolerance 5.0 ===")
	opts := engine.DefaultOptions()
	opts.Comparison.NumericTolerance = 5.0
	eng, err = engine.New(logg, opts)
	if err != nil {
		log.Fatal(err)
	}
	wide, err := eng.Reconcile(ctx, src, tgt, []string{"id"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Matched: %d, Mismatched: %d\n", wide.Matched, wide.Mismatched)
	if wide.Mismatched != 0 {
		fmt.Println("UNEXPECTED: mismatches survived the wide tolerance")
	}

	// Test 3: Case sensitivity. EMEA vs emea on id 1 should now mismatch.
	fmt.Println("\n=== TEST 3: Case Sensitive ===")
	opts = engine.DefaultOptions()
	opts.Comparison.CaseSensitive = true
	eng, err = engine.New(logg, opts)
	if err != nil {
		log.Fatal(err)
	}
	sensitive, err := eng.Reconcile(ctx, src, tgt, []string{"id"})
	if err != nil {
		log.Fatal(err)
	}
	found := false
	for _, d := range sensitive.Details {
		for _, col := range d.Columns {
			if col.Column == "region" {
				fmt.Printf("FOUND region mismatch: key=%s source=%v target=%v\n",
					d.Key.String(), col.Source, col.Target)
				found = true
			}
		}
	}
	if !found {
		fmt.Println("NOT FOUND: expected a region mismatch under case sensitivity")
	}

	// Test 4: Single-row comparison without key context.
	fmt.Println("\n=== TEST 4: Row Comparison ===")
	eng, err = engine.New(logg, engine.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	cmp := eng.CompareRows(
		dataset.Row{"region": "emea", "amount": 10.5},
		dataset.Row{"region": "EMEA", "amount": 10.505},
	)
	fmt.Printf("Row status: %s, matched columns: %v\n", cmp.Status, cmp.MatchedColumns)

	// Save detailed output
	output := map[string]interface{}{
		"default":        result,
		"wide_tolerance": wide,
		"case_sensitive": sensitive,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_compare.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_compare.json for details.")
}
