package runstore

import (
	"errors"
	"fmt"

	"github.com/paystackoss/orgpulse/internal/parquet"
)

// ExecuteExport performs the actual export of run history to Parquet files.
func ExecuteExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run history is disabled; configure a history backend first")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total action records: %d\n", status.TableSizes[runActionsTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	actions, err := store.GetAllActions()
	if err != nil {
		return fmt.Errorf("failed to retrieve actions: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetActions := parquet.ConvertActionRecords(actions)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	actionsFile := outputFile + ".actions.parquet"
	if err := parquet.WriteRunActionsParquet(parquetActions, actionsFile); err != nil {
		return fmt.Errorf("failed to write actions: %w", err)
	}
	fmt.Printf("Exported %d action records to: %s\n", len(parquetActions), actionsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
