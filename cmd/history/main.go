package main

import (
	"flag"
	"fmt"
	"intent-lab/repositories"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Lists the stored evaluation reports, most recent first.
func main() {
	dbPath := flag.String("db", "data/evaluations", "Path to badger DB")
	limit := flag.Int("limit", 20, "Maximum number of reports to show")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewEvaluationRepository(db, logs.GetLoggerFromString("WARN"))
	reports, err := repository.List(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Report", "Model run", "Accuracy", "Correct", "Mismatches"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, report := range reports {
		table.Append([]string{
			report.At.Format("2006-01-02 15:04:05"),
			shortID(report.ID.String()),
			shortID(report.ModelRunID.String()),
			fmt.Sprintf("%.2f%%", report.Accuracy()),
			fmt.Sprintf("%d/%d", report.Correct, report.Total),
			fmt.Sprint(len(report.Mismatches)),
		})
	}
	table.Render()
}

// First 8 characters are enough to tell runs apart.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a log that needs truncating, which a
		// read-only open refuses to do.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
