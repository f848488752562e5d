package main

import (
	"context"
	"fmt"
	"intent-lab/domain"
	"intent-lab/nlp"
	"intent-lab/repositories"
	"intent-lab/services"
	"intent-lab/storage"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run predicts every pattern of the dataset with the saved model, prints
// the report and the regressions since the previous run.
func run() error {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := storage.LoadDataset(config.DatasetPath)
	if err != nil {
		return err
	}
	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		return fmt.Errorf("lexicon loading failed: %w", err)
	}
	pipeline, err := storage.NewArtifactStore(config.ModelPath, log).Load(normalizer)
	if err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	repository := repositories.NewEvaluationRepository(db, log)
	service := services.NewEvaluationService(log, pipeline, repository, pipeline.Metadata().RunID)

	report, err := service.Evaluate(ctx, dataset)
	if err != nil {
		return err
	}
	regressions, err := service.Record(report)
	if err != nil {
		return err
	}

	printReport(report, regressions)
	return nil
}

func printReport(report domain.EvaluationReport, regressions []domain.Mismatch) {
	fmt.Println()
	color.Bold.Println("--- Test Report ---")
	fmt.Printf("Accuracy: %.2f%% (%d / %d correct)\n", report.Accuracy(), report.Correct, report.Total)
	fmt.Println()

	perTag := newTable([]string{"Tag", "Correct", "Total"})
	for _, score := range report.PerTag {
		perTag.Append([]string{score.Tag, fmt.Sprint(score.Correct), fmt.Sprint(score.Total)})
	}
	perTag.Render()

	if len(report.Mismatches) == 0 {
		fmt.Println()
		color.Green.Println("All known patterns passed!")
	} else {
		fmt.Println()
		color.Yellow.Println("--- Mismatches Found ---")
		mismatches := newTable([]string{"Pattern", "Expected", "Got"})
		for _, m := range report.Mismatches {
			mismatches.Append([]string{m.Pattern, m.Expected, m.Predicted})
		}
		mismatches.Render()
	}

	if len(regressions) > 0 {
		fmt.Println()
		color.Red.Printf("--- %d regression(s) since previous evaluation ---\n", len(regressions))
		for _, m := range regressions {
			color.Red.Printf("  %q expected %s, got %s\n", m.Pattern, m.Expected, m.Predicted)
		}
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
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
	return table
}
