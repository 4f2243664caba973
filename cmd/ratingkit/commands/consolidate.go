package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantfold/ratingkit/internal/consolidate"
	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/internal/tabular"
)

// consolidateCmd represents the consolidate command
var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Reduce several agencies' rating columns to one",
	Long: `Reads aligned rating columns (one agency per CSV column, provider
inferred from each header), ranks the ratings of each row and keeps the
pick, re-expressed on the output provider's scale.

Modes:
  best        - the lowest rating score of the row
  second_best - the second lowest, missing when fewer than two rated
  worst       - the highest rating score of the row

Example:
  go run ./cmd/ratingkit consolidate --mode worst --output "S&P" --in ratings.csv`,
	RunE: runConsolidate,
}

var (
	consolidateMode     string
	consolidateOutput   string
	consolidateTenor    string
	consolidateStrategy string
	consolidateIn       string
	consolidateOut      string
)

func init() {
	rootCmd.AddCommand(consolidateCmd)

	// Flags
	consolidateCmd.Flags().StringVar(&consolidateMode, "mode", "worst", "consolidation mode (best|second_best|worst)")
	consolidateCmd.Flags().StringVar(&consolidateOutput, "output", "", "output provider scale (default from config)")
	consolidateCmd.Flags().StringVar(&consolidateTenor, "tenor", "long-term", "rating tenor (long-term|short-term)")
	consolidateCmd.Flags().StringVar(&consolidateStrategy, "strategy", "", "short-term strategy (best|base|worst, default from config)")
	consolidateCmd.Flags().StringVar(&consolidateIn, "in", "", "input CSV file (default: stdin)")
	consolidateCmd.Flags().StringVar(&consolidateOut, "out", "", "output CSV file (default: stdout)")
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	mode, err := consolidate.ParseMode(consolidateMode)
	if err != nil {
		return err
	}

	tenor, err := scale.ParseTenor(consolidateTenor)
	if err != nil {
		return err
	}

	strategyName := consolidateStrategy
	if strategyName == "" {
		strategyName = cfg.Strategy
	}
	strategy, err := scale.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	outputName := consolidateOutput
	if outputName == "" {
		outputName = cfg.OutputProvider
	}
	output, err := scale.ParseProvider(outputName, tenor)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(consolidateIn)
	if err != nil {
		return err
	}
	defer closeIn()

	cols, err := tabular.ReadColumns(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result, err := consolidate.Columns(cols, nil, consolidate.Options{
		Mode:     mode,
		Output:   output,
		Tenor:    tenor,
		Strategy: strategy,
	})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(consolidateOut)
	if err != nil {
		return err
	}

	if err := tabular.WriteColumns(out, []series.Column[string]{result}); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
