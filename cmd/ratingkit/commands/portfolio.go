package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantfold/ratingkit/internal/portfolio"
	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/internal/tabular"
	"github.com/quantfold/ratingkit/internal/translate"
)

// portfolioCmd represents the portfolio command
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Aggregate portfolio-level scores or WARFs",
	Long: `Computes the weighted average of a value column. Missing values are
skipped and the remaining weights renormalized. With --warf the average
is treated as a portfolio WARF: the WARF buffer and the equivalent
rating are reported as well.

Example:
  go run ./cmd/ratingkit portfolio --values warf_moody --weights weight --warf --in portfolio.csv`,
	RunE: runPortfolio,
}

var (
	portfolioValuesCol  string
	portfolioWeightsCol string
	portfolioAsWARF     bool
	portfolioProvider   string
	portfolioIn         string
)

func init() {
	rootCmd.AddCommand(portfolioCmd)

	// Flags
	portfolioCmd.Flags().StringVar(&portfolioValuesCol, "values", "", "name of the value column (required)")
	portfolioCmd.Flags().StringVar(&portfolioWeightsCol, "weights", "weight", "name of the weight column")
	portfolioCmd.Flags().BoolVar(&portfolioAsWARF, "warf", false, "treat values as WARFs and report buffer and rating")
	portfolioCmd.Flags().StringVar(&portfolioProvider, "provider", "", "scale for the equivalent rating (default from config)")
	portfolioCmd.Flags().StringVar(&portfolioIn, "in", "", "input CSV file (default: stdin)")
	portfolioCmd.MarkFlagRequired("values")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(portfolioIn)
	if err != nil {
		return err
	}
	defer closeIn()

	cols, err := tabular.ReadColumns(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	values, err := columnByName(cols, portfolioValuesCol)
	if err != nil {
		return err
	}
	weightsCol, err := columnByName(cols, portfolioWeightsCol)
	if err != nil {
		return err
	}

	valueCells, err := tabular.ParseFloats(values)
	if err != nil {
		return err
	}
	weightCells, err := tabular.ParseFloats(weightsCol)
	if err != nil {
		return err
	}
	weights := make([]float64, weightCells.Len())
	for i, cell := range weightCells.Cells {
		if !cell.Valid {
			return fmt.Errorf("column %q row %d: weight is missing", portfolioWeightsCol, i)
		}
		weights[i] = cell.Value
	}

	avg, err := portfolio.WeightedAverage(valueCells.Cells, weights)
	if err != nil {
		return err
	}
	fmt.Printf("weighted average: %g\n", avg)

	if !portfolioAsWARF {
		return nil
	}

	buffer, err := portfolio.WARFBuffer(avg)
	if err != nil {
		return err
	}
	fmt.Printf("WARF buffer:      %g\n", buffer)

	providerName := portfolioProvider
	if providerName == "" {
		providerName = cfg.OutputProvider
	}
	provider, err := scale.ParseProvider(providerName, scale.LongTerm)
	if err != nil {
		return err
	}
	fmt.Printf("rating (%s):     %s\n", provider, translate.WARFToRating(avg, provider))

	return nil
}

func columnByName(cols []series.Column[string], name string) (series.Column[string], error) {
	for _, col := range cols {
		if col.Name == name {
			return col, nil
		}
	}
	return series.Column[string]{}, fmt.Errorf("column %q not found in input", name)
}
