package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfold/ratingkit/internal/scale"
	"github.com/quantfold/ratingkit/internal/series"
	"github.com/quantfold/ratingkit/internal/tabular"
	"github.com/quantfold/ratingkit/internal/translate"
	"github.com/quantfold/ratingkit/pkg/config"
	"github.com/quantfold/ratingkit/pkg/logger"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Translate rating columns between representations",
	Long: `Translates CSV columns between agency rating symbols, numeric rating
scores and WARFs. The provider is taken from the --provider flag or
inferred from each column's header.

Representations:
  ratings - agency symbols such as "AA-" or "Baa1"
  scores  - numeric rating scores (1 to 22)
  warf    - weighted average rating factors (1 to 10000)

Example:
  go run ./cmd/ratingkit convert --from ratings --to scores --in ratings.csv
  go run ./cmd/ratingkit convert --from warf --to ratings --provider "S&P"`,
	RunE: runConvert,
}

var (
	convertFrom     string
	convertTo       string
	convertProvider string
	convertTenor    string
	convertStrategy string
	convertIn       string
	convertOut      string
)

func init() {
	rootCmd.AddCommand(convertCmd)

	// Flags
	convertCmd.Flags().StringVar(&convertFrom, "from", "ratings", "input representation (ratings|scores|warf)")
	convertCmd.Flags().StringVar(&convertTo, "to", "scores", "output representation (ratings|scores|warf)")
	convertCmd.Flags().StringVar(&convertProvider, "provider", "", "rating provider (default: infer from column headers)")
	convertCmd.Flags().StringVar(&convertTenor, "tenor", "long-term", "rating tenor (long-term|short-term)")
	convertCmd.Flags().StringVar(&convertStrategy, "strategy", "", "short-term strategy (best|base|worst, default from config)")
	convertCmd.Flags().StringVar(&convertIn, "in", "", "input CSV file (default: stdin)")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output CSV file (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := buildBatch(cfg, log, convertProvider, convertTenor, convertStrategy)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(convertIn)
	if err != nil {
		return err
	}
	defer closeIn()

	cols, err := tabular.ReadColumns(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	outCols := make([]series.Column[string], len(cols))
	for i, col := range cols {
		outCols[i], err = convertColumn(batch, col)
		if err != nil {
			return err
		}
	}

	out, closeOut, err := openOutput(convertOut)
	if err != nil {
		return err
	}

	if err := tabular.WriteColumns(out, outCols); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

// convertColumn applies the from/to pair to one column
func convertColumn(batch translate.Batch, col series.Column[string]) (series.Column[string], error) {
	switch convertFrom + "->" + convertTo {
	case "ratings->scores":
		scores, err := batch.ScoresFromRatings(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		return tabular.FormatFloats(scores), nil

	case "ratings->warf":
		warf, err := batch.WARFFromRatings(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		return tabular.FormatFloats(warf), nil

	case "scores->ratings":
		scores, err := tabular.ParseFloats(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		return batch.RatingsFromScores(scores)

	case "scores->warf":
		scores, err := tabular.ParseFloats(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		warf, err := batch.WARFFromScores(scores)
		if err != nil {
			return series.Column[string]{}, err
		}
		return tabular.FormatFloats(warf), nil

	case "warf->ratings":
		warf, err := tabular.ParseFloats(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		return batch.RatingsFromWARF(warf)

	case "warf->scores":
		warf, err := tabular.ParseFloats(col)
		if err != nil {
			return series.Column[string]{}, err
		}
		scores, err := batch.ScoresFromWARF(warf)
		if err != nil {
			return series.Column[string]{}, err
		}
		return tabular.FormatFloats(scores), nil

	default:
		return series.Column[string]{}, fmt.Errorf("unsupported conversion %q to %q", convertFrom, convertTo)
	}
}

// Shared command helpers

// setup loads the configuration and builds the logger, honoring --verbose
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}

// buildBatch settles the column translator from flags and config defaults
func buildBatch(cfg *config.Config, log *logger.Logger, provider, tenorName, strategyName string) (translate.Batch, error) {
	tenor, err := scale.ParseTenor(tenorName)
	if err != nil {
		return translate.Batch{}, err
	}

	if strategyName == "" {
		strategyName = cfg.Strategy
	}
	strategy, err := scale.ParseStrategy(strategyName)
	if err != nil {
		return translate.Batch{}, err
	}

	batch := translate.Batch{Tenor: tenor, Strategy: strategy, Log: log}
	if provider == "" {
		provider = cfg.DefaultProvider
	}
	if provider != "" {
		batch.Provider, err = scale.ParseProvider(provider, tenor)
		if err != nil {
			return translate.Batch{}, err
		}
	}
	return batch, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
