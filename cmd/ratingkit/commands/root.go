package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ratingkit",
	Short: "Credit rating translation toolkit",
	Long: `ratingkit translates credit ratings between agency symbols, numeric
rating scores and WARFs, consolidates ratings across agencies, and
aggregates portfolio-level figures.

Usage:
  go run ./cmd/ratingkit [command]

Examples:
  go run ./cmd/ratingkit convert --from ratings --to scores < ratings.csv
  go run ./cmd/ratingkit consolidate --mode worst --output "S&P" < ratings.csv
  go run ./cmd/ratingkit portfolio --values warf_moody --weights weight < portfolio.csv
  go run ./cmd/ratingkit api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
