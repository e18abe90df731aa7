// internal/cli/validate.go
package neuroscore

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/neuroscore/internal/registry"
)

var successfulResult = color.New(color.FgGreen).SprintFunc()
var failedResult = color.New(color.FgRed).SprintFunc()

var validateOpts struct {
	scoreColumn string
	scoreType   string
	zColumn     string
	pctColumn   string
}

// validateCmd implements 'validate', which checks the active registry,
// hierarchy preset, and optionally a dataset without producing output files.
var validateCmd = &cobra.Command{
	Use:   "validate [dataset]",
	Short: "Validate the registry, hierarchy preset, and optionally a dataset",
	Long:  `The 'validate' command checks that the active registry file passes schema validation, that the active hierarchy preset is well-formed, and, when a dataset is given, that it loads and aggregates cleanly.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := 0

		if path := RegistryPath(); path != "" {
			data, err := os.ReadFile(path)
			if err == nil {
				err = registry.ValidateJSON(data)
			}
			failures += reportCheck(fmt.Sprintf("registry %s", path), err)
		} else {
			fmt.Printf("%s registry: using built-in entries\n", successfulResult("ok"))
		}

		if _, err := loadResolver(); err != nil {
			failures += reportCheck("registry entries", err)
		}

		spec, err := resolveHierarchy()
		failures += reportCheck(fmt.Sprintf("hierarchy %q", HierarchyName()), err)

		if len(args) == 1 && err == nil {
			opts, optErr := scoreOptions(validateOpts.scoreColumn, validateOpts.scoreType, validateOpts.zColumn, validateOpts.pctColumn)
			if optErr != nil {
				return optErr
			}
			_, _, aggErr := aggregateDataset(args[0], opts)
			failures += reportCheck(fmt.Sprintf("dataset %s against %s", args[0], spec.Name), aggErr)
		}

		if failures > 0 {
			return fmt.Errorf("%d validation check(s) failed", failures)
		}
		return nil
	},
}

// reportCheck prints a pass/fail line and returns 1 on failure.
func reportCheck(subject string, err error) int {
	if err != nil {
		fmt.Printf("%s %s: %v\n", failedResult("fail"), subject, err)
		return 1
	}
	fmt.Printf("%s %s\n", successfulResult("ok"), subject)
	return 0
}

func init() {
	validateCmd.Flags().StringVar(&validateOpts.scoreColumn, "score-column", "", "raw score column converted via --score-type")
	validateCmd.Flags().StringVar(&validateOpts.scoreType, "score-type", "", "score type for --score-column (standard_score, scaled_score, t_score, z_score, percentile)")
	validateCmd.Flags().StringVar(&validateOpts.zColumn, "z-column", "", "z-score column name (default z_score)")
	validateCmd.Flags().StringVar(&validateOpts.pctColumn, "percentile-column", "", "percentile column name (default percentile)")
	rootCmd.AddCommand(validateCmd)
}
