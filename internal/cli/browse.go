// internal/cli/browse.go
package neuroscore

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/neuroscore/internal/tui"
)

var browseOpts struct {
	scoreColumn string
	scoreType   string
	zColumn     string
	pctColumn   string
}

// browseCmd implements 'browse', the interactive terminal drilldown over an
// aggregated dataset.
var browseCmd = &cobra.Command{
	Use:   "browse <dataset>",
	Short: "Browse an aggregated dataset interactively",
	Long:  `The 'browse' command aggregates a scored dataset along the active hierarchy and opens an interactive terminal browser. Enter drills into a group, esc backs out.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := scoreOptions(browseOpts.scoreColumn, browseOpts.scoreType, browseOpts.zColumn, browseOpts.pctColumn)
		if err != nil {
			return err
		}
		nodes, spec, err := aggregateDataset(args[0], opts)
		if err != nil {
			return err
		}
		return tui.StartBrowser("Score Browser ("+spec.Name+")", nodes)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseOpts.scoreColumn, "score-column", "", "raw score column converted via --score-type")
	browseCmd.Flags().StringVar(&browseOpts.scoreType, "score-type", "", "score type for --score-column (standard_score, scaled_score, t_score, z_score, percentile)")
	browseCmd.Flags().StringVar(&browseOpts.zColumn, "z-column", "", "z-score column name (default z_score)")
	browseCmd.Flags().StringVar(&browseOpts.pctColumn, "percentile-column", "", "percentile column name (default percentile)")
	rootCmd.AddCommand(browseCmd)
}
