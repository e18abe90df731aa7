// internal/cli/show_config.go
package neuroscore

import (
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/neuroscore/internal/appconfig"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration (flags over file over defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		if DebugEnabled() && cfg != nil {
			pp.Println(*cfg)
			return
		}
		appconfig.ShowConfig(os.Stdout, viper.ConfigFileUsed(), cfg, appconfig.Config{})
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}

// showBandsCmd implements 'show bands', which prints the percentile
// classification table.
var showBandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the percentile classification bands",
	Run: func(cmd *cobra.Command, args []string) {
		printBands(os.Stdout)
	},
}

func init() {
	showCmd.AddCommand(showBandsCmd)
}
