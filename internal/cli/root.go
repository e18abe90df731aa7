// internal/cli/root.go
package neuroscore

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/neuroscore/internal/appconfig"
	"github.com/mwiater/neuroscore/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "neuroscore",
	Short: "neuroscore — score aggregation and reporting for neuropsychological batteries",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for flag, key := range map[string]string{"hierarchy": "hierarchy", "age": "ageGroup", "chartType": "chartType"} {
			if !cmd.Flags().Changed(flag) {
				_ = cmd.Flags().Set(flag, viper.GetString(key))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		currentConfig = &cfg

		return logging.Init(cfg.LogFilePath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (defaults to your existing path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.json", "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("hierarchy", "clinical", "hierarchy preset (clinical, pass_model, rating_scale, or a preset from --presets)")
	rootCmd.PersistentFlags().String("age", "adult", "age group for domain resolution (adult or child)")
	rootCmd.PersistentFlags().String("chartType", "column", "drilldown chart type for reports (column or bar)")
	rootCmd.PersistentFlags().String("registry", "", "path to a domain registry JSON file (built-in registry when empty)")
	rootCmd.PersistentFlags().String("presets", "", "path to a YAML file of extra hierarchy presets")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("hierarchy", rootCmd.PersistentFlags().Lookup("hierarchy"))
	_ = viper.BindPFlag("ageGroup", rootCmd.PersistentFlags().Lookup("age"))
	_ = viper.BindPFlag("chartType", rootCmd.PersistentFlags().Lookup("chartType"))
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
	_ = viper.BindPFlag("presets", rootCmd.PersistentFlags().Lookup("presets"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("hierarchy", "clinical")
	viper.SetDefault("ageGroup", "adult")
	viper.SetDefault("chartType", "column")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// Helper accessors (reflect merged Viper state)
func DebugEnabled() bool { return viper.GetBool("debug") }
func HierarchyName() string { return viper.GetString("hierarchy") }
func AgeGroupName() string { return viper.GetString("ageGroup") }
func ChartTypeName() string { return viper.GetString("chartType") }
func RegistryPath() string { return viper.GetString("registry") }
func PresetsPath() string { return viper.GetString("presets") }
