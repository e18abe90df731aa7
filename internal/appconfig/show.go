package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	active := fallback
	if cfg != nil {
		active = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Hierarchy:  %s\n", active.HierarchyName())
	fmt.Fprintf(out, "  Age Group:  %s\n", active.AgeGroupName())
	fmt.Fprintf(out, "  Chart Type: %s\n", active.ChartTypeName())
	fmt.Fprintf(out, "  Report Dir: %s\n", active.ReportDirPath())
	fmt.Fprintf(out, "  Log File:   %s\n", active.LogFilePath())
	fmt.Fprintf(out, "  Debug:      %v\n", active.Debug)
	if active.Registry != "" {
		fmt.Fprintf(out, "  Registry:   %s\n", active.Registry)
	}
	if active.Presets != "" {
		fmt.Fprintf(out, "  Presets:    %s\n", active.Presets)
	}
}
