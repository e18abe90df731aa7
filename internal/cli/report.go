// internal/cli/report.go
package neuroscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/neuroscore/internal/appconfig"
	"github.com/mwiater/neuroscore/internal/drilldown"
	"github.com/mwiater/neuroscore/internal/hierarchy"
	"github.com/mwiater/neuroscore/internal/logging"
	"github.com/mwiater/neuroscore/internal/registry"
	"github.com/mwiater/neuroscore/internal/report"
	"github.com/mwiater/neuroscore/internal/scoring"
	"github.com/mwiater/neuroscore/internal/util"
)

var reportOpts struct {
	out         string
	seriesJSON  string
	title       string
	domain      string
	scoreColumn string
	scoreType   string
	zColumn     string
	pctColumn   string
}

// reportCmd implements 'report', which aggregates a scored dataset and
// writes a standalone HTML drilldown dashboard.
var reportCmd = &cobra.Command{
	Use:   "report <dataset>",
	Short: "Generate an HTML drilldown report from a scored dataset",
	Long:  `The 'report' command loads a CSV or Parquet dataset of scored observations, aggregates it along the active hierarchy, and writes a standalone HTML report with a drilldown chart and band summary table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := scoreOptions(reportOpts.scoreColumn, reportOpts.scoreType, reportOpts.zColumn, reportOpts.pctColumn)
		if err != nil {
			return err
		}

		var resolved *registry.Resolved
		if reportOpts.domain != "" {
			resolver, err := loadResolver()
			if err != nil {
				return err
			}
			res, err := resolver.Resolve(reportOpts.domain, registry.AgeGroup(AgeGroupName()))
			if err != nil {
				return err
			}
			if err := checkDomainScoreType(res, opts.ScoreType); err != nil {
				return err
			}
			resolved = &res
			fmt.Printf("Domain %s resolved to phenotype %s (%s, section %d)\n",
				reportOpts.domain, res.EffectivePheno, res.DataSource, res.Section)
			logging.LogEvent("[REPORT] domain %s resolved to %s (%s section %d)",
				reportOpts.domain, res.EffectivePheno, res.DataSource, res.Section)
		}

		nodes, spec, err := aggregateDataset(args[0], opts)
		if err != nil {
			return err
		}

		chart := drilldown.Build(nodes)
		title := reportOpts.title
		if title == "" && resolved != nil {
			title = domainTitle(*resolved)
		}
		if title == "" {
			if cfg := GetConfig(); cfg != nil {
				title = cfg.ReportTitle
			}
		}
		if title == "" {
			title = "neuroscore: Score Report"
		}
		html, err := report.GenerateReport(title, chart, ChartTypeName(), levelLabels(spec))
		if err != nil {
			return err
		}

		outPath := reportOpts.out
		if outPath == "" {
			reportDir := appconfig.Config{}.ReportDirPath()
			if cfg := GetConfig(); cfg != nil {
				reportDir = cfg.ReportDirPath()
			}
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			outPath = filepath.Join(reportDir, base+".html")
		}
		if dir := filepath.Dir(outPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := util.WriteFile(outPath, []byte(html)); err != nil {
			return err
		}

		logging.LogEvent("[REPORT] wrote %s (%d top-level groups)", outPath, len(nodes))
		fmt.Printf("Report written to %s\n", outPath)

		if reportOpts.seriesJSON != "" {
			if err := writeSeriesJSON(reportOpts.seriesJSON, chart, ChartTypeName()); err != nil {
				return err
			}
			fmt.Printf("Series written to %s\n", reportOpts.seriesJSON)
		}
		return nil
	},
}

// checkDomainScoreType rejects a raw score conversion the resolved domain
// does not report on. No score type set, or none declared, passes.
func checkDomainScoreType(res registry.Resolved, st scoring.ScoreType) error {
	if st == "" || res.AllowsScoreType(st) {
		return nil
	}
	return fmt.Errorf("domain %q reports %v scores, not %s", res.Domains[0], res.ScoreTypes, st)
}

// domainTitle is the default report title for a resolved domain.
func domainTitle(res registry.Resolved) string {
	return fmt.Sprintf("%s (%s, section %d)", res.Domains[0], res.DataSource, res.Section)
}

// writeSeriesJSON saves the chart payloads alongside the HTML report so
// downstream tooling can re-render the series without reparsing the dataset.
func writeSeriesJSON(path string, chart drilldown.Chart, chartType string) error {
	payload := struct {
		Root      []drilldown.PointPayload  `json:"root"`
		Drilldown []drilldown.SeriesPayload `json:"drilldown"`
	}{
		Root:      chart.RootPayload(),
		Drilldown: chart.DrilldownPayload(chartType),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(path, data)
}

func levelLabels(spec hierarchy.Spec) []string {
	labels := make([]string, len(spec.Levels))
	for i, level := range spec.Levels {
		labels[i] = level.Label
	}
	return labels
}

func init() {
	reportCmd.Flags().StringVarP(&reportOpts.out, "out", "o", "", "output path for the HTML report (defaults to <reportDir>/<dataset>.html)")
	reportCmd.Flags().StringVar(&reportOpts.seriesJSON, "series-json", "", "also write the root and drilldown series payloads as JSON")
	reportCmd.Flags().StringVar(&reportOpts.title, "title", "", "report title")
	reportCmd.Flags().StringVar(&reportOpts.domain, "domain", "", "clinical domain resolved through the registry; sets the default title and checks --score-type against the domain's expected scales")
	reportCmd.Flags().StringVar(&reportOpts.scoreColumn, "score-column", "", "raw score column converted via --score-type")
	reportCmd.Flags().StringVar(&reportOpts.scoreType, "score-type", "", "score type for --score-column (standard_score, scaled_score, t_score, z_score, percentile)")
	reportCmd.Flags().StringVar(&reportOpts.zColumn, "z-column", "", "z-score column name (default z_score)")
	reportCmd.Flags().StringVar(&reportOpts.pctColumn, "percentile-column", "", "percentile column name (default percentile)")
	rootCmd.AddCommand(reportCmd)
}
