// internal/dataset/parquet.go
package dataset

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/mwiater/neuroscore/internal/aggregate"
	"github.com/mwiater/neuroscore/internal/logging"
)

// parquetRow is the flat row schema scored exports use. Label columns are
// optional strings so files may carry any subset of hierarchy levels; score
// columns are optional doubles so missing scores survive the round trip.
type parquetRow struct {
	Pass       *string  `parquet:"pass,optional"`
	Domain     *string  `parquet:"domain,optional"`
	Subdomain  *string  `parquet:"subdomain,optional"`
	Narrow     *string  `parquet:"narrow,optional"`
	Scale      *string  `parquet:"scale,optional"`
	Z          *float64 `parquet:"z_score,optional"`
	Percentile *float64 `parquet:"percentile,optional"`
}

// labelColumns are the hierarchy level columns the row schema carries.
var labelColumns = []string{"pass", "domain", "subdomain", "narrow", "scale"}

// LoadParquet reads observations from a Parquet file written with the
// scored-export row schema. Label columns present in the file's schema are
// always recorded, with null cells as empty strings, so an all-null level
// prunes during aggregation instead of reading as a missing column. Columns
// the file does not carry stay absent.
func LoadParquet(path string) ([]aggregate.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	present := make(map[string]bool, len(labelColumns))
	for _, column := range labelColumns {
		if _, ok := pf.Schema().Lookup(column); ok {
			present[column] = true
		}
	}

	rows, err := parquet.Read[parquetRow](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	obs := make([]aggregate.Observation, 0, len(rows))
	for _, row := range rows {
		o := aggregate.Observation{Labels: make(map[string]string)}
		setLabel(o.Labels, "pass", row.Pass, present["pass"])
		setLabel(o.Labels, "domain", row.Domain, present["domain"])
		setLabel(o.Labels, "subdomain", row.Subdomain, present["subdomain"])
		setLabel(o.Labels, "narrow", row.Narrow, present["narrow"])
		setLabel(o.Labels, "scale", row.Scale, present["scale"])
		o.Z = row.Z
		o.Percentile = row.Percentile
		obs = append(obs, o)
	}
	logging.LogDataset(path, len(obs))
	return obs, nil
}

// WriteParquet exports observations in the same row schema LoadParquet
// reads, so pipelines can hand scored data between runs.
func WriteParquet(path string, obs []aggregate.Observation) error {
	rows := make([]parquetRow, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, parquetRow{
			Pass:       labelPtr(o.Labels, "pass"),
			Domain:     labelPtr(o.Labels, "domain"),
			Subdomain:  labelPtr(o.Labels, "subdomain"),
			Narrow:     labelPtr(o.Labels, "narrow"),
			Scale:      labelPtr(o.Labels, "scale"),
			Z:          o.Z,
			Percentile: o.Percentile,
		})
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func setLabel(labels map[string]string, column string, v *string, present bool) {
	if !present {
		return
	}
	if v == nil {
		labels[column] = ""
		return
	}
	labels[column] = *v
}

func labelPtr(labels map[string]string, column string) *string {
	if v, ok := labels[column]; ok && v != "" {
		return &v
	}
	return nil
}
