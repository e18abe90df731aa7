// internal/drilldown/payload.go
package drilldown

// PointPayload is the object shape the external charting library expects for
// a single bar: y carries the mean percentile, y2 the mean z-score, range the
// performance band label.
type PointPayload struct {
	Name      string   `json:"name"`
	Y         *float64 `json:"y"`
	Y2        *float64 `json:"y2,omitempty"`
	Range     string   `json:"range,omitempty"`
	Drilldown string   `json:"drilldown,omitempty"`
}

// SeriesPayload is one drilldown series definition for the charting library.
// Type is the library's series-type constant ("column" or "bar").
type SeriesPayload struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Data []PointPayload `json:"data"`
}

// RootPayload renders the top-level series data array.
func (c Chart) RootPayload() []PointPayload {
	return pointPayloads(c.Root)
}

// DrilldownPayload renders every drillable series with the given chart type.
func (c Chart) DrilldownPayload(chartType string) []SeriesPayload {
	out := make([]SeriesPayload, 0, len(c.Series))
	for _, record := range c.Series {
		out = append(out, SeriesPayload{
			ID:   record.ID,
			Type: chartType,
			Data: pointPayloads(record.Items),
		})
	}
	return out
}

func pointPayloads(rows []Row) []PointPayload {
	out := make([]PointPayload, 0, len(rows))
	for _, row := range rows {
		point := PointPayload{
			Name:      row.Name,
			Y:         row.MeanPercentile,
			Y2:        row.MeanZ,
			Drilldown: row.DrilldownID,
		}
		if row.Band != nil {
			point.Range = string(*row.Band)
		}
		out = append(out, point)
	}
	return out
}
