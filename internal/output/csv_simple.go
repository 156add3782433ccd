package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVSummarizer writes one row per subscription type plus a totals row
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	r := report.Result

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Occupancy", "Subscription", "Weight", "Slots", "Sessions", "Clients", "Revenue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	occ := strconv.FormatFloat(r.OccupancyRate, 'f', 4, 64)
	for _, d := range r.Demand {
		row := []string{
			string(r.Scenario),
			occ,
			string(d.Kind),
			strconv.FormatFloat(d.Weight, 'f', 4, 64),
			strconv.FormatFloat(d.Slots, 'f', 2, 64),
			strconv.Itoa(d.Sessions),
			strconv.Itoa(d.Clients),
			d.Revenue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	total := []string{string(r.Scenario), occ, "total", "1.0000", strconv.Itoa(r.OccupiedSlots), "", strconv.Itoa(r.TotalClients), r.TotalRevenue.StringFixed(2)}
	if err := w.Write(total); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
