package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"gopkg.in/yaml.v3"
)

// FormatBlocks renders the neighbourhood blocks around the site
func FormatBlocks(blocks []calculation.Block, format string) (string, error) {
	switch NormalizeFormatName(format) {
	case "json":
		data, err := marshalJSON(blocks, true)
		return string(data), err
	case "yaml":
		data, err := yaml.Marshal(blocks)
		return string(data), err
	case "csv":
		return blocksCSV(blocks)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "NEIGHBOURHOOD BLOCKS")
	fmt.Fprintln(&buf, "====================")
	fmt.Fprintf(&buf, "%-4s %-11s %-11s %-9s %-9s %-11s %-11s %s\n",
		"#", "Lat", "Lon", "Dist km", "Rate", "Population", "Interested", "Intensity")
	fmt.Fprintln(&buf, strings.Repeat("-", 84))
	for _, b := range blocks {
		fmt.Fprintf(&buf, "%-4d %-11.5f %-11.5f %-9.2f %-9s %-11d %-11d %s\n",
			b.Index, b.Latitude, b.Longitude, b.DistanceKm, FormatPercentage(b.Participation),
			b.Population, b.Interested, b.Intensity)
	}
	pop, interested := calculation.BlockTotals(blocks)
	fmt.Fprintln(&buf, strings.Repeat("-", 84))
	fmt.Fprintf(&buf, "Total population %d, interested %d\n", pop, interested)
	return buf.String(), nil
}

func blocksCSV(blocks []calculation.Block) (string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"index", "latitude", "longitude", "distance_km", "participation", "population", "interested", "intensity"}); err != nil {
		return "", err
	}
	for _, b := range blocks {
		row := []string{
			strconv.Itoa(b.Index),
			strconv.FormatFloat(b.Latitude, 'f', 6, 64),
			strconv.FormatFloat(b.Longitude, 'f', 6, 64),
			strconv.FormatFloat(b.DistanceKm, 'f', 3, 64),
			strconv.FormatFloat(b.Participation, 'f', 4, 64),
			strconv.Itoa(b.Population),
			strconv.Itoa(b.Interested),
			string(b.Intensity),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// FormatMarket renders the market position against nearby competitors
func FormatMarket(m calculation.MarketPosition, format string) (string, error) {
	switch NormalizeFormatName(format) {
	case "json":
		data, err := marshalJSON(m, true)
		return string(data), err
	case "yaml":
		data, err := yaml.Marshal(m)
		return string(data), err
	case "csv":
		return fmt.Sprintf("our_capacity,competitor_capacity,capacity_share_pct,our_members,competitor_members,member_share_pct,competitors\n%d,%d,%.1f,%d,%d,%.1f,%d\n",
			m.OurCapacity, m.TotalCompetitorCapacity, m.CapacitySharePct,
			m.OurMembers, m.TotalCompetitorMembers, m.MemberSharePct, m.Competitors), nil
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MARKET POSITION")
	fmt.Fprintln(&buf, "===============")
	fmt.Fprintf(&buf, "Competitors:       %d\n", m.Competitors)
	fmt.Fprintf(&buf, "Capacity Share:    %.1f%% (%d of %d clients/hour)\n",
		m.CapacitySharePct, m.OurCapacity, m.OurCapacity+m.TotalCompetitorCapacity)
	fmt.Fprintf(&buf, "Member Share:      %.1f%% (%d of %d members)\n",
		m.MemberSharePct, m.OurMembers, m.OurMembers+m.TotalCompetitorMembers)
	return buf.String(), nil
}
