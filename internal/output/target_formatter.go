package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"gopkg.in/yaml.v3"
)

// FormatTarget renders a target occupancy solution in the given format
func FormatTarget(result *calculation.TargetResult, format string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no target result to format")
	}
	switch NormalizeFormatName(format) {
	case "json":
		data, err := marshalJSON(result, true)
		return string(data), err
	case "yaml":
		data, err := yaml.Marshal(result)
		return string(data), err
	case "csv":
		return fmt.Sprintf("target,reachable,converged,occupancy,lower_bound,iterations\n%s,%t,%t,%.6f,%.6f,%d\n",
			result.Target.StringFixed(2), result.Reachable, result.Converged,
			result.Occupancy, result.LowerBound, result.Iterations), nil
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TARGET OCCUPANCY")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintf(&buf, "Revenue Target:     %s\n", FormatCurrency(result.Target))
	if !result.Reachable {
		fmt.Fprintf(&buf, "Result:             unreachable at full occupancy\n")
	} else {
		fmt.Fprintf(&buf, "Minimum Occupancy:  %s\n", FormatPercentage(result.Occupancy))
	}
	fmt.Fprintf(&buf, "Iterations:         %d\n", result.Iterations)
	fmt.Fprintf(&buf, "Convergence:        %s\n", result.ConvergenceInfo)
	if r := result.Result; r != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "At %s occupancy: %d slots, %d clients, %s revenue",
			FormatPercentage(r.OccupancyRate), r.OccupiedSlots, r.TotalClients, FormatCurrency(r.TotalRevenue))
		if r.Degenerate {
			fmt.Fprintln(&buf, ", catchment n/a")
		} else {
			fmt.Fprintf(&buf, ", %.2f km catchment\n", r.CatchmentRadiusKm)
		}
	}
	return buf.String(), nil
}
