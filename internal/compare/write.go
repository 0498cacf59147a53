package compare

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteText renders reports as an aligned table, one row per algorithm.
func WriteText(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tNODES\tEDGES\tCHI\tALGORITHM\tCOLORS\tOPTIMAL\tVALID\tELAPSED")
	for _, rep := range reports {
		chi := "?"
		if rep.Chromatic > 0 {
			chi = strconv.Itoa(rep.Chromatic)
		}
		for _, res := range rep.Results {
			if res.Skipped != "" {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t-\t-\t-\tskipped (%s)\n",
					rep.Case, rep.Nodes, rep.Edges, chi, res.Algorithm, res.Skipped)
				continue
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\t%s\t%t\t%s\n",
				rep.Case, rep.Nodes, rep.Edges, chi, res.Algorithm, res.Colors,
				optimal(rep, res), res.Valid, res.Elapsed.Round(time.Microsecond))
		}
	}

	return tw.Flush()
}

func optimal(rep Report, res Result) string {
	if rep.Chromatic == 0 {
		return "?"
	}

	return strconv.FormatBool(res.Optimal)
}

// WriteYAML renders reports as a YAML document under a top-level "reports" key.
func WriteYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Reports []Report `yaml:"reports"`
	}{reports}); err != nil {
		return fmt.Errorf("compare: encode yaml: %w", err)
	}

	return enc.Close()
}

var csvHeader = []string{"graph_type", "n", "num_nodes", "num_edges", "algorithm", "time_ns", "num_colors"}

// WriteCSV renders one row per (report, algorithm). graph_type is the sweep
// family, or the case name for reports outside a sweep. Skipped runs leave
// time_ns and num_colors empty; n is empty outside a sweep.
func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("compare: write csv: %w", err)
	}
	for _, rep := range reports {
		graphType, n := rep.Case, ""
		if rep.Family != "" {
			graphType, n = rep.Family, strconv.Itoa(rep.N)
		}
		for _, res := range rep.Results {
			timeNS, colors := "", ""
			if res.Skipped == "" {
				timeNS = strconv.FormatInt(res.Elapsed.Nanoseconds(), 10)
				colors = strconv.Itoa(res.Colors)
			}
			row := []string{graphType, n, strconv.Itoa(rep.Nodes), strconv.Itoa(rep.Edges), res.Algorithm, timeNS, colors}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("compare: write csv: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
