package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"psy-match/internal/domain"
	"psy-match/internal/ranking"
)

func loadWeights(cmd *cobra.Command) (ranking.Weights, error) {
	path, _ := cmd.Flags().GetString("weights")
	return ranking.LoadCalibration(path)
}

func rankScenario(cmd *cobra.Command, path string) (Scenario, []ranking.Result, ranking.Weights, error) {
	w, err := loadWeights(cmd)
	if err != nil {
		return Scenario{}, nil, w, err
	}
	sc, err := LoadScenario(path)
	if err != nil {
		return Scenario{}, nil, w, err
	}
	results, err := ranking.Rank(sc.Pool(), sc.Profile(), w)
	if err != nil {
		return Scenario{}, nil, w, err
	}
	return sc, results, w, nil
}

func newRankCmd() *cobra.Command {
	var (
		asJSON bool
		top    int
	)
	cmd := &cobra.Command{
		Use:   "rank <scenario.toml>",
		Short: "Print the ranking for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, results, _, err := rankScenario(cmd, args[0])
			if err != nil {
				return err
			}
			if top > 0 && top < len(results) {
				results = results[:top]
			}
			pool := sc.Pool()
			out := cmd.OutOrStdout()

			if asJSON {
				matches := make([]domain.SpecialistMatch, len(results))
				for i, r := range results {
					matches[i] = domain.SpecialistMatch{
						Specialist:  pool[r.Index],
						TopsisScore: r.Score,
						TopsisRank:  r.Rank,
						Band:        ranking.Band(r.Score),
					}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(matches)
			}

			if len(results) == 0 {
				fmt.Fprintln(out, "no active specialists in scenario")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tID\tNAME\tSCORE\tBAND")
			for _, r := range results {
				s := pool[r.Index]
				name := strings.TrimSpace(s.FirstName + " " + s.LastName)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f%%\t%s\n", r.Rank, s.ID, name, r.Score*100, ranking.Band(r.Score))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matches as JSON")
	cmd.Flags().IntVar(&top, "top", 0, "only print the first N specialists")
	return cmd
}

func newExplainCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "explain <scenario.toml>",
		Short: "Print the raw criterion scores behind a ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, results, w, err := rankScenario(cmd, args[0])
			if err != nil {
				return err
			}
			pool := sc.Pool()
			out := cmd.OutOrStdout()

			names := ranking.CriterionNames()
			fmt.Fprintf(out, "profile: %+v\n", sc.Profile())
			fmt.Fprint(out, "weights:")
			for i, n := range names {
				fmt.Fprintf(out, " %s=%.2f", n, w[i])
			}
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "RANK\tID\t%s\tSCORE\n", strings.ToUpper(strings.Join(names, "\t")))
			found := id == ""
			for _, r := range results {
				if id != "" && pool[r.Index].ID != id {
					continue
				}
				found = true
				fmt.Fprintf(tw, "%d\t%s", r.Rank, pool[r.Index].ID)
				for _, v := range r.Criteria {
					fmt.Fprintf(tw, "\t%.2f", v)
				}
				fmt.Fprintf(tw, "\t%.4f\n", r.Score)
			}
			if !found {
				return fmt.Errorf("specialist %q not in scenario", id)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "only explain this specialist")
	return cmd
}
