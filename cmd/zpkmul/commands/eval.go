package commands

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-control/control/zpk"
)

func evalCmd() *cobra.Command {
	var (
		model    string
		from, to float64
		points   int
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print magnitude and phase over a log-spaced frequency grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseFlag("model", model)
			if err != nil {
				return err
			}

			for _, f := range []struct {
				name  string
				value float64
			}{{"from", from}, {"to", to}} {
				if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
					return fmt.Errorf("--%s must be finite, got %v", f.name, f.value)
				}
			}

			if points <= 0 {
				return fmt.Errorf("--points must be positive, got %d", points)
			}

			omegas := zpk.Grid(zpk.WithDecades(from, to), zpk.WithPoints(points))
			mag := m.MagnitudeDB(omegas)
			phase := m.Phase(omegas)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "rad/s\tdB\tdeg\t")

			for i, w := range omegas {
				fmt.Fprintf(tw, "%.4g\t%.2f\t%.1f\t\n", w, mag[i], phase[i]*180/math.Pi)
			}

			return tw.Flush()
		},
	}

	def := zpk.DefaultGridConfig()

	cmd.Flags().StringVar(&model, "model", "", "model to evaluate")
	cmd.Flags().Float64Var(&from, "from", def.StartDecade, "first frequency decade (10^from rad/s)")
	cmd.Flags().Float64Var(&to, "to", def.StopDecade, "last frequency decade (10^to rad/s)")
	cmd.Flags().IntVar(&points, "points", def.Points, "number of frequency points")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
