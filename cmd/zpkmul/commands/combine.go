package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-control/control/zpk"
)

func combineCmd() *cobra.Command {
	var plant, controller, actuator string

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Multiply plant, controller and actuator models",
		RunE: func(cmd *cobra.Command, args []string) error {
			models := make([]*zpk.Model, 3)

			for i, f := range []struct{ name, value string }{
				{"plant", plant},
				{"controller", controller},
				{"actuator", actuator},
			} {
				m, err := parseFlag(f.name, f.value)
				if err != nil {
					return err
				}

				models[i] = m
			}

			loop, err := zpk.Combine(models[0], models[1], models[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, loop)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Zeros\t%d\n", len(loop.Zeros))
			fmt.Fprintf(tw, "Poles\t%d\n", len(loop.Poles))
			fmt.Fprintf(tw, "Gain\t%g\n", loop.Gain)
			fmt.Fprintf(tw, "DC gain\t%s\n", formatComplex(loop.DCGain()))

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "plant model")
	cmd.Flags().StringVar(&controller, "controller", "", "controller model")
	cmd.Flags().StringVar(&actuator, "actuator", "", "actuator model")

	for _, name := range []string{"plant", "controller", "actuator"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return fmt.Sprintf("%.6g", real(v))
	}

	return fmt.Sprintf("%.6g", v)
}
