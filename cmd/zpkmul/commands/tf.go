package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func tfCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "tf",
		Short: "Print numerator and denominator coefficients (descending powers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseFlag("model", model)
			if err != nil {
				return err
			}

			num, den, err := m.TransferFunction()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "num: %s\n", joinCoeffs(num))
			fmt.Fprintf(out, "den: %s\n", joinCoeffs(den))

			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "model to expand")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func joinCoeffs(c []float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
