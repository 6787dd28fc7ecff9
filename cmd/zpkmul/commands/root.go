package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-control/control/zpk"
)

// Execute runs the zpkmul command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the zpkmul command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "zpkmul",
		Short:        "Combine and evaluate zero-pole-gain models",
		SilenceUsage: true,
	}

	root.AddCommand(combineCmd(), evalCmd(), tfCmd())

	return root
}

// parseFlag parses a model flag, naming the flag in the error.
func parseFlag(name, value string) (*zpk.Model, error) {
	m, err := zpk.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}

	return m, nil
}
