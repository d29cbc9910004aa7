package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/planboard/internal/api"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations accepted by call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range api.New(nil, nil, nil).Operations() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
			return nil
		},
	}
}
