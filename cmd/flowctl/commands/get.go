package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/store"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current counter value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := store.Rehydrate(cmd.Context(), jrnl, counter.FeatureKey, counter.Reduce, counter.Initial())
			if err != nil {
				return err
			}
			fmt.Printf("count: %d\n", counter.SelectCount(state))
			return nil
		},
	}
}
