package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/store"
)

func incCmd() *cobra.Command {
	return newDispatchCmd("inc [n]", "Increment the counter n times (default 1)", counter.Increment)
}

func decCmd() *cobra.Command {
	return newDispatchCmd("dec [n]", "Decrement the counter n times (default 1)", counter.Decrement)
}

func newDispatchCmd(use, short string, action counter.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("n must be a positive integer, got %q", args[0])
				}
				n = parsed
			}

			ctx := cmd.Context()

			state, err := store.Rehydrate(ctx, jrnl, counter.FeatureKey, counter.Reduce, counter.Initial())
			if err != nil {
				return err
			}

			st, err := store.New(counter.FeatureKey, counter.Reduce, state,
				store.WithObserver(observer),
				store.WithJournal(jrnl),
			)
			if err != nil {
				return err
			}

			for i := 0; i < n; i++ {
				st.Dispatch(ctx, action)
			}

			fmt.Printf("count: %d\n", counter.SelectCount(st.GetState()))
			return nil
		},
	}
}
