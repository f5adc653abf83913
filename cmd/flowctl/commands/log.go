package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/journal"
)

func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the journaled transition history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			err := jrnl.Replay(cmd.Context(), counter.FeatureKey, func(rec journal.Record) error {
				fmt.Printf("%4d  %s  %s -> %s\n",
					rec.Seq,
					rec.CreatedAt.Format(time.RFC3339),
					rec.Action,
					rec.State,
				)
				count++
				return nil
			})
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Println("journal is empty")
			}
			return nil
		},
	}
}
