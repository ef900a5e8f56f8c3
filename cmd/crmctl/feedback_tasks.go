package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newFeedbackTasksCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "feedback-tasks",
		Short: "Create daily feedback tasks for recent invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithDeps(cmd.Context(), func(ctx context.Context, deps cliDeps) error {
				if err := deps.Sync.Start(ctx); err != nil {
					return err
				}

				result, err := deps.Tasks.GenerateFeedbackTasks(ctx, opts.actor())
				if err != nil {
					return err
				}

				if err := deps.Sync.Flush(ctx); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created %d feedback task(s)\n", result.Value)

				return nil
			})
		},
	}
}
