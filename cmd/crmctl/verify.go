package main

import (
	"context"
	"fmt"
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/errors"
	"crm/internal/infra/persistence/snapshot"
	"crm/internal/util"

	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the stored state for integrity problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithDeps(cmd.Context(), func(ctx context.Context, deps cliDeps) error {
				state, err := deps.Repo.Load(ctx)
				if err != nil {
					return err
				}

				return report(cmd, state)
			})
		},
	}
}

func report(cmd *cobra.Command, state *entity.AppState) error {
	out := cmd.OutOrStdout()

	data, err := snapshot.Encode(state, false)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Snapshot size: %s (sha256 %s)\n", util.FormatBytes(int64(len(data))), util.Checksum(data))
	fmt.Fprintf(out, "Users: %d, customers: %d, complaints: %d, products: %d, branches: %d\n",
		len(state.Users), len(state.Customers), len(state.Complaints), len(state.Products), len(state.Branches))

	problems := verifyState(state)
	if len(problems) == 0 {
		fmt.Fprintln(out, "No problems found")

		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	return errors.Errorf("%d problem(s) found", len(problems))
}

// verifyState lists integrity problems of a stored state.
func verifyState(state *entity.AppState) []string {
	var problems []string

	problems = append(problems, duplicates("user", state.Users, func(u entity.User) string { return u.ID })...)
	problems = append(problems, duplicates("customer", state.Customers, func(c entity.Customer) string { return c.ID })...)
	problems = append(problems, duplicates("complaint", state.Complaints, func(c entity.Complaint) string { return c.ComplaintID })...)

	for _, c := range state.Customers {
		if !c.BalanceConsistent() {
			problems = append(problems, fmt.Sprintf("customer %s: balance %d does not match earned %d minus used %d",
				c.ID, c.Points, c.TotalPointsEarned, c.TotalPointsUsed))
		}
	}

	for _, c := range state.Complaints {
		if c.CustomerID == "" {
			continue
		}
		if _, ok := state.FindCustomer(c.CustomerID); !ok {
			problems = append(problems, fmt.Sprintf("complaint %s: unknown customer %s", c.ComplaintID, c.CustomerID))
		}
	}

	for _, u := range state.Users {
		if !strings.HasPrefix(u.Password, "$2") {
			problems = append(problems, fmt.Sprintf("user %s: password is not hashed yet", u.Username))
		}
	}

	return problems
}

func duplicates[T any](kind string, items []T, id func(T) string) []string {
	seen := make(map[string]int, len(items))
	var problems []string
	for _, item := range items {
		key := id(item)
		seen[key]++
		if seen[key] == 2 {
			problems = append(problems, fmt.Sprintf("duplicate %s id %q", kind, key))
		}
	}

	return problems
}
