package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"crm/internal/domain/entity"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"import", "feedback-tasks", "verify"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	importCmd, _, err := cmd.Find([]string{"import"})
	require.NoError(t, err)
	flag := importCmd.Flags().Lookup("mapping")
	require.NotNil(t, flag)
	assert.Equal(t, "m", flag.Shorthand)
}

func TestRootOptions_Actor(t *testing.T) {
	assert.Equal(t, entity.SystemActor, (&rootOptions{}).actor())

	actor := (&rootOptions{actorName: "Nightly job"}).actor()
	assert.Equal(t, "system", actor.UserID)
	assert.Equal(t, "Nightly job", actor.UserName)
}

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("columns:\n  \"Customer Name\": name\n  Mobile: phone\n"), 0o600))

	mapping, err := loadMapping(valid)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Customer Name": "name", "Mobile": "phone"}, mapping)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("columns: {}\n"), 0o600))
	_, err = loadMapping(empty)
	assert.EqualError(t, err, "mapping has no columns")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("columns: [\n"), 0o600))
	_, err = loadMapping(broken)
	assert.ErrorContains(t, err, "failed to parse mapping")

	_, err = loadMapping(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read mapping")
}

func TestVerifyState(t *testing.T) {
	state := entity.DefaultState()
	state.Users = []entity.User{
		{ID: "user-1", Username: "hala", Password: "$2a$10$hash"},
		{ID: "user-1", Username: "omar", Password: "plain"},
	}
	state.Customers = []entity.Customer{
		{ID: "CUST-1", Points: 30, TotalPointsEarned: 50, TotalPointsUsed: 20},
		{ID: "CUST-2", Points: 10, TotalPointsEarned: 5},
	}
	state.Complaints = []entity.Complaint{
		{ComplaintID: "CMPT-1", CustomerID: "CUST-1"},
		{ComplaintID: "CMPT-2", CustomerID: "CUST-404"},
		{ComplaintID: "CMPT-3"},
	}

	assert.Equal(t, []string{
		`duplicate user id "user-1"`,
		"customer CUST-2: balance 10 does not match earned 5 minus used 0",
		"complaint CMPT-2: unknown customer CUST-404",
		"user omar: password is not hashed yet",
	}, verifyState(state))

	assert.Empty(t, verifyState(entity.DefaultState()))
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, report(cmd, entity.DefaultState()))
	assert.Contains(t, out.String(), "Users: 0, customers: 0, complaints: 0, products: 0, branches: 0")
	assert.Contains(t, out.String(), "No problems found")

	out.Reset()
	broken := entity.DefaultState()
	broken.Customers = []entity.Customer{{ID: "CUST-1", Points: -5}}

	err := report(cmd, broken)
	assert.EqualError(t, err, "1 problem(s) found")
	assert.Contains(t, out.String(), "customer CUST-1: balance -5")
}
