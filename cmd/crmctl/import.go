package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"crm/internal/errors"
	"crm/internal/util"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// mappingFile is the YAML layout of a column mapping:
//
//	columns:
//	  "Customer Name": name
//	  "Mobile": phone
type mappingFile struct {
	Columns map[string]string `yaml:"columns"`
}

func loadMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mapping")
	}

	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse mapping")
	}
	if len(file.Columns) == 0 {
		return nil, errors.New("mapping has no columns")
	}

	return file.Columns, nil
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Merge a customer CSV export into the stored state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := loadMapping(mappingPath)
			if err != nil {
				return err
			}

			return runImport(cmd, opts, args[0], mapping)
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "mapping.yaml", "YAML file mapping CSV columns to customer fields")

	return cmd
}

func runImport(cmd *cobra.Command, opts *rootOptions, path string, mapping map[string]string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "failed to stat input")
	}

	checksum, err := util.CalculateFileChecksum(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Importing %s (%s, sha256 %s)\n", path, util.FormatBytes(info.Size()), checksum)

	return runWithDeps(cmd.Context(), func(ctx context.Context, deps cliDeps) error {
		started := time.Now()

		if err := deps.Sync.Start(ctx); err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer file.Close()

		result, err := deps.Import.ImportCSV(ctx, opts.actor(), file, mapping)
		if err != nil {
			return err
		}

		if err := deps.Sync.Flush(ctx); err != nil {
			return err
		}

		summary := result.Value
		fmt.Fprintf(out, "New customers: %d\nUpdated customers: %d\nTransactions: %d\nSkipped rows: %d\n",
			summary.New, summary.Updated, summary.Transactions, summary.Skipped)
		fmt.Fprintf(out, "Done in %s\n", util.FormatDuration(time.Since(started)))

		return nil
	})
}
