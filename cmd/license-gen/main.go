package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dlviewer/dlviewer/internal/config"
	"github.com/dlviewer/dlviewer/internal/generator"
	"github.com/dlviewer/dlviewer/internal/platform/sheets"
)

const defaultCSV = "driver_licenses_1000.csv"

type options struct {
	count   int
	seed    int64
	sheetID string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "license-gen",
		Short: "Generate synthetic driver's license records",
	}
	root.PersistentFlags().IntVar(&opts.count, "count", 1000, "number of records to generate")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	root.PersistentFlags().StringVar(&opts.sheetID, "sheet-id", "", "target spreadsheet id (defaults to GOOGLE_SHEET_ID)")

	root.AddCommand(csvCmd(opts))
	root.AddCommand(uploadCmd(opts))
	root.AddCommand(importCmd(opts))
	return root
}

func csvCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write generated records to a local CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := generator.New(opts.seed, nil).Generate(opts.count)
			if err := writeCSVFile(out, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(entries), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", defaultCSV, "output file")
	return cmd
}

func uploadCmd(opts *options) *cobra.Command {
	var csvOut string
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Generate records and append them to the spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := generator.New(opts.seed, nil).Generate(opts.count)
			if csvOut != "" {
				if err := writeCSVFile(csvOut, entries); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(entries), csvOut)
			}
			return upload(cmd, opts, generator.SheetRows(entries))
		},
	}
	cmd.Flags().StringVar(&csvOut, "csv-out", "", "also save the generated records to this CSV file")
	return cmd
}

func importCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append the rows of an existing CSV file to the spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer f.Close()

			rows, err := generator.ReadCSV(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found %d entries in %s\n", len(rows), file)
			return upload(cmd, opts, rows)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", defaultCSV, "CSV file to import")
	return cmd
}

func upload(cmd *cobra.Command, opts *options, rows [][]interface{}) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	sheetID := opts.sheetID
	if sheetID == "" {
		if !cfg.SheetConfigured() {
			return fmt.Errorf("no spreadsheet id: pass --sheet-id or set GOOGLE_SHEET_ID")
		}
		sheetID = cfg.SheetID
	}

	conn := sheets.Connect(cmd.Context(), sheets.Credentials{File: cfg.CredentialsFile, JSON: cfg.CredentialsJSON}, logger)
	if !conn.Connected() {
		return sheets.ErrNotConnected
	}

	res, err := generator.Upload(cmd.Context(), conn, sheetID, cfg.SheetName(), rows)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "appended %d rows starting at row %d (%d cells updated)\n", res.Rows, res.StartRow, res.UpdatedCells)
	fmt.Fprintf(out, "https://docs.google.com/spreadsheets/d/%s/edit\n", sheetID)
	return nil
}

func writeCSVFile(path string, entries []generator.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := generator.WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
