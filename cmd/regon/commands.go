package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-regon/pkg/regon"
)

var (
	findRegon  string
	findNip    string
	findEntity bool
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find an entity by REGON or NIP",
	Long: `Searches the registry for one entity. Exactly one of --regon or --nip
must be given.

Example:
  regon find --nip 5261040828
  regon find --regon 000331501 --entity -o yaml`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

var reportCmd = &cobra.Command{
	Use:   "report [regon] [report-type]",
	Short: "Fetch a full report for a REGON",
	Long: `Fetches a full report. When the report type is omitted the entity is
looked up first and its general report is fetched (BIR11OsPrawna for legal
persons, BIR11OsFizycznaDaneOgolne otherwise).

Run "regon report-types" for the list of report types.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReport,
}

var reportTypesCmd = &cobra.Command{
	Use:   "report-types",
	Short: "List the report types accepted by the report command",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range regon.ReportTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	findCmd.Flags().StringVar(&findRegon, "regon", "", "REGON (9 or 14 digits)")
	findCmd.Flags().StringVar(&findNip, "nip", "", "NIP (10 digits)")
	findCmd.Flags().BoolVar(&findEntity, "entity", false, "Print the mapped entity instead of the raw record")
	findCmd.MarkFlagsMutuallyExclusive("regon", "nip")
	findCmd.MarkFlagsOneRequired("regon", "nip")
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newClient()
	if err != nil {
		return err
	}

	var record regon.Record
	if findRegon != "" {
		logger.Debug("Finding entity", zap.String("regon", findRegon))
		record, err = client.FindByRegon(ctx, findRegon)
	} else {
		logger.Debug("Finding entity", zap.String("nip", findNip))
		record, err = client.FindByNip(ctx, findNip)
	}
	if err != nil {
		return err
	}

	if findEntity {
		return writeOutput(cmd.OutOrStdout(), record.Entity())
	}
	return writeOutput(cmd.OutOrStdout(), record)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	number := args[0]
	if err := regon.ValidateRegon(number); err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	var reportType regon.ReportType
	if len(args) == 2 {
		reportType = regon.ReportType(args[1])
	} else {
		entity, err := client.FindEntityByRegon(ctx, number)
		if err != nil {
			return err
		}
		reportType = entity.FullReportType()
	}

	logger.Debug("Fetching report", zap.String("regon", number), zap.String("report_type", string(reportType)))
	record, err := client.GetReport(ctx, number, reportType)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), record)
}

// writeOutput encodes v in the --output format
func writeOutput(w io.Writer, v any) error {
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}
