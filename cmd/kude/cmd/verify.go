package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/kude/internal/pdfcheck"
)

var strictValidation bool

var verifyCmd = &cobra.Command{
	Use:   "verify [files...]",
	Short: "Validate generated PDF files",
	Long: `Validate PDF files with pdfcpu and report their page count.

Examples:
  kude verify out/*.pdf
  kude verify --strict -f json out/factura.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVar(&strictValidation, "strict", false, "Use strict PDF validation")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}

	checker := pdfcheck.NewChecker(pdfcheck.WithStrictValidation(strictValidation))

	results := make([]*pdfcheck.Result, 0, len(args))
	failed := 0
	for _, file := range args {
		logger.Debug().Str("file", file).Msg("verifying")

		result, err := checker.CheckFile(file)
		if err != nil {
			failed++
			logger.Debug().Err(err).Str("file", file).Msg("verification failed")
		}
		results = append(results, result)
	}

	if outputFormat == formatJSON {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tVALID\tPAGES\tSIZE\tERRORS")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%s\n", r.Path, r.Valid, r.Pages, r.Size, strings.Join(r.Errors, "; "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, len(args))
	}
	return nil
}
