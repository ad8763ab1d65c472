package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/kude/internal/config"
	"github.com/rezonia/kude/internal/kude"
	"github.com/rezonia/kude/internal/pdfcheck"
)

func init() {
	rootCmd.Flags().Bool("verify-output", false, "Validate the exported PDF with pdfcpu (env: KUDE_VERIFY_OUTPUT)")
	rootCmd.Flags().Bool("tolerate-render-errors", false, "Log render and export failures and exit 0 (env: KUDE_TOLERATE_RENDER_ERRORS)")

	bindFlag(rootCmd.Flags(), "verify-output", config.KeyVerifyOutput)
	bindFlag(rootCmd.Flags(), "tolerate-render-errors", config.KeyTolerateRenderErrors)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req := kude.Request{
		XMLInput:       argOr(args, 0, cfg.DefaultXML),
		TemplateDir:    argOr(args, 1, cfg.TemplateDir),
		OutputDir:      argOr(args, 2, cfg.OutputDir),
		ParametersJSON: argOr(args, 3, ""),
	}

	opts := []kude.PipelineOption{
		kude.WithLogger(logger.WithComponent("pipeline")),
		kude.WithTolerateRenderErrors(cfg.TolerateRenderErrors),
	}
	if cfg.VerifyOutput {
		opts = append(opts, kude.WithOutputChecker(pdfcheck.NewChecker()))
	}

	result, err := kude.NewPipeline(opts...).Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	if result.Exported && result.Err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
	}
	return nil
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return fallback
}
