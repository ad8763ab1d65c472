package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/kude/internal/template"
)

var templatesDir string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the template used for each document type",
	Long: `List the document type table. With a template prefix the command also
reports whether each template file is present.

Examples:
  kude templates
  kude templates --template-dir templates/`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVar(&templatesDir, "template-dir", "", "Template prefix to check (default: template_dir setting)")
}

// TemplateStatus is one row of the templates command
type TemplateStatus struct {
	Code     int    `json:"code"`
	Type     string `json:"type"`
	Template string `json:"template"`
	Path     string `json:"path,omitempty"`
	Status   string `json:"status,omitempty"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}

	prefix := templatesDir
	if prefix == "" {
		prefix = cfg.TemplateDir
	}

	rows := make([]TemplateStatus, 0, len(template.List()))
	for _, entry := range template.List() {
		row := TemplateStatus{
			Code:     int(entry.Type),
			Type:     entry.Type.String(),
			Template: entry.FileName(),
		}
		if prefix != "" {
			selection := template.Resolve(prefix, row.Code)
			row.Path = selection.Path
			row.Status = "ok"
			if err := selection.Validate(); err != nil {
				row.Status = "missing"
				logger.Debug().Err(err).Msg("template check failed")
			}
		}
		rows = append(rows, row)
	}

	if outputFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tTYPE\tTEMPLATE\tSTATUS")
	fmt.Fprintln(tw, "----\t----\t--------\t------")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.Code, row.Type, row.Template, row.Status)
	}
	return tw.Flush()
}
