package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/kude/internal/model"
	xmlparser "github.com/rezonia/kude/internal/parser/xml"
	"github.com/rezonia/kude/internal/template"
)

var infoTemplateDir string

var infoCmd = &cobra.Command{
	Use:   "info [xmlInput]",
	Short: "Classify a document without rendering it",
	Long: `Display the identifying fields of a SIFEN document and the template
it would be printed with.

Examples:
  kude info factura.xml
  kude info factura.xml --template-dir templates/ -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoTemplateDir, "template-dir", "", "Template prefix to resolve against (default: template_dir setting)")
}

// DocumentInfo is the info command report
type DocumentInfo struct {
	Input         string                 `json:"input"`
	Metadata      *model.InvoiceMetadata `json:"metadata"`
	DocumentType  string                 `json:"document_type"`
	Template      string                 `json:"template"`
	TemplateError string                 `json:"template_error,omitempty"`
	FileName      string                 `json:"file_name"`
	LineItems     int                    `json:"line_items"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}

	input := argOr(args, 0, cfg.DefaultXML)
	data, err := xmlparser.LoadInput(input)
	if err != nil {
		return model.NewParseError("xml", "", "failed to load document", err)
	}

	meta, err := xmlparser.NewClassifier().Classify(data)
	if err != nil {
		return err
	}

	prefix := infoTemplateDir
	if prefix == "" {
		prefix = cfg.TemplateDir
	}
	selection := template.Resolve(prefix, meta.DocumentTypeCode)

	info := &DocumentInfo{
		Input:        displayInput(input),
		Metadata:     meta,
		DocumentType: meta.DocumentType().String(),
		Template:     selection.Path,
		FileName:     meta.FileName(),
	}
	if prefix != "" || !selection.Known() {
		if err := selection.Validate(); err != nil {
			info.TemplateError = err.Error()
		}
	}
	if rows, err := xmlparser.NewLineItemSource(data); err == nil {
		info.LineItems = rows.Len()
	} else {
		logger.Warn().Err(err).Msg("could not read line items")
	}

	if outputFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), info)
	}
	return printInfo(cmd.OutOrStdout(), info)
}

func printInfo(w io.Writer, info *DocumentInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	m := info.Metadata

	fmt.Fprintf(tw, "Input:\t%s\n", info.Input)
	fmt.Fprintf(tw, "Type:\t%d (%s)\n", m.DocumentTypeCode, info.DocumentType)
	fmt.Fprintf(tw, "Description:\t%s\n", m.DocumentTypeDescription)
	fmt.Fprintf(tw, "Tax stamp:\t%s\n", m.TaxStampNumber)
	fmt.Fprintf(tw, "Number:\t%s-%s-%s\n", m.Establishment, m.PointOfSale, m.DocumentNumber)
	if m.HasSeries() {
		fmt.Fprintf(tw, "Series:\t%s\n", *m.Series)
	}
	fmt.Fprintf(tw, "Line items:\t%d\n", info.LineItems)
	fmt.Fprintf(tw, "Template:\t%s\n", info.Template)
	if info.TemplateError != "" {
		fmt.Fprintf(tw, "Template error:\t%s\n", info.TemplateError)
	}
	fmt.Fprintf(tw, "Output file:\t%s\n", info.FileName)
	return tw.Flush()
}

func displayInput(input string) string {
	if xmlparser.IsLiteral(input) {
		return "(literal XML)"
	}
	return input
}
