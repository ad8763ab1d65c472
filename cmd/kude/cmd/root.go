package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rezonia/kude/internal/config"
	"github.com/rezonia/kude/internal/logging"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	cfgFile      string
	outputFormat string

	settings = config.New()
	cfg      *config.Config
	logger   = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "kude [xmlInput] [templateDirPrefix] [outputDirPrefix] [parametersJSON]",
	Short: "Generate the printable KuDE of a SIFEN electronic document",
	Long: `kude reads a SIFEN electronic document (rDE), picks the print template
for its document type and writes the KuDE as PDF.

Arguments:
  xmlInput           path to the XML file, or the XML itself when it starts
                     with <?xml (default: default_xml setting)
  templateDirPrefix  prefix the template file name is appended to
                     (env: KUDE_TEMPLATE_DIR)
  outputDirPrefix    prefix the PDF file name is appended to
                     (env: KUDE_OUTPUT_DIR)
  parametersJSON     JSON object of report parameters, dates as
                     yyyy-MM-ddTHH:mm:ss

Prefixes are concatenated as-is, so directories need a trailing slash.

Exit status: 0 success, 1 fatal error, 2 PDF could not be rendered or written.

Examples:
  kude factura.xml templates/ out/
  kude factura.xml templates/ out/ '{"FECHA_IMPRESION":"2024-03-01T08:30:00"}'
  KUDE_TEMPLATE_DIR=templates/ KUDE_OUTPUT_DIR=out/ kude factura.xml`,
	Version:           version,
	Args:              cobra.MaximumNArgs(4),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ./kude.yaml or $HOME/.kude/kude.yaml)")
	pf.StringVarP(&outputFormat, "format", "f", "table", "Output format for reports (json, table)")
	pf.String("log-level", logging.DefaultLevel, "Log level (debug, info, warn, error) (env: KUDE_LOG_LEVEL)")
	pf.String("log-format", logging.FormatConsole, "Log format (console, json) (env: KUDE_LOG_FORMAT)")

	bindFlag(pf, "log-level", config.KeyLogLevel)
	bindFlag(pf, "log-format", config.KeyLogFormat)
}

func bindFlag(flags *pflag.FlagSet, name, key string) {
	if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(settings, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger = logging.New(logging.Config{
		Level:  level,
		Format: cfg.LogFormat,
		Out:    os.Stderr,
	})
	logger.Debug().
		Str("config", settings.ConfigFileUsed()).
		Str("log_level", logger.Level().String()).
		Msg("configuration loaded")
	return nil
}
