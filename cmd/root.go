// Package cmd implements the gridcol command line interface: it reads a
// column configuration document (or a JSON Schema) and emits the canonical
// per-column configuration mapping consumed by grid renderers.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/pkg/column"
	"github.com/oakwood-commons/gridcol/pkg/logger"
	"github.com/oakwood-commons/gridcol/pkg/settings"
)

// errNoInput is returned when neither a file argument nor piped stdin is
// available.
var errNoInput = errors.New("no input provided: pass a file argument or pipe a document to stdin")

var (
	fromSchema bool
	emitYAML   bool
	logLevel   int8
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Normalize column configuration documents for data grids",
	Long: `gridcol reads a column configuration document (JSON or YAML) or a
JSON Schema, validates and normalizes it, and prints the canonical
per-column configuration mapping.

Structural problems (unknown type or width tags, option keys that do not
belong to the declared type) are rejected. Semantic checks such as
min > max are left to the consuming editor.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version: fmt.Sprintf("%s (commit %s, built %s)",
		settings.VersionInformation.BuildVersion,
		settings.VersionInformation.Commit,
		settings.VersionInformation.BuildTime),
	RunE: func(cmd *cobra.Command, args []string) error {
		lgr := logger.Get(logLevel)

		input, err := loadInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		columns, err := parseColumns(input, fromSchema)
		if err != nil {
			return err
		}
		lgr.V(1).Info("parsed column configuration", "columns", len(columns), "schema", fromSchema)

		out, err := renderColumns(columns, emitYAML)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	bindFlags(rootCmd.Flags())
}

// bindFlags registers the root command flags on the given flag set.
func bindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&fromSchema, "schema", "s", false, "treat input as a JSON Schema and derive column configs from its properties")
	fs.BoolVarP(&emitYAML, "yaml", "y", false, "emit the column mapping as YAML instead of JSON")
	fs.Int8Var(&logLevel, "log-level", settings.NewCliParams().MinLogLevel, "minimum log level (zap levels: -1 debug, 0 info, 1 warn, 2 error)")
	fs.SortFlags = false
}

// loadInput reads the document from the file argument, or from stdin when
// no argument is given.
func loadInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, errNoInput
	}
	return data, nil
}

// parseColumns runs the input through the document parser or the JSON
// Schema deriver.
func parseColumns(input []byte, schema bool) (map[string]column.Config, error) {
	if schema {
		return column.FromJSONSchema(input)
	}
	return column.ParseDocument(input)
}

// renderColumns emits the canonical document, as indented JSON or as YAML.
// YAML output goes through the JSON form so both encodings share the wire
// field names.
func renderColumns(columns map[string]column.Config, asYAML bool) ([]byte, error) {
	doc, err := column.MarshalDocument(columns)
	if err != nil {
		return nil, err
	}
	if !asYAML {
		return doc, nil
	}
	var generic map[string]any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}
