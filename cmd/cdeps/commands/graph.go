package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/cdeps/internal/config"
)

// GraphCommand holds the flags for the graph command.
type GraphCommand struct {
	configPath  string
	format      string
	includeDirs []string
}

// NewGraphCommand creates and configures the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &GraphCommand{}

	cobraCmd := &cobra.Command{
		Use:   "graph <dir>",
		Short: "Build and dump the unit dependency mapping",
		Long: `Builds the mapping from unit name to direct dependency names and dumps
it. Dependency names are open world: they reference other units when the
include resolves to one, and stay as bare external names otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatJSON, "Output format: json, yaml, or dot")
	cobraCmd.Flags().StringSliceVarP(&cmd.includeDirs, "include-dir", "I", nil, "Extra include directories, relative to <dir>")
	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path")

	return cobraCmd
}

// Run executes the graph command.
func (c *GraphCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}

	cfg.IncludeDirs = append(cfg.IncludeDirs, c.includeDirs...)

	pairs, err := finderFromConfig(cfg).FromDir(args[0])
	if err != nil {
		return err
	}

	mapping, err := mapperFromConfig(cfg, args[0]).Map(cmd.Context(), pairs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch c.format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		encodeErr := encoder.Encode(mappingLists(mapping))
		if encodeErr != nil {
			return fmt.Errorf("encode mapping: %w", encodeErr)
		}

		return nil
	case FormatYAML:
		data, marshalErr := yaml.Marshal(mappingLists(mapping))
		if marshalErr != nil {
			return fmt.Errorf("marshal mapping: %w", marshalErr)
		}

		_, writeErr := out.Write(data)
		if writeErr != nil {
			return fmt.Errorf("write mapping: %w", writeErr)
		}

		return nil
	case FormatDot:
		return writeDot(out, mapping)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.format)
	}
}
