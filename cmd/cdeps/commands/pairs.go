package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/cdeps/internal/config"
	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

// PairsCommand holds the flags for the pairs command.
type PairsCommand struct {
	configPath string
	format     string
}

// NewPairsCommand creates and configures the pairs command.
func NewPairsCommand() *cobra.Command {
	cmd := &PairsCommand{}

	cobraCmd := &cobra.Command{
		Use:   "pairs <dir>",
		Short: "List the compilation units discovered under a directory",
		Long: `Recursively discovers C/C++ files under a directory and pairs each
implementation file with the header sharing its directory and stem.
Headers without a matching implementation do not form units.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatText, "Output format: text or json")
	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path")

	return cobraCmd
}

// Run executes the pairs command.
func (c *PairsCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}

	pairs, err := finderFromConfig(cfg).FromDir(args[0])
	if err != nil {
		return err
	}

	switch c.format {
	case FormatJSON:
		return writePairsJSON(cmd, pairs)
	case FormatText:
		writePairsTable(cmd.OutOrStdout(), args[0], pairs)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.format)
	}
}

type pairEntry struct {
	Unit   string `json:"unit"`
	Source string `json:"source"`
	Header string `json:"header,omitempty"`
}

func writePairsJSON(cmd *cobra.Command, pairs []srcpair.Pair) error {
	entries := make([]pairEntry, len(pairs))
	for i, pair := range pairs {
		entries[i] = pairEntry{Unit: pair.Name(), Source: pair.Source, Header: pair.Header}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	err := encoder.Encode(entries)
	if err != nil {
		return fmt.Errorf("encode pairs: %w", err)
	}

	return nil
}
