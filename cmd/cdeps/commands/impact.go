package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/cdeps/internal/config"
	"github.com/Sumatoshi-tech/cdeps/internal/plot"
	"github.com/Sumatoshi-tech/cdeps/pkg/depgraph"
	"github.com/Sumatoshi-tech/cdeps/pkg/impact"
)

// ImpactCommand holds the flags for the impact command.
type ImpactCommand struct {
	configPath  string
	format      string
	plotPath    string
	targets     []string
	includeDirs []string
	noColor     bool
}

// NewImpactCommand creates and configures the impact command.
func NewImpactCommand() *cobra.Command {
	cmd := &ImpactCommand{}

	cobraCmd := &cobra.Command{
		Use:   "impact <dir>",
		Short: "Partition units by reachability to a target dependency set",
		Long: `Builds the dependency mapping for a directory and partitions its units
into those that depend, directly or transitively, on any of the target
names and those that do not. Targets may be unit names or external
header names such as "stdio".`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringSliceVarP(&cmd.targets, "targets", "t", nil, "Dependency names to query (comma-separated)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatText, "Output format: text or json")
	cobraCmd.Flags().StringVar(&cmd.plotPath, "plot", "", "Write an HTML dependency graph to this file")
	cobraCmd.Flags().StringSliceVarP(&cmd.includeDirs, "include-dir", "I", nil, "Extra include directories, relative to <dir>")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path")

	return cobraCmd
}

// Run executes the impact command.
func (c *ImpactCommand) Run(cmd *cobra.Command, args []string) error {
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

	part := impact.DependentUnits(mapping, depgraph.NewSet(c.targets...))

	if c.plotPath != "" {
		plotErr := c.writePlot(mapping, part)
		if plotErr != nil {
			return plotErr
		}
	}

	switch c.format {
	case FormatJSON:
		return writeImpactJSON(cmd, part, c.targets)
	case FormatText:
		writeImpactReport(cmd.OutOrStdout(), part, c.targets, c.noColor)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.format)
	}
}

func (c *ImpactCommand) writePlot(mapping depgraph.Mapping, part impact.Partition) error {
	file, err := os.Create(c.plotPath)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer file.Close()

	return plot.WriteGraph(file, mapping, part, "cdeps - include coupling")
}

type impactResult struct {
	Targets    []string `json:"targets"`
	Impacted   []string `json:"impacted"`
	Unimpacted []string `json:"unimpacted"`
}

func writeImpactJSON(cmd *cobra.Command, part impact.Partition, targets []string) error {
	result := impactResult{
		Targets:    targets,
		Impacted:   part.Impacted.Sorted(),
		Unimpacted: part.Unimpacted.Sorted(),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	err := encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("encode impact result: %w", err)
	}

	return nil
}
