package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/cdeps/internal/config"
	"github.com/Sumatoshi-tech/cdeps/pkg/depgraph"
	"github.com/Sumatoshi-tech/cdeps/pkg/impact"
	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

// Output format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDot  = "dot"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// noHeaderMarker is printed in place of a missing interface file.
const noHeaderMarker = "-"

func finderFromConfig(cfg *config.Config) *srcpair.Finder {
	return &srcpair.Finder{
		SourceExtensions: cfg.SourceExtensions,
		HeaderExtensions: cfg.HeaderExtensions,
		ExcludeDirs:      cfg.ExcludeDirs,
	}
}

func mapperFromConfig(cfg *config.Config, root string) *depgraph.Mapper {
	return &depgraph.Mapper{
		Root:        root,
		IncludeDirs: cfg.IncludeDirs,
		Workers:     cfg.Workers,
	}
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

func writePairsTable(w io.Writer, root string, pairs []srcpair.Pair) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"UNIT", "SOURCE", "HEADER", "LANGUAGE"})

	for _, pair := range pairs {
		header := pair.Header
		if header == "" {
			header = noHeaderMarker
		}

		tbl.AppendRow(table.Row{pair.Name(), pair.Source, header, pairLanguage(root, pair)})
	}

	tbl.Render()

	fmt.Fprintf(w, "%s units\n", humanize.Comma(int64(len(pairs))))
}

// pairLanguage classifies the unit by its source file content.
// Detection failures degrade to Unknown rather than failing the listing.
func pairLanguage(root string, pair srcpair.Pair) string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(pair.Source)))
	if err != nil {
		data = nil
	}

	return srcpair.DetectLanguage(pair.Source, data)
}

func writeImpactReport(w io.Writer, part impact.Partition, targets []string, noColor bool) {
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen)

	if noColor {
		red.DisableColor()
		green.DisableColor()
	}

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"UNIT", "STATUS"})

	for _, unit := range part.Impacted.Sorted() {
		tbl.AppendRow(table.Row{unit, red.Sprint("impacted")})
	}

	for _, unit := range part.Unimpacted.Sorted() {
		tbl.AppendRow(table.Row{unit, green.Sprint("ok")})
	}

	tbl.Render()

	fmt.Fprintf(w, "%s impacted, %s unimpacted (targets: %s)\n",
		red.Sprint(humanize.Comma(int64(len(part.Impacted)))),
		green.Sprint(humanize.Comma(int64(len(part.Unimpacted)))),
		humanize.Comma(int64(len(targets))))
}

// writeDot dumps the mapping in Graphviz format, sorted for stable output.
func writeDot(w io.Writer, mapping depgraph.Mapping) error {
	var buffer bytes.Buffer

	buffer.WriteString("digraph cdeps {\n")

	for _, unit := range mapping.Units() {
		for _, dep := range mapping[unit].Sorted() {
			fmt.Fprintf(&buffer, "  %q -> %q\n", unit, dep)
		}
	}

	buffer.WriteString("}\n")

	_, err := w.Write(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("write dot output: %w", err)
	}

	return nil
}

// mappingLists converts the mapping into plain sorted lists for
// marshalling, so JSON and YAML dumps are deterministic.
func mappingLists(mapping depgraph.Mapping) map[string][]string {
	out := make(map[string][]string, len(mapping))
	for unit, deps := range mapping {
		out[unit] = deps.Sorted()
	}

	return out
}
