// Package plot renders a dependency mapping as an interactive HTML page.
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/cdeps/pkg/depgraph"
	"github.com/Sumatoshi-tech/cdeps/pkg/impact"
)

const (
	graphWidth  = "1400px"
	graphHeight = "900px"

	unitSymbolSize     = 14
	externalSymbolSize = 8
	forceRepulsion     = 320
	labelFontSize      = 10

	colorImpacted   = "#d64541"
	colorUnimpacted = "#2ecc71"
	colorExternal   = "#95a5a6"
)

// WriteGraph renders mapping as a force directed graph, coloring units by
// their impact verdict. External names get smaller gray nodes so the
// open-world edges stay visible without dominating the layout.
func WriteGraph(w io.Writer, mapping depgraph.Mapping, part impact.Partition, title string) error {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     graphWidth,
			Height:    graphHeight,
			PageTitle: title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "red = impacted, green = unimpacted, gray = external",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	nodes, links := buildSeries(mapping, part)

	graph.AddSeries("dependencies", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force:  &opts.GraphForce{Repulsion: forceRepulsion},
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "right",
			FontSize: labelFontSize,
		}),
	)

	err := graph.Render(w)
	if err != nil {
		return fmt.Errorf("render dependency graph: %w", err)
	}

	return nil
}

func buildSeries(mapping depgraph.Mapping, part impact.Partition) ([]opts.GraphNode, []opts.GraphLink) {
	units := mapping.Units()
	externals := mapping.Externals()

	nodes := make([]opts.GraphNode, 0, len(units)+len(externals))

	for _, unit := range units {
		color := colorUnimpacted
		if part.Impacted.Has(unit) {
			color = colorImpacted
		}

		nodes = append(nodes, opts.GraphNode{
			Name:       unit,
			SymbolSize: unitSymbolSize,
			ItemStyle:  &opts.ItemStyle{Color: color},
		})
	}

	for _, external := range externals {
		nodes = append(nodes, opts.GraphNode{
			Name:       external,
			SymbolSize: externalSymbolSize,
			ItemStyle:  &opts.ItemStyle{Color: colorExternal},
		})
	}

	var links []opts.GraphLink

	for _, unit := range units {
		for _, dep := range mapping[unit].Sorted() {
			links = append(links, opts.GraphLink{Source: unit, Target: dep})
		}
	}

	return nodes, links
}
