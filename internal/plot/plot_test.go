package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/cdeps/internal/plot"
	"github.com/Sumatoshi-tech/cdeps/pkg/depgraph"
	"github.com/Sumatoshi-tech/cdeps/pkg/impact"
)

func TestWriteGraph(t *testing.T) {
	t.Parallel()

	mapping := depgraph.Mapping{
		"main": depgraph.NewSet("lib", "stdio"),
		"lib":  depgraph.NewSet("string"),
	}
	part := impact.DependentUnits(mapping, depgraph.NewSet("string"))

	var buf bytes.Buffer
	require.NoError(t, plot.WriteGraph(&buf, mapping, part, "test graph"))

	html := buf.String()

	assert.Contains(t, html, "test graph")
	assert.Contains(t, html, "echarts")

	// Units and externals all appear as nodes.
	for _, name := range []string{"main", "lib", "stdio", "string"} {
		assert.Contains(t, html, name)
	}
}

func TestWriteGraphEmptyMapping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := plot.WriteGraph(&buf, depgraph.Mapping{}, impact.Partition{
		Impacted:   depgraph.NewSet(),
		Unimpacted: depgraph.NewSet(),
	}, "empty")

	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
