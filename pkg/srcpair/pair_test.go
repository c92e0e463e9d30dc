package srcpair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

func TestPairFilesMatchesHeaderByStem(t *testing.T) {
	t.Parallel()

	pairs := srcpair.PairFiles([]string{"lib.c", "main.c"}, []string{"lib.h"})

	assert.Equal(t, []srcpair.Pair{
		{Source: "lib.c", Header: "lib.h"},
		{Source: "main.c"},
	}, pairs)
}

func TestPairFilesDropsLoneHeaders(t *testing.T) {
	t.Parallel()

	pairs := srcpair.PairFiles([]string{"a.cpp"}, []string{"a.hpp", "macros.h"})

	// macros.h has no implementation file and cannot anchor a unit.
	assert.Equal(t, []srcpair.Pair{{Source: "a.cpp", Header: "a.hpp"}}, pairs)
}

func TestPairFilesDirectoryQualified(t *testing.T) {
	t.Parallel()

	sources := []string{"a/util.c", "b/util.c"}
	headers := []string{"a/util.h"}

	pairs := srcpair.PairFiles(sources, headers)

	assert.Equal(t, []srcpair.Pair{
		{Source: "a/util.c", Header: "a/util.h"},
		{Source: "b/util.c"},
	}, pairs)

	// Same stem in different directories stays two distinct units.
	assert.Equal(t, "a/util", pairs[0].Name())
	assert.Equal(t, "b/util", pairs[1].Name())
}

func TestPairFilesIgnoresHeaderFromOtherDirectory(t *testing.T) {
	t.Parallel()

	pairs := srcpair.PairFiles([]string{"src/lib.c"}, []string{"include/lib.h"})

	assert.Equal(t, []srcpair.Pair{{Source: "src/lib.c"}}, pairs)
}

func TestPairFilesOrderIndependent(t *testing.T) {
	t.Parallel()

	forward := srcpair.PairFiles([]string{"a.c", "b.c"}, []string{"b.h", "a.h"})
	backward := srcpair.PairFiles([]string{"b.c", "a.c"}, []string{"a.h", "b.h"})

	assert.Equal(t, forward, backward)
}

func TestIsSourceIsHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source bool
		header bool
	}{
		{"a.c", true, false},
		{"a.C", true, false},
		{"a.cpp", true, false},
		{"a.c++", true, false},
		{"a.cxx", true, false},
		{"a.h", false, true},
		{"a.hpp", false, true},
		{"a.txt", false, false},
		{"Makefile", false, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.source, srcpair.IsSource(tc.name), "IsSource(%q)", tc.name)
		assert.Equal(t, tc.header, srcpair.IsHeader(tc.name), "IsHeader(%q)", tc.name)
	}
}

func TestTrimExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a.cpp", "a"},
		{"hello", "hello"},
		{"src/lib.c", "src/lib"},
		{"sys/types.h", "sys/types"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, srcpair.TrimExtension(tc.in))
	}
}

func TestPairName(t *testing.T) {
	t.Parallel()

	pair := srcpair.Pair{Source: "src/parser.cc", Header: "src/parser.h"}

	assert.Equal(t, "src/parser", pair.Name())
	assert.True(t, pair.HasHeader())
	assert.False(t, srcpair.Pair{Source: "main.c"}.HasHeader())
}
