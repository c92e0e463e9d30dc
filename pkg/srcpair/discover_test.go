package srcpair_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

// writeTree creates the given files (with empty content) under root.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, file := range files {
		full := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
}

func TestFromDirPairsRecursively(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"main.c",
		"lib/util.c",
		"lib/util.h",
		"lib/internal.hpp",
		"docs/readme.md",
	)

	pairs, err := srcpair.FromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []srcpair.Pair{
		{Source: "lib/util.c", Header: "lib/util.h"},
		{Source: "main.c"},
	}, pairs)
}

func TestFromDirSkipsExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"main.c",
		".git/objects/blob.c",
		"build/generated.c",
	)

	pairs, err := srcpair.FromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []srcpair.Pair{{Source: "main.c"}}, pairs)
}

func TestFromDirMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := srcpair.FromDir(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestFinderCustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "mod.cu", "mod.cuh", "main.c")

	finder := &srcpair.Finder{
		SourceExtensions: []string{".cu"},
		HeaderExtensions: []string{".cuh"},
		ExcludeDirs:      srcpair.DefaultExcludeDirs,
	}

	pairs, err := finder.FromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []srcpair.Pair{{Source: "mod.cu", Header: "mod.cuh"}}, pairs)
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C", srcpair.DetectLanguage("main.c", []byte("int main(void) { return 0; }\n")))
	assert.Equal(t, "C++", srcpair.DetectLanguage("main.cpp", []byte("#include <vector>\n")))
}
