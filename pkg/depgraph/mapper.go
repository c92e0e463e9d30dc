package depgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/cdeps/pkg/include"
	"github.com/Sumatoshi-tech/cdeps/pkg/srcpair"
)

// DefaultWorkers bounds the number of concurrent file reads.
const DefaultWorkers = 8

// Mapper builds the dependency mapping for a set of units.
//
// Quoted includes are resolved against the unit's own directory first,
// then the configured include dirs; a target that resolves to a file on
// disk contributes its directory-qualified name. A target with no file
// on disk still anchors to a known unit of the matching name, and only
// then keeps its bare stem as an open-world external name. System
// includes always keep their normalized target.
type Mapper struct {
	// Root is the filesystem directory the pair paths are relative to.
	Root string

	// IncludeDirs are extra directories searched for quoted includes,
	// relative to Root.
	IncludeDirs []string

	// Workers caps parallel file reads. Zero or negative means
	// DefaultWorkers. Parallelism is a pure optimization: output depends
	// only on file contents, never on read order.
	Workers int

	// ReadFile and Exists default to the os implementations. Tests
	// inject both to map fixture content without touching disk.
	ReadFile func(name string) ([]byte, error)
	Exists   func(name string) bool
}

// NewMapper returns a Mapper reading from the filesystem under root.
func NewMapper(root string) *Mapper {
	return &Mapper{Root: root, Workers: DefaultWorkers}
}

// Map builds the dependency mapping for pairs. Each unit's source and
// header are scanned for include directives and the resolved names are
// unioned, minus the unit's own name.
//
// A failed read aborts the whole call: a silently partial graph would
// corrupt the totality guarantee of any impact query computed from it.
func (m *Mapper) Map(ctx context.Context, pairs []srcpair.Pair) (Mapping, error) {
	units := make(Set, len(pairs))
	for _, pair := range pairs {
		units.Add(pair.Name())
	}

	workers := m.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	deps := make([]Set, len(pairs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, pair := range pairs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			unitDeps, err := m.unitDependencies(pair, units)
			if err != nil {
				return err
			}

			deps[i] = unitDeps

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	mapping := make(Mapping, len(pairs))
	for i, pair := range pairs {
		name := pair.Name()

		// Same-stem sources in one directory (a.c next to a.cpp) share a
		// unit name; their dependency sets merge.
		if existing, ok := mapping[name]; ok {
			for dep := range deps[i] {
				existing.Add(dep)
			}

			continue
		}

		mapping[name] = deps[i]
	}

	return mapping, nil
}

func (m *Mapper) unitDependencies(pair srcpair.Pair, units Set) (Set, error) {
	deps := NewSet()
	unitDir := path.Dir(pair.Source)

	files := []string{pair.Source}
	if pair.HasHeader() {
		files = append(files, pair.Header)
	}

	for _, file := range files {
		data, err := m.readFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		for ref := range include.ScanBytes(data) {
			name := m.resolve(ref, unitDir, units)
			if name == "" || name == pair.Name() {
				continue
			}

			deps.Add(name)
		}
	}

	return deps, nil
}

// resolve maps one include reference to a dependency name.
func (m *Mapper) resolve(ref include.Ref, unitDir string, units Set) string {
	if ref.System {
		return include.Normalize(ref.Name)
	}

	dirs := make([]string, 0, len(m.IncludeDirs)+1)
	dirs = append(dirs, unitDir)
	dirs = append(dirs, m.IncludeDirs...)

	for _, dir := range dirs {
		candidate := path.Clean(path.Join(dir, ref.Name))
		if m.exists(candidate) {
			return include.Normalize(candidate)
		}
	}

	// The header may be absent (generated, not yet written) while a unit
	// of the matching name exists; the edge still belongs to that unit.
	for _, dir := range dirs {
		name := include.Normalize(path.Clean(path.Join(dir, ref.Name)))
		if units.Has(name) {
			return name
		}
	}

	slog.Debug("quoted include did not resolve to a file or unit, keeping bare name",
		"include", ref.Name, "dir", unitDir, "line", ref.Line)

	return include.Stem(ref.Name)
}

func (m *Mapper) readFile(name string) ([]byte, error) {
	if m.ReadFile != nil {
		return m.ReadFile(name)
	}

	return os.ReadFile(m.diskPath(name))
}

func (m *Mapper) exists(name string) bool {
	if m.Exists != nil {
		return m.Exists(name)
	}

	_, err := os.Stat(m.diskPath(name))

	return err == nil
}

func (m *Mapper) diskPath(name string) string {
	return filepath.Join(m.Root, filepath.FromSlash(name))
}
