// Package srcpair groups C/C++ files into logical compilation units.
//
// A unit is an implementation file optionally paired with the header that
// shares its directory and filename stem. Header files with no matching
// implementation cannot anchor a unit and are dropped during pairing.
package srcpair

import (
	"path"
	"sort"
	"strings"
)

// SourceExtensions lists the extensions recognized as implementation files.
// Matching is case sensitive: ".C" is a C++ source, ".c" a C one.
var SourceExtensions = []string{".c", ".cc", ".cp", ".cxx", ".cpp", ".c++", ".C"}

// HeaderExtensions lists the extensions recognized as interface files.
var HeaderExtensions = []string{".h", ".hpp"}

// Pair associates an implementation file with its interface file.
// Paths are slash separated. Header is empty when the unit has no
// interface file. Two pairs are equal iff both paths are equal.
type Pair struct {
	Source string
	Header string
}

// HasHeader reports whether the pair carries an interface file.
func (p Pair) HasHeader() bool { return p.Header != "" }

// Name returns the unit name: the source path with its extension stripped.
// Names stay directory qualified so that same-stem units in different
// directories remain distinct.
func (p Pair) Name() string { return TrimExtension(p.Source) }

// HasExtension reports whether name ends with one of exts.
func HasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// IsSource reports whether name has an implementation file extension.
func IsSource(name string) bool { return HasExtension(name, SourceExtensions) }

// IsHeader reports whether name has an interface file extension.
func IsHeader(name string) bool { return HasExtension(name, HeaderExtensions) }

// TrimExtension removes the final extension from name, if any.
// The directory part is preserved: "src/lib.c" becomes "src/lib".
func TrimExtension(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// PairFiles matches implementation files with the header sharing their
// directory and stem, using the default header extensions. Headers without
// a matching implementation are dropped. The result is sorted by source
// path so output does not depend on input order.
func PairFiles(sources, headers []string) []Pair {
	return pairFiles(sources, headers, HeaderExtensions)
}

func pairFiles(sources, headers []string, headerExts []string) []Pair {
	known := make(map[string]struct{}, len(headers))
	for _, header := range headers {
		known[header] = struct{}{}
	}

	pairs := make([]Pair, 0, len(sources))

	for _, source := range sources {
		pair := Pair{Source: source}
		stem := TrimExtension(source)

		for _, ext := range headerExts {
			candidate := stem + ext
			if _, ok := known[candidate]; ok {
				pair.Header = candidate

				break
			}
		}

		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Source < pairs[j].Source })

	return pairs
}
