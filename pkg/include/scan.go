// Package include extracts include directives from C/C++ source text.
//
// The scan is a best-effort textual pass: it recognizes the directive
// shapes the preprocessor accepts, skips everything else silently, and
// never evaluates conditionals or macros.
package include

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"path"
	"regexp"
	"strings"
)

// Ref is one include reference found in a file.
type Ref struct {
	// Name is the raw target inside the directive, e.g. "stdio.h" or
	// "../util/log.h". No path resolution is applied here.
	Name string

	// System is true for <...> includes and false for "..." ones.
	System bool

	// Line is the 1-based line the directive was found on.
	Line int
}

var (
	quotedPattern = regexp.MustCompile(`#\s*include\s*"(.*)"`)
	systemPattern = regexp.MustCompile(`#\s*include\s*<(.*)>`)
)

// Scan lazily yields the include references in r, in file order.
// Malformed lines are skipped rather than reported, and lines of any
// length are examined: a generated file with an arbitrarily long line
// must not hide the includes after it. A read error simply ends the
// sequence early; the caller is expected to have validated the
// readability of the underlying file if that distinction matters.
func Scan(r io.Reader) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		reader := bufio.NewReader(r)
		line := 0

		for {
			text, err := reader.ReadString('\n')

			if text != "" {
				line++

				if m := quotedPattern.FindStringSubmatch(text); m != nil {
					if !yield(Ref{Name: m[1], Line: line}) {
						return
					}
				}

				if m := systemPattern.FindStringSubmatch(text); m != nil {
					if !yield(Ref{Name: m[1], System: true, Line: line}) {
						return
					}
				}
			}

			if err != nil {
				return
			}
		}
	}
}

// ScanBytes is Scan over an in-memory buffer.
func ScanBytes(data []byte) iter.Seq[Ref] {
	return Scan(bytes.NewReader(data))
}

// Normalize strips the extension from an include target so it compares
// against unit names. Directory components are preserved: "sys/types.h"
// normalizes to "sys/types".
func Normalize(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// Stem reduces an include target to its final path element without the
// extension. Used as the open-world fallback name for quoted includes
// that do not resolve to a file on disk.
func Stem(name string) string {
	return Normalize(path.Base(name))
}
