package srcpair

import (
	"path"

	"github.com/src-d/enry/v2"
)

// unknownLanguage is reported when detection cannot classify a file.
const unknownLanguage = "Unknown"

// DetectLanguage classifies a file by name and content. Headers shared
// between C and C++ resolve by content heuristics; files enry cannot
// classify report as Unknown.
func DetectLanguage(name string, content []byte) string {
	lang := enry.GetLanguage(path.Base(name), content)
	if lang == "" {
		return unknownLanguage
	}

	return lang
}
