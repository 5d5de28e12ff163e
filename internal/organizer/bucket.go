package organizer

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoExtensionBucket is the bucket for files without an extension.
const NoExtensionBucket = "no_extension"

// Bucket returns the extension bucket for the file at path.
//
// The extension is the text after the last dot of the base name, lowercased.
// A name whose only dot is the leading one (".bashrc") or that ends in a dot
// ("notes.") has no extension and maps to NoExtensionBucket.
func Bucket(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return NoExtensionBucket
	}
	return cases.Lower(language.Und).String(name[i+1:])
}
