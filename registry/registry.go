// Package registry holds the process-wide extension→file-type mapping the
// facade uses to dispatch a cover to its codec (spec.md §4.5, §5 "Shared
// resource policy").
//
// The map is module-level mutable state, by design: the spec calls for no
// internal synchronization, trusting callers to register extensions at
// startup before any concurrent lookup begins.
package registry

import "strings"

// FileType names one of the codecs a cover can dispatch to.
type FileType uint8

const (
	// Text dispatches to package text.
	Text FileType = iota
	// Zip dispatches to package zipfile.
	Zip
)

func (t FileType) String() string {
	switch t {
	case Text:
		return "text"
	case Zip:
		return "zip"
	default:
		return "unknown"
	}
}

var extensions = map[string]FileType{
	"txt": Text,
	"md":  Text,
	"zip": Zip,
	"jar": Zip,
}

// RegisterExtension associates ext (without its leading dot, matched
// case-insensitively) with fileType, overriding any prior registration.
func RegisterExtension(ext string, fileType FileType) {
	extensions[normalize(ext)] = fileType
}

// FromExtension looks up the FileType registered for ext.
func FromExtension(ext string) (FileType, bool) {
	t, ok := extensions[normalize(ext)]
	return t, ok
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
