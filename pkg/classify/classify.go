// Package classify decides from a file name alone whether a template file
// must be copied byte-for-byte instead of going through the text rewriter.
package classify

import (
	"path/filepath"
	"strings"
)

// binaryExtensions lists extensions copied verbatim. Windows command
// scripts are included: they are text, but rewriting them would mangle
// their line endings and wrapper logic.
var binaryExtensions = map[string]struct{}{
	// Images
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "ico": {}, "svg": {}, "webp": {}, "bmp": {},
	// Java binaries
	"jar": {}, "war": {}, "ear": {}, "class": {},
	// Executables/Libraries
	"exe": {}, "dll": {}, "so": {}, "dylib": {},
	// Archives
	"zip": {}, "tar": {}, "gz": {}, "rar": {}, "7z": {},
	// Documents
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {},
	// Media
	"mp3": {}, "mp4": {}, "avi": {}, "mov": {}, "wav": {},
	// Fonts
	"ttf": {}, "otf": {}, "woff": {}, "woff2": {}, "eot": {},
	// Windows scripts
	"cmd": {}, "bat": {},
}

// Extension returns the lowercased text after the last dot of the base
// name, or "" when the name has no dot.
func Extension(name string) string {
	base := filepath.Base(name)
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// IsBinary reports whether the file must bypass text processing
func IsBinary(name string) bool {
	ext := Extension(name)
	if ext == "" {
		return false
	}
	_, ok := binaryExtensions[ext]
	return ok
}
