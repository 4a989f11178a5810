package argval

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// Keyword selects a semantic, per-element check that a prototype can
// request instead of a purely structural comparison. The set is closed;
// KeywordNone means the prototype is structural only.
type Keyword uint8

const (
	KeywordNone Keyword = iota

	// KeywordDirExists requires each element to name an existing directory.
	KeywordDirExists

	// KeywordFileExists requires each element to name an existing
	// filesystem entry, file or directory.
	KeywordFileExists

	// KeywordFileWritable requires each element to name an existing entry
	// writable by the current process.
	KeywordFileWritable

	// KeywordValidIdentifier requires each element to be a well-formed
	// versioned identifier (GUID). The all-zero identifier is rejected.
	KeywordValidIdentifier
)

// String returns the short selector name for the keyword.
func (k Keyword) String() string {
	switch k {
	case KeywordDirExists:
		return "dir"
	case KeywordFileExists:
		return "file"
	case KeywordFileWritable:
		return "writable"
	case KeywordValidIdentifier:
		return "guid"
	default:
		return "none"
	}
}

// checkKeyword applies the semantic check named by kw to every element
// independently. Filesystem probes are read-only; any probe error counts as
// a failed check and is recorded, never raised.
func checkKeyword(r *Report, param string, kw Keyword, elems []string) {
	for _, elem := range elems {
		switch kw {
		case KeywordDirExists:
			info, err := os.Stat(elem)
			if err != nil || !info.IsDir() {
				r.addf(param, CodeDirectoryNotFound, "validation.dir_exists",
					map[string]any{"path": elem},
					"%q: directory does not exist.", elem)
			}
		case KeywordFileExists:
			if _, err := os.Stat(elem); err != nil {
				r.addf(param, CodeFileNotFound, "validation.file_exists",
					map[string]any{"path": elem},
					"%q: file does not exist.", elem)
			}
		case KeywordFileWritable:
			if !writable(elem) {
				r.addf(param, CodeFileNotWritable, "validation.file_writable",
					map[string]any{"path": elem},
					"%q: not a writable file.", elem)
			}
		case KeywordValidIdentifier:
			if !validIdentifier(elem) {
				r.addf(param, CodeInvalidIdentifier, "validation.guid",
					map[string]any{"value": elem},
					"%q: not a valid identifier.", elem)
			}
		}
	}
}

// writable probes whether path names an existing entry the current process
// may open for writing. The probe does not modify the entry.
func writable(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// validIdentifier reports whether s is a well-formed versioned identifier:
// 32 hex digits in 8-4-4-4-12 grouping, case-insensitive, optionally
// brace-delimited, optionally without hyphens, with version nibble 1-5 and
// variant nibble 8/9/a/b. The all-zero identifier parses but is rejected
// here: in this domain it marks an unassigned slot, never a real object.
func validIdentifier(s string) bool {
	if len(s) >= 2 && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}
	// Fast rejection on length before parsing: 36 with hyphens, 32 bare
	// hex. Anything else, including urn-prefixed forms, is out.
	switch len(s) {
	case 32, 36:
	default:
		return false
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if u == uuid.Nil {
		return false
	}
	if v := u.Version(); v < 1 || v > 5 {
		return false
	}
	return u.Variant() == uuid.RFC4122
}
