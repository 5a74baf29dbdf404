package naming

import (
	"strings"
	"unicode/utf8"
)

// NoLimit disables the extension length limit in [SplitExt].
const NoLimit = -1

// SplitExt splits name into stem and extension. The extension runs from the
// last '.' to the end and keeps its dot. A dot in the first position marks a
// hidden file, not an extension. When limit is non-negative, an extension
// longer than limit characters (dot excluded) is not treated as one.
func SplitExt(name string, limit int) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	ext = name[i:]
	if limit >= 0 && utf8.RuneCountInString(ext)-1 > limit {
		return name, ""
	}
	return name[:i], ext
}
