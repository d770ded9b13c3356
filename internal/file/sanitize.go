package file

import (
	"strings"

	"tubaudio/internal/domain/consts"
)

// SanitizeFilename removes characters most filesystems reject in filenames.
//
// Characters are dropped, not replaced, so "a:b" becomes "ab". The forbidden set
// is ASCII, so the name is filtered byte by byte and all other bytes pass through
// untouched, including invalid UTF-8.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if strings.IndexByte(consts.ForbiddenFilenameChars, name[i]) >= 0 {
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}
