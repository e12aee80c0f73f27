package shared

import (
	"fmt"
	"strings"
)

// BuildCacheKey joins a prefix and its discriminating parts into a single
// colon-delimited cache key.
func BuildCacheKey(prefix string, parts ...any) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)

	for _, part := range parts {
		segments = append(segments, fmt.Sprintf("%v", part))
	}

	return strings.Join(segments, ":")
}
