package nudgeblob

import (
	"fmt"
	"path"
	"strings"
)

// ResourceKey cleans a resource path such as "drawable/icon_small.png"
// into a bucket key, refusing paths that would escape the resource root.
func ResourceKey(name string) (string, error) {
	key := path.Clean(strings.ReplaceAll(name, "\\", "/"))

	switch {
	case name == "", key == ".":
		return "", fmt.Errorf("empty resource path")
	case path.IsAbs(key), key == "..", strings.HasPrefix(key, "../"):
		return "", fmt.Errorf("resource path %s escapes resource directory", name)
	}

	return key, nil
}
