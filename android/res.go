package android

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/frantjc/nudge/internal/nudgeblob"
	"github.com/go-logr/logr"
	"gocloud.dev/blob/fileblob"
)

// ResolveProjectDir returns the directory of the Android module within
// projectPath. Depending on how it was exported, projectPath is either the
// module itself or its parent, in which case the module is named after the
// product.
func ResolveProjectDir(projectPath, productName string) string {
	if fi, err := os.Stat(filepath.Join(projectPath, "src")); (err == nil && fi.IsDir()) || productName == "" {
		return projectPath
	}

	return filepath.Join(projectPath, productName)
}

// ResourceDir returns the resource directory of the Android module at projectDir.
func ResourceDir(projectDir string) string {
	return filepath.Join(projectDir, "src", "main", "res")
}

// CopyResources writes each of resources, keyed by a path relative to the
// resource directory such as "drawable/icon_small.png", into the resource
// directory of the Android module at projectDir, overwriting existing files.
func CopyResources(ctx context.Context, projectDir string, resources map[string][]byte) error {
	if len(resources) == 0 {
		return nil
	}

	var (
		log  = logr.FromContextOrDiscard(ctx)
		dir  = ResourceDir(projectDir)
		keys = make([]string, 0, len(resources))
	)

	for name := range resources {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return err
	}
	defer bucket.Close()

	for _, name := range keys {
		key, err := nudgeblob.ResourceKey(name)
		if err != nil {
			return err
		}

		log.V(1).Info("writing resource", "dir", dir, "key", key)
		if err := nudgeblob.Copy(ctx, bucket, key, bytes.NewReader(resources[name])); err != nil {
			return fmt.Errorf("write resource %s: %w", key, err)
		}
	}

	log.Info("copied resources", "dir", dir, "count", len(keys))

	return nil
}
