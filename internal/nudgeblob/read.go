package nudgeblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/frantjc/nudge/internal/nudgeregexp"
	"github.com/go-logr/logr"
	"gocloud.dev/blob"
	"golang.org/x/sync/errgroup"
)

const readConcurrency = 8

// ReadIcons reads every object under prefix in bucket whose remaining key
// looks like an Android resource path, e.g. "drawable/icon_small.png",
// keyed by that resource path.
func ReadIcons(ctx context.Context, bucket *blob.Bucket, prefix string) (map[string][]byte, error) {
	var (
		log       = logr.FromContextOrDiscard(ctx)
		icons     = map[string][]byte{}
		mu        = new(sync.Mutex)
		eg, egctx = errgroup.WithContext(ctx)
		iter      = bucket.List(&blob.ListOptions{Prefix: prefix})
	)
	eg.SetLimit(readConcurrency)

	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			_ = eg.Wait()
			return nil, err
		}

		if obj.IsDir {
			continue
		}

		var (
			key = obj.Key
			rel = strings.TrimPrefix(strings.TrimPrefix(key, prefix), "/")
		)

		if !nudgeregexp.IsResourcePath(rel) {
			log.V(1).Info("skipping non-resource object", "key", key)
			continue
		}

		eg.Go(func() error {
			b, err := bucket.ReadAll(egctx, key)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}

			mu.Lock()
			icons[rel] = b
			mu.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return icons, nil
}
