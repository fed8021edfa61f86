package nudgeblob

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gocloud.dev/blob/memblob"
)

func TestReadIcons(t *testing.T) {
	var (
		ctx    = context.Background()
		bucket = memblob.OpenBucket(nil)
	)
	defer bucket.Close()

	for _, obj := range [][2]string{
		{"icons/drawable/icon_small.png", "small"},
		{"icons/drawable-hdpi/icon_large.png", "large"},
		{"icons/README.md", "ignored"},
		{"other/drawable/icon_small.png", "wrong prefix"},
	} {
		if err := Copy(ctx, bucket, obj[0], strings.NewReader(obj[1])); err != nil {
			t.Error(err)
			t.FailNow()
		}
	}

	icons, err := ReadIcons(ctx, bucket, "icons/")
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if len(icons) != 2 {
		t.Error("expected 2 icons but got", len(icons))
	}

	if !bytes.Equal(icons["drawable/icon_small.png"], []byte("small")) {
		t.Error("expected", "small", "but got", string(icons["drawable/icon_small.png"]))
	}

	if !bytes.Equal(icons["drawable-hdpi/icon_large.png"], []byte("large")) {
		t.Error("expected", "large", "but got", string(icons["drawable-hdpi/icon_large.png"]))
	}
}

func TestResourceKey(t *testing.T) {
	for _, tc := range [][2]string{
		{"drawable/icon.png", "drawable/icon.png"},
		{"./drawable/icon.png", "drawable/icon.png"},
		{"drawable\\icon.png", "drawable/icon.png"},
		{"drawable/../mipmap/ic.png", "mipmap/ic.png"},
	} {
		actual, err := ResourceKey(tc[0])
		if err != nil {
			t.Error(err)
		} else if actual != tc[1] {
			t.Error("expected", tc[1], "but got", actual)
		}
	}

	for _, name := range []string{"", ".", "..", "../icon.png", "/etc/passwd", "drawable/../../icon.png"} {
		if _, err := ResourceKey(name); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}
