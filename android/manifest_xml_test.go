package android

import (
	"bytes"
	_ "embed"
	"testing"
)

var (
	//go:embed testdata/AndroidManifest.xml
	data []byte
	//go:embed testdata/AndroidManifest.prefixed.xml
	prefixed []byte
)

func TestParseManifest(t *testing.T) {
	manifest, err := ParseManifest(bytes.NewReader(data))
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if pkg := manifest.Package(); pkg != "com.unity3d.player" {
		t.Error("expected", "com.unity3d.player", "but got", pkg)
	}

	if !manifest.HasPermission("android.permission.INTERNET") {
		t.Error("expected INTERNET permission")
	}

	if value, ok := manifest.Application.MetadataValue(MetadataCustomActivity); !ok || value != "OldActivity" {
		t.Error("expected", "OldActivity", "but got", value)
	}

	if len(manifest.Application.Activities) != 1 {
		t.Error("expected 1 activity but got", len(manifest.Application.Activities))
	}
}

func TestParseManifestPrefixed(t *testing.T) {
	manifest, err := ParseManifest(bytes.NewReader(prefixed))
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	receiver, ok := manifest.Application.Receiver(NotificationManagerReceiverName)
	if !ok {
		t.Error("expected receiver", NotificationManagerReceiverName)
		t.FailNow()
	}

	if exported := receiver.Attr("exported"); exported != "false" {
		t.Error("expected", "false", "but got", exported)
	}
}
