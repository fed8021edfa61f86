package android

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/frantjc/nudge/settings"
	"github.com/go-logr/logr"
	"github.com/opencontainers/go-digest"
)

const (
	NotificationManagerReceiverName       = "com.unity.androidnotifications.UnityNotificationManager"
	NotificationRestartOnBootReceiverName = "com.unity.androidnotifications.UnityNotificationRestartOnBootReceiver"

	ActionBootCompleted            = "android.intent.action.BOOT_COMPLETED"
	PermissionReceiveBootCompleted = "android.permission.RECEIVE_BOOT_COMPLETED"

	MetadataCustomActivity      = "custom_notification_android_activity"
	MetadataRescheduleOnRestart = "reschedule_notifications_on_restart"
)

// InjectReceivers makes sure manifest/application declares the notification
// manager receiver, exported, and the restart-on-boot receiver, disabled.
// The app enables the latter itself at runtime when it has notifications to
// reschedule. Receivers that already exist are updated rather than duplicated.
func (m *ManifestDocument) InjectReceivers() {
	application := m.Application()
	if application == nil {
		return
	}

	manager, restartOnBoot := findReceivers(application)

	if manager == nil {
		manager = appendElement(application, "receiver")
		m.setAndroidAttr(manager, "name", NotificationManagerReceiverName)
	}
	m.setAndroidAttr(manager, "exported", "true")

	if restartOnBoot == nil {
		restartOnBoot = appendElement(application, "receiver")
		m.setAndroidAttr(restartOnBoot, "name", NotificationRestartOnBootReceiverName)

		action := restartOnBoot.CreateElement("intent-filter").CreateElement("action")
		m.setAndroidAttr(action, "name", ActionBootCompleted)
	}
	m.setAndroidAttr(restartOnBoot, "enabled", "false")
}

func findReceivers(application *etree.Element) (manager, restartOnBoot *etree.Element) {
	for _, el := range application.ChildElements() {
		if el.Tag != "receiver" {
			continue
		}

		switch name, _ := AndroidAttr(el, "name"); name {
		case NotificationManagerReceiverName:
			if manager == nil {
				manager = el
			}
		case NotificationRestartOnBootReceiverName:
			if restartOnBoot == nil {
				restartOnBoot = el
			}
		}

		if manager != nil && restartOnBoot != nil {
			break
		}
	}

	return manager, restartOnBoot
}

// UpsertMetadata sets the value of the manifest/application/meta-data named
// name, creating it if it does not exist.
func (m *ManifestDocument) UpsertMetadata(name, value string) {
	application := m.Application()
	if application == nil {
		return
	}

	for _, el := range application.SelectElements("meta-data") {
		if elName, _ := AndroidAttr(el, "name"); elName == name {
			m.setAndroidAttr(el, "value", value)
			return
		}
	}

	el := appendElement(application, "meta-data")
	m.setAndroidAttr(el, "name", name)
	m.setAndroidAttr(el, "value", value)
}

// UpsertPermission declares the uses-permission named name under manifest
// if it is not already declared.
func (m *ManifestDocument) UpsertPermission(name string) {
	manifest := m.Manifest()
	if manifest == nil {
		return
	}

	for _, el := range manifest.SelectElements("uses-permission") {
		if elName, _ := AndroidAttr(el, "name"); elName == name {
			return
		}
	}

	el := appendElement(manifest, "uses-permission")
	m.setAndroidAttr(el, "name", name)
}

// Merge applies everything notifications need to the document:
// receivers always, then metadata and permissions as opts dictate.
func (m *ManifestDocument) Merge(opts *settings.Notification) {
	m.InjectReceivers()

	if opts == nil {
		return
	}

	if opts.UseCustomActivity {
		m.UpsertMetadata(MetadataCustomActivity, opts.CustomActivity)
	}

	if opts.RescheduleOnDeviceRestart {
		m.UpsertMetadata(MetadataRescheduleOnRestart, "true")
		m.UpsertPermission(PermissionReceiveBootCompleted)
	}
}

// InjectManifest merges notification support into
// projectDir/src/main/AndroidManifest.xml. A missing manifest is not an error.
// The file is only rewritten if the merge changed it.
func InjectManifest(ctx context.Context, projectDir string, opts *settings.Notification) error {
	var (
		log  = logr.FromContextOrDiscard(ctx)
		name = filepath.Join(projectDir, "src", "main", AndroidManifestName)
	)

	fi, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.V(1).Info("skipping missing manifest", "path", name)
		return nil
	} else if err != nil {
		return err
	}

	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	doc, err := NewManifestDocument(bytes.NewReader(b))
	if err != nil {
		return err
	}

	doc.Merge(opts)

	merged, err := doc.Bytes()
	if err != nil {
		return err
	}

	before, after := digest.FromBytes(b), digest.FromBytes(merged)
	if before == after {
		log.V(1).Info("manifest unchanged", "path", name, "digest", before.String())
		return nil
	}

	log.Info("writing manifest", "path", name, "from", before.String(), "to", after.String())

	return os.WriteFile(name, merged, fi.Mode().Perm())
}
