package android

import (
	"encoding/xml"
	"io"
)

const (
	AndroidManifestName = "AndroidManifest.xml"
	AndroidNamespaceURI = "http://schemas.android.com/apk/res/android"
)

// Manifest is a read-only view of an AndroidManifest.xml. Use ManifestDocument
// to modify one without losing content this model does not know about.
type Manifest struct {
	XMLName        xml.Name                 `xml:"manifest"`
	UsesPermission []ManifestUsesPermission `xml:"uses-permission"`
	UsesFeature    []ManifestUsesFeature    `xml:"uses-feature"`
	Permission     []ManifestPermission     `xml:"permission"`
	Application    ManifestApplication      `xml:"application"`
	Attrs          []xml.Attr               `xml:",any,attr"`
}

// ParseManifest decodes the AndroidManifest.xml read from r.
func ParseManifest(r io.Reader) (*Manifest, error) {
	manifest := &Manifest{}
	return manifest, xml.NewDecoder(r).Decode(manifest)
}

func (m *Manifest) Package() string {
	for _, attr := range m.Attrs {
		if attr.Name.Local == "package" {
			return attr.Value
		}
	}

	return ""
}

// HasPermission reports whether a uses-permission named name is declared.
func (m *Manifest) HasPermission(name string) bool {
	for _, permission := range m.UsesPermission {
		if permission.Name() == name {
			return true
		}
	}

	return false
}

type ManifestUsesPermission struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (p ManifestUsesPermission) Name() string {
	return androidAttrValue(p.Attrs, "name")
}

type ManifestUsesFeature struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type ManifestPermission struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type ManifestApplication struct {
	Activities      []ManifestApplicationActivity `xml:"activity"`
	ActivityAliases []ManifestApplicationActivity `xml:"activity-alias"`
	Receivers       []ManifestApplicationActivity `xml:"receiver"`
	Services        []ManifestApplicationActivity `xml:"service"`
	Providers       []ManifestApplicationActivity `xml:"provider"`
	UsesLibraries   []ManifestApplicationMetadata `xml:"uses-library"`
	Metadata        []ManifestApplicationMetadata `xml:"meta-data"`
	Attrs           []xml.Attr                    `xml:",any,attr"`
}

// Receiver returns the receiver named name, if any.
func (a *ManifestApplication) Receiver(name string) (*ManifestApplicationActivity, bool) {
	for i, receiver := range a.Receivers {
		if receiver.Name() == name {
			return &a.Receivers[i], true
		}
	}

	return nil, false
}

// MetadataValue returns the value of the meta-data named name, if any.
func (a *ManifestApplication) MetadataValue(name string) (string, bool) {
	for _, metadata := range a.Metadata {
		if metadata.Name() == name {
			return metadata.Value(), true
		}
	}

	return "", false
}

type ManifestApplicationActivity struct {
	Metadata      []ManifestApplicationMetadata     `xml:"meta-data"`
	IntentFilters []ManifestApplicationIntentFilter `xml:"intent-filter"`
	Attrs         []xml.Attr                        `xml:",any,attr"`
}

func (a ManifestApplicationActivity) Name() string {
	return androidAttrValue(a.Attrs, "name")
}

// Attr returns the value of the android-namespaced attribute local.
func (a ManifestApplicationActivity) Attr(local string) string {
	return androidAttrValue(a.Attrs, local)
}

type ManifestApplicationIntentFilter struct {
	Actions    []ManifestApplicationMetadata `xml:"action"`
	Categories []ManifestApplicationMetadata `xml:"category"`
}

type ManifestApplicationMetadata struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (m ManifestApplicationMetadata) Name() string {
	return androidAttrValue(m.Attrs, "name")
}

func (m ManifestApplicationMetadata) Value() string {
	return androidAttrValue(m.Attrs, "value")
}

func androidAttrValue(attrs []xml.Attr, local string) string {
	for _, attr := range attrs {
		if attr.Name.Space == AndroidNamespaceURI && attr.Name.Local == local {
			return attr.Value
		}
	}

	return ""
}
