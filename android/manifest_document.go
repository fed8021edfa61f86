package android

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	defaultAndroidPrefix = "android"
)

// ManifestDocument is a mutable AndroidManifest.xml. Nodes, attributes and
// comments it is not asked to change are written back as they were read.
type ManifestDocument struct {
	doc *etree.Document
}

func NewManifestDocument(r io.Reader) (*ManifestDocument, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}

	return &ManifestDocument{doc: doc}, nil
}

func (m *ManifestDocument) WriteTo(w io.Writer) (int64, error) {
	return m.doc.WriteTo(w)
}

func (m *ManifestDocument) Bytes() ([]byte, error) {
	return m.doc.WriteToBytes()
}

// Manifest returns the root manifest element, or nil.
func (m *ManifestDocument) Manifest() *etree.Element {
	return m.doc.SelectElement("manifest")
}

// Application returns manifest/application, or nil.
func (m *ManifestDocument) Application() *etree.Element {
	if manifest := m.Manifest(); manifest != nil {
		return manifest.SelectElement("application")
	}

	return nil
}

// androidPrefix returns the prefix bound to AndroidNamespaceURI on the root
// element, declaring xmlns:android first if the document has no such binding.
func (m *ManifestDocument) androidPrefix() string {
	manifest := m.Manifest()
	if manifest == nil {
		return defaultAndroidPrefix
	}

	for _, attr := range manifest.Attr {
		if attr.Space == "xmlns" && attr.Value == AndroidNamespaceURI {
			return attr.Key
		}
	}

	prefix := defaultAndroidPrefix
	for i := 0; manifest.SelectAttr("xmlns:"+prefix) != nil; i++ {
		prefix = defaultAndroidPrefix + strings.Repeat("x", i+1)
	}

	manifest.CreateAttr("xmlns:"+prefix, AndroidNamespaceURI)

	return prefix
}

// AndroidAttr returns the value of el's attribute local in the
// android namespace, whatever prefix the document binds it to.
func AndroidAttr(el *etree.Element, local string) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Key == local && attr.Space != "" && attr.NamespaceURI() == AndroidNamespaceURI {
			return attr.Value, true
		}
	}

	return "", false
}

// setAndroidAttr sets el's attribute local in the android namespace,
// updating it in place if it is already present.
func (m *ManifestDocument) setAndroidAttr(el *etree.Element, local, value string) {
	for i, attr := range el.Attr {
		if attr.Key == local && attr.Space != "" && attr.NamespaceURI() == AndroidNamespaceURI {
			el.Attr[i].Value = value
			return
		}
	}

	el.CreateAttr(m.androidPrefix()+":"+local, value)
}

// appendElement appends a new element tag to parent, indenting it like
// parent's existing children when parent is indented.
func appendElement(parent *etree.Element, tag string) *etree.Element {
	el := etree.NewElement(tag)

	if n := len(parent.Child); n > 0 {
		if trailing, ok := parent.Child[n-1].(*etree.CharData); ok && isWhitespace(trailing) {
			parent.InsertChildAt(n-1, etree.NewText(childIndent(parent, trailing.Data)))
			parent.InsertChildAt(n, el)
			return el
		}
	}

	parent.AddChild(el)
	return el
}

func childIndent(parent *etree.Element, dflt string) string {
	for i, t := range parent.Child {
		if _, ok := t.(*etree.Element); ok && i > 0 {
			if cd, ok := parent.Child[i-1].(*etree.CharData); ok && isWhitespace(cd) {
				return cd.Data
			}

			break
		}
	}

	return dflt
}

func isWhitespace(cd *etree.CharData) bool {
	return !cd.IsCData() && strings.TrimSpace(cd.Data) == ""
}
