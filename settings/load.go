package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// file is the shape shared by the YAML, JSON and plist encodings:
//
//	settings:
//	  - key: UnityNotificationAndroidUseCustomActivity
//	    value: true
type file struct {
	Settings []entry `yaml:"settings" json:"settings" plist:"settings"`
}

type entry struct {
	Key   string `yaml:"key" json:"key" plist:"key"`
	Value any    `yaml:"value" json:"value" plist:"value"`
}

// hclFile is the HCL encoding:
//
//	setting "UnityNotificationAndroidUseCustomActivity" {
//	  value = true
//	}
type hclFile struct {
	Settings []*hclSetting `hcl:"setting,block"`
}

type hclSetting struct {
	Key   string         `hcl:"key,label"`
	Value hcl.Expression `hcl:"value"`
}

// Load reads Settings from the file name, choosing a decoder by its extension:
// .yml, .yaml, .json, .plist or .hcl. An empty name yields empty Settings.
func Load(ctx context.Context, name string) (Settings, error) {
	if name == "" {
		return Settings{}, nil
	}

	log := logr.FromContextOrDiscard(ctx)
	log.V(1).Info("loading settings", "path", name)

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".hcl" {
		return loadHCL(name)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	f := &file{}
	switch ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(b, f)
	case ".json":
		err = json.Unmarshal(b, f)
	case ".plist":
		err = plist.NewDecoder(bytes.NewReader(b)).Decode(f)
	default:
		return nil, fmt.Errorf("unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode settings file %s: %w", name, err)
	}

	s := make(Settings, 0, len(f.Settings))
	for _, e := range f.Settings {
		v, err := ValueOf(e.Value)
		if err != nil {
			return nil, fmt.Errorf("setting %s in %s: %w", e.Key, name, err)
		}

		s = s.Set(e.Key, v)
	}

	log.V(1).Info("loaded settings", "path", name, "count", len(s))

	return s, nil
}

func loadHCL(name string) (Settings, error) {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCLFile(name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse settings file %s: %w", name, diags)
	}

	f := &hclFile{}
	if diags = gohcl.DecodeBody(hf.Body, nil, f); diags.HasErrors() {
		return nil, fmt.Errorf("decode settings file %s: %w", name, diags)
	}

	s := make(Settings, 0, len(f.Settings))
	for _, hs := range f.Settings {
		cv, diags := hs.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("setting %s in %s: %w", hs.Key, name, diags)
		}

		v, err := ctyValueOf(cv)
		if err != nil {
			return nil, fmt.Errorf("setting %s in %s: %w", hs.Key, name, err)
		}

		s = s.Set(hs.Key, v)
	}

	return s, nil
}

func ctyValueOf(cv cty.Value) (Value, error) {
	if cv.IsNull() || !cv.IsKnown() {
		return Value{}, fmt.Errorf("value must be known and not null")
	}

	if ty := cv.Type(); ty.Equals(cty.Bool) {
		return Bool(cv.True()), nil
	} else if ty.Equals(cty.String) {
		return String(cv.AsString()), nil
	}

	return Value{}, fmt.Errorf("unsupported setting value type %s", cv.Type().FriendlyName())
}
