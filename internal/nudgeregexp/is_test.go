package nudgeregexp

import "testing"

func TestIsResourcePath(t *testing.T) {
	for name, expected := range map[string]bool{
		"drawable/icon_small.png":          true,
		"drawable-hdpi/icon_large.png":     true,
		"mipmap-xxhdpi-v4/ic_launcher.png": true,
		"drawable/bubble.9.png":            true,
		"drawable/Icon.png":                false,
		"icon.png":                         false,
		"../drawable/icon.png":             false,
		"drawable/nested/icon.png":         false,
	} {
		if actual := IsResourcePath(name); actual != expected {
			t.Errorf("IsResourcePath(%q) = %t, expected %t", name, actual, expected)
		}
	}
}

func TestIsClassName(t *testing.T) {
	for name, expected := range map[string]bool{
		"com.example.MainActivity": true,
		".MainActivity":            true,
		"MainActivity":             true,
		"com.example.":             false,
		"com example":              false,
		"":                         false,
	} {
		if actual := IsClassName(name); actual != expected {
			t.Errorf("IsClassName(%q) = %t, expected %t", name, actual, expected)
		}
	}
}

func TestIsSettingsFile(t *testing.T) {
	for name, expected := range map[string]bool{
		"settings.yml":                           true,
		"/tmp/My Project/settings.yaml":          true,
		`C:\Users\me\My Game\Settings.JSON`:      true,
		"~/Unity+Projects/notifications.plist":   true,
		"/home/me/Projekte/Spiel-Ü/settings.hcl": true,
		"settings.toml":                          false,
		"settings":                               false,
		"":                                       false,
	} {
		if actual := IsSettingsFile(name); actual != expected {
			t.Errorf("IsSettingsFile(%q) = %t, expected %t", name, actual, expected)
		}
	}
}

func TestDependencies(t *testing.T) {
	content := "dependencies {\n    implementation 'a:b:1'\n}\n"

	loc := Dependencies.FindStringSubmatchIndex(content)
	if loc == nil {
		t.Error("expected match")
		t.FailNow()
	}

	if actual := content[loc[2]:loc[3]]; actual != "}" {
		t.Error("expected", "}", "but got", actual)
	}
}
