package gradle

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	//go:embed testdata/build.gradle
	buildGradle string
)

func TestInsertDependency(t *testing.T) {
	actual, inserted := InsertDependency(buildGradle, DefaultDependency)
	if !inserted {
		t.Error("expected dependency to be inserted")
		t.FailNow()
	}

	expected := strings.Replace(
		buildGradle,
		"include: ['*.jar'])\n}",
		"include: ['*.jar'])\n\n    "+DefaultDependency+"\n}",
		1,
	)
	if actual != expected {
		t.Error("expected", expected, "but got", actual)
	}
}

func TestInsertDependencyIdempotent(t *testing.T) {
	once, _ := InsertDependency(buildGradle, DefaultDependency)

	twice, inserted := InsertDependency(once, DefaultDependency)
	if inserted {
		t.Error("expected second insert to be a no-op")
	}

	if twice != once {
		t.Error("expected", once, "but got", twice)
	}

	if count := strings.Count(twice, DefaultDependency); count != 1 {
		t.Error("expected 1 copy of dependency but got", count)
	}
}

func TestInsertDependencyClosingBraceOnSameLine(t *testing.T) {
	var (
		content  = "dependencies {\n    implementation 'a:b:1' }\n"
		expected = "dependencies {\n    implementation 'a:b:1' \n    " + DefaultDependency + "\n}\n"
	)

	if actual, _ := InsertDependency(content, DefaultDependency); actual != expected {
		t.Error("expected", expected, "but got", actual)
	}
}

func TestInsertDependencyCRLF(t *testing.T) {
	var (
		content  = "dependencies {\r\n    implementation 'a:b:1'\r\n}\r\n"
		expected = "dependencies {\r\n    implementation 'a:b:1'\r\n\r\n    " + DefaultDependency + "\r\n}\r\n"
	)

	actual, _ := InsertDependency(content, DefaultDependency)
	if actual != expected {
		t.Errorf("expected %q but got %q", expected, actual)
	}

	if strings.Count(actual, "\n") != strings.Count(actual, "\r\n") {
		t.Errorf("expected only CRLF line endings but got %q", actual)
	}
}

func TestInsertDependencyNoMatch(t *testing.T) {
	for _, content := range []string{
		"",
		"android {\n}\n",
		"dependencies {\n    classpath 'com.android.tools.build:gradle:4.0.1'\n}\n",
	} {
		if actual, inserted := InsertDependency(content, DefaultDependency); inserted || actual != content {
			t.Errorf("expected %q to be left alone but got %q", content, actual)
		}
	}
}

func TestInjectDependencies(t *testing.T) {
	var (
		ctx  = context.Background()
		dir  = t.TempDir()
		name = filepath.Join(dir, BuildGradleName)
	)

	if err := os.WriteFile(name, []byte(buildGradle), 0o644); err != nil {
		t.Error(err)
		t.FailNow()
	}

	for range 2 {
		if err := InjectDependencies(ctx, dir, DefaultDependency); err != nil {
			t.Error(err)
			t.FailNow()
		}
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if count := strings.Count(string(b), DefaultDependency); count != 1 {
		t.Error("expected 1 copy of dependency but got", count)
	}
}

func TestInjectDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()

	if err := InjectDependencies(context.Background(), dir, DefaultDependency); err != nil {
		t.Error("expected missing build script to be skipped but got", err)
	}

	if _, err := os.Stat(filepath.Join(dir, BuildGradleName)); err == nil {
		t.Error("expected build script to not be created")
	}
}
