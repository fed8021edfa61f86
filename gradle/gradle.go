package gradle

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/frantjc/nudge/internal/nudgeregexp"
	"github.com/go-logr/logr"
)

const (
	BuildGradleName = "build.gradle"

	// DefaultDependency is the support library that notifications
	// are built against.
	DefaultDependency = "implementation 'com.android.support:appcompat-v7:27.1.1'"
)

// InsertDependency inserts dependency into the first `dependencies` block of
// content that already declares an `implementation`, immediately before the
// closing brace that follows it. The inserted declaration always starts on its
// own line, as Gradle does not allow two declarations to share one, and uses
// CRLF line endings if the matched block does.
//
// It reports false and returns content unchanged if content is empty, if it
// already contains dependency, or if no such block is found.
func InsertDependency(content, dependency string) (string, bool) {
	dependency = strings.TrimSpace(dependency)
	if content == "" || dependency == "" || strings.Contains(content, dependency) {
		return content, false
	}

	loc := nudgeregexp.Dependencies.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, false
	}

	newline := "\n"
	if strings.Contains(content[loc[0]:loc[1]], "\r\n") {
		newline = "\r\n"
	}

	i := loc[2]
	return content[:i] + newline + "    " + dependency + newline + content[i:], true
}

// InjectDependencies inserts each of dependencies into the build.gradle
// found directly under projectPath. A missing build.gradle is not an error.
// The file is only rewritten if its content changed.
func InjectDependencies(ctx context.Context, projectPath string, dependencies ...string) error {
	var (
		log  = logr.FromContextOrDiscard(ctx)
		name = filepath.Join(projectPath, BuildGradleName)
	)

	fi, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.V(1).Info("skipping missing build script", "path", name)
		return nil
	} else if err != nil {
		return err
	}

	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	var (
		content  = string(b)
		modified = false
	)

	for _, dependency := range dependencies {
		var inserted bool
		if content, inserted = InsertDependency(content, dependency); inserted {
			log.Info("inserted dependency", "path", name, "dependency", dependency)
			modified = true
		} else {
			log.V(1).Info("did not insert dependency", "path", name, "dependency", dependency)
		}
	}

	if !modified {
		return nil
	}

	return os.WriteFile(name, []byte(content), fi.Mode().Perm())
}
