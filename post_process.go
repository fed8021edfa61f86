package nudge

import (
	"context"

	"github.com/frantjc/nudge/android"
	"github.com/frantjc/nudge/gradle"
	"github.com/frantjc/nudge/internal/nudgeerr"
	"github.com/frantjc/nudge/internal/nudgeregexp"
	"github.com/frantjc/nudge/settings"
)

const (
	StepGradle    = "gradle"
	StepResources = "resources"
	StepManifest  = "manifest"
)

// PostProcessOpts configure PostProcess.
type PostProcessOpts struct {
	// ProductName names the Android module directory to descend into
	// when the project path does not contain a src directory itself.
	ProductName string
	// Dependencies are inserted into build.gradle. Defaults to
	// gradle.DefaultDependency.
	Dependencies []string
	// Resources are copied into src/main/res, keyed by
	// paths such as "drawable/icon_small.png".
	Resources map[string][]byte
	// Settings decide which optional manifest entries are merged.
	Settings settings.Settings
}

// PostProcess wires notifications into the exported Android project at
// projectPath: it inserts the support library dependency into build.gradle,
// copies resources into the module's resource directory and merges receivers,
// permissions and metadata into its AndroidManifest.xml.
//
// Missing files are skipped. Any other failure aborts the remaining steps.
func PostProcess(ctx context.Context, projectPath string, opts *PostProcessOpts) error {
	if opts == nil {
		opts = &PostProcessOpts{}
	}

	var (
		log          = LoggerFrom(ctx).WithValues("project", projectPath)
		dependencies = opts.Dependencies
	)
	ctx = WithLogger(ctx, log)

	if len(dependencies) == 0 {
		dependencies = []string{gradle.DefaultDependency}
	}

	if err := gradle.InjectDependencies(ctx, projectPath, dependencies...); err != nil {
		return nudgeerr.StepError(err, StepGradle)
	}

	projectDir := android.ResolveProjectDir(projectPath, opts.ProductName)
	log.V(1).Info("resolved Android module", "dir", projectDir)

	if err := android.CopyResources(ctx, projectDir, opts.Resources); err != nil {
		return nudgeerr.StepError(err, StepResources)
	}

	notification := opts.Settings.Notification()
	if notification.UseCustomActivity && !nudgeregexp.IsClassName(notification.CustomActivity) {
		log.Info("custom activity does not look like a class name", "activity", notification.CustomActivity)
	}

	if err := android.InjectManifest(ctx, projectDir, notification); err != nil {
		return nudgeerr.StepError(err, StepManifest)
	}

	return nil
}
